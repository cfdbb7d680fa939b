package usecase

import "strings"

// countryCodes maps the country names the source emits to ISO-3166-1 ALPHA-2
// codes. The table is hand-maintained and intentionally small; names not
// listed here yield no code rather than an error or a geocoding lookup.
// Read-only after init.
var countryCodes = map[string]string{
	"argentina":            "AR",
	"australia":            "AU",
	"austria":              "AT",
	"belgium":              "BE",
	"brazil":               "BR",
	"canada":               "CA",
	"chile":                "CL",
	"china":                "CN",
	"colombia":             "CO",
	"czech republic":       "CZ",
	"denmark":              "DK",
	"egypt":                "EG",
	"finland":              "FI",
	"france":               "FR",
	"germany":              "DE",
	"greece":               "GR",
	"hong kong":            "HK",
	"hungary":              "HU",
	"india":                "IN",
	"indonesia":            "ID",
	"ireland":              "IE",
	"israel":               "IL",
	"italy":                "IT",
	"japan":                "JP",
	"kenya":                "KE",
	"malaysia":             "MY",
	"mexico":               "MX",
	"netherlands":          "NL",
	"new zealand":          "NZ",
	"nigeria":              "NG",
	"norway":               "NO",
	"pakistan":             "PK",
	"peru":                 "PE",
	"philippines":          "PH",
	"poland":               "PL",
	"portugal":             "PT",
	"romania":              "RO",
	"singapore":            "SG",
	"south africa":         "ZA",
	"south korea":          "KR",
	"spain":                "ES",
	"sweden":               "SE",
	"switzerland":          "CH",
	"taiwan":               "TW",
	"thailand":             "TH",
	"turkey":               "TR",
	"ukraine":              "UA",
	"united arab emirates": "AE",
	"united kingdom":       "GB",
	"united states":        "US",
	"vietnam":              "VN",
}

// lookupCountryCode resolves a country name to its 2-letter code, or ""
// when the name is not in the table.
func lookupCountryCode(name string) string {
	return countryCodes[strings.ToLower(strings.TrimSpace(name))]
}
