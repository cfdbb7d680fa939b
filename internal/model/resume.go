// Package model defines the canonical, versioned resume document schema that
// every source is normalized into and every renderer consumes.
//
// All fields are optional on the wire; the empty value means "absent" and is
// omitted when serializing. Dates are kept as strings because partial dates
// (year-only, year-month) are first-class and must round-trip exactly as
// given. Each entity carries an Extra map that preserves unrecognized source
// fields as siblings of the modeled ones, so parse/serialize is lossless.
package model

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Pre-computed known field sets for lossless unmarshaling, built once at
// package init.
var (
	knownResumeSet = knownSet(
		"$schema", "basics", "work", "volunteer", "education", "awards",
		"certificates", "publications", "skills", "languages", "interests",
		"references", "projects", "meta",
	)
	knownBasicsSet = knownSet(
		"name", "label", "image", "email", "phone", "url", "summary",
		"location", "profiles",
	)
	knownLocationSet = knownSet(
		"address", "postalCode", "city", "countryCode", "region",
	)
	knownProfileSet = knownSet(
		"network", "username", "url",
	)
	knownMetaSet = knownSet(
		"canonical", "version", "lastModified",
	)
)

// Resume is the root canonical document.
type Resume struct {
	Schema       string        `json:"$schema,omitempty"`
	Basics       *Basics       `json:"basics,omitempty"`
	Work         []Work        `json:"work,omitempty"`
	Volunteer    []Volunteer   `json:"volunteer,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Awards       []Award       `json:"awards,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
	Publications []Publication `json:"publications,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Languages    []Language    `json:"languages,omitempty"`
	Interests    []Interest    `json:"interests,omitempty"`
	References   []Reference   `json:"references,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
	Meta         *Meta         `json:"meta,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type resumeWire struct {
	Schema       string        `json:"$schema,omitempty"`
	Basics       *Basics       `json:"basics,omitempty"`
	Work         []Work        `json:"work,omitempty"`
	Volunteer    []Volunteer   `json:"volunteer,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Awards       []Award       `json:"awards,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
	Publications []Publication `json:"publications,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Languages    []Language    `json:"languages,omitempty"`
	Interests    []Interest    `json:"interests,omitempty"`
	References   []Reference   `json:"references,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
	Meta         *Meta         `json:"meta,omitempty"`
}

func (r *Resume) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w struct {
		Schema string  `json:"$schema,omitempty"`
		Basics *Basics `json:"basics,omitempty"`
		Meta   *Meta   `json:"meta,omitempty"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*r = Resume{Schema: w.Schema, Basics: w.Basics, Meta: w.Meta}

	// Sections decode element by element so a rejected field reports its
	// position, e.g. work.2.startDate.
	if err := unmarshalSection(raw["work"], &r.Work); err != nil {
		return err
	}
	if err := unmarshalSection(raw["volunteer"], &r.Volunteer); err != nil {
		return err
	}
	if err := unmarshalSection(raw["education"], &r.Education); err != nil {
		return err
	}
	if err := unmarshalSection(raw["awards"], &r.Awards); err != nil {
		return err
	}
	if err := unmarshalSection(raw["certificates"], &r.Certificates); err != nil {
		return err
	}
	if err := unmarshalSection(raw["publications"], &r.Publications); err != nil {
		return err
	}
	if err := unmarshalSection(raw["skills"], &r.Skills); err != nil {
		return err
	}
	if err := unmarshalSection(raw["languages"], &r.Languages); err != nil {
		return err
	}
	if err := unmarshalSection(raw["interests"], &r.Interests); err != nil {
		return err
	}
	if err := unmarshalSection(raw["references"], &r.References); err != nil {
		return err
	}
	if err := unmarshalSection(raw["projects"], &r.Projects); err != nil {
		return err
	}

	r.Extra = splitExtra(raw, knownResumeSet)
	return nil
}

// unmarshalSection decodes one entity array, rewriting any FieldError path
// to include the element index ("work.startDate" becomes "work.2.startDate").
func unmarshalSection[T any](raw json.RawMessage, out *[]T) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return err
	}
	s := make([]T, len(elems))
	for i, e := range elems {
		if err := json.Unmarshal(e, &s[i]); err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				fe.Field = indexedField(fe.Field, i)
			}
			return err
		}
	}
	*out = s
	return nil
}

func indexedField(field string, i int) string {
	dot := strings.IndexByte(field, '.')
	if dot < 0 {
		return field
	}
	return field[:dot] + "." + strconv.Itoa(i) + field[dot:]
}

func (r Resume) MarshalJSON() ([]byte, error) {
	w := resumeWire{
		Schema:       r.Schema,
		Basics:       r.Basics,
		Work:         r.Work,
		Volunteer:    r.Volunteer,
		Education:    r.Education,
		Awards:       r.Awards,
		Certificates: r.Certificates,
		Publications: r.Publications,
		Skills:       r.Skills,
		Languages:    r.Languages,
		Interests:    r.Interests,
		References:   r.References,
		Projects:     r.Projects,
		Meta:         r.Meta,
	}
	return marshalExtra(r.Extra, w)
}

// Basics holds the person-level header fields.
type Basics struct {
	Name     string    `json:"name,omitempty"`
	Label    string    `json:"label,omitempty"`
	Image    string    `json:"image,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	URL      string    `json:"url,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location *Location `json:"location,omitempty"`
	Profiles []Profile `json:"profiles,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type basicsWire struct {
	Name     string    `json:"name,omitempty"`
	Label    string    `json:"label,omitempty"`
	Image    string    `json:"image,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	URL      string    `json:"url,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location *Location `json:"location,omitempty"`
	Profiles []Profile `json:"profiles,omitempty"`
}

func (bs *Basics) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w basicsWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := checkEmail("basics.email", w.Email); err != nil {
		return err
	}

	*bs = Basics{
		Name:     w.Name,
		Label:    w.Label,
		Image:    w.Image,
		Email:    w.Email,
		Phone:    w.Phone,
		URL:      w.URL,
		Summary:  w.Summary,
		Location: w.Location,
		Profiles: w.Profiles,
	}

	bs.Extra = splitExtra(raw, knownBasicsSet)
	return nil
}

func (bs Basics) MarshalJSON() ([]byte, error) {
	w := basicsWire{
		Name:     bs.Name,
		Label:    bs.Label,
		Image:    bs.Image,
		Email:    bs.Email,
		Phone:    bs.Phone,
		URL:      bs.URL,
		Summary:  bs.Summary,
		Location: bs.Location,
		Profiles: bs.Profiles,
	}
	return marshalExtra(bs.Extra, w)
}

type Location struct {
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	City        string `json:"city,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Region      string `json:"region,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type locationWire struct {
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	City        string `json:"city,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Region      string `json:"region,omitempty"`
}

func (l *Location) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w locationWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := checkCountryCode("basics.location.countryCode", w.CountryCode); err != nil {
		return err
	}

	*l = Location{
		Address:     w.Address,
		PostalCode:  w.PostalCode,
		City:        w.City,
		CountryCode: w.CountryCode,
		Region:      w.Region,
	}

	l.Extra = splitExtra(raw, knownLocationSet)
	return nil
}

func (l Location) MarshalJSON() ([]byte, error) {
	w := locationWire{
		Address:     l.Address,
		PostalCode:  l.PostalCode,
		City:        l.City,
		CountryCode: l.CountryCode,
		Region:      l.Region,
	}
	return marshalExtra(l.Extra, w)
}

// Profile is one social-network presence (network name, username, URL).
type Profile struct {
	Network  string `json:"network,omitempty"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type profileWire struct {
	Network  string `json:"network,omitempty"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
}

func (p *Profile) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w profileWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*p = Profile{Network: w.Network, Username: w.Username, URL: w.URL}

	p.Extra = splitExtra(raw, knownProfileSet)
	return nil
}

func (p Profile) MarshalJSON() ([]byte, error) {
	w := profileWire{Network: p.Network, Username: p.Username, URL: p.URL}
	return marshalExtra(p.Extra, w)
}

// Meta carries document provenance: canonical URI, schema version and the
// time the document was produced.
type Meta struct {
	Canonical    string `json:"canonical,omitempty"`
	Version      string `json:"version,omitempty"`
	LastModified string `json:"lastModified,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type metaWire struct {
	Canonical    string `json:"canonical,omitempty"`
	Version      string `json:"version,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
}

func (m *Meta) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w metaWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*m = Meta{Canonical: w.Canonical, Version: w.Version, LastModified: w.LastModified}

	m.Extra = splitExtra(raw, knownMetaSet)
	return nil
}

func (m Meta) MarshalJSON() ([]byte, error) {
	w := metaWire{Canonical: m.Canonical, Version: m.Version, LastModified: m.LastModified}
	return marshalExtra(m.Extra, w)
}
