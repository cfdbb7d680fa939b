// Package linkedin holds the source-specific shapes returned by the
// profile-fetch API, plus a thin read-only client. The shapes here mirror
// the wire format of the source; nothing outside the normalizer should
// depend on them.
package linkedin

// Date is a partial calendar date as the source reports it. A zero Month
// means the source only knows the year.
type Date struct {
	Month int `json:"month,omitempty"`
	Year  int `json:"year,omitempty"`
}

// TimePeriod brackets an experience or education entry. EndDate is nil for
// ongoing entries.
type TimePeriod struct {
	StartDate *Date `json:"startDate,omitempty"`
	EndDate   *Date `json:"endDate,omitempty"`
}

// VectorImage is the source's multi-resolution image container: a root URL
// plus per-size path segments.
type VectorImage struct {
	RootURL   string          `json:"rootUrl,omitempty"`
	Artifacts []ImageArtifact `json:"artifacts,omitempty"`
}

type ImageArtifact struct {
	Width                         int    `json:"width,omitempty"`
	Height                        int    `json:"height,omitempty"`
	FileIdentifyingURLPathSegment string `json:"fileIdentifyingUrlPathSegment,omitempty"`
}

type PictureContainer struct {
	VectorImage *VectorImage `json:"vectorImage,omitempty"`
}

// BasicLocation is the structured part of a member location.
type BasicLocation struct {
	PostalCode  string `json:"postalCode,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

type MemberLocation struct {
	BasicLocation *BasicLocation `json:"basicLocation,omitempty"`
}

// EmployeeCountRange is the company-size bracket the source attaches to an
// experience entry. It has no canonical slot and is preserved verbatim.
type EmployeeCountRange struct {
	Start int `json:"start,omitempty"`
	End   int `json:"end,omitempty"`
}

type Company struct {
	EmployeeCountRange *EmployeeCountRange `json:"employeeCountRange,omitempty"`
	Industries         []string            `json:"industries,omitempty"`
	LogoURL            string              `json:"logoUrl,omitempty"`
}

type Experience struct {
	CompanyName  string      `json:"companyName,omitempty"`
	Title        string      `json:"title,omitempty"`
	Description  string      `json:"description,omitempty"`
	LocationName string      `json:"locationName,omitempty"`
	TimePeriod   *TimePeriod `json:"timePeriod,omitempty"`
	Company      *Company    `json:"company,omitempty"`
}

type Education struct {
	SchoolName    string      `json:"schoolName,omitempty"`
	DegreeName    string      `json:"degreeName,omitempty"`
	FieldOfStudy  string      `json:"fieldOfStudy,omitempty"`
	Grade         string      `json:"grade,omitempty"`
	TimePeriod    *TimePeriod `json:"timePeriod,omitempty"`
	Courses       []string    `json:"courses,omitempty"`
	Honors        []string    `json:"honors,omitempty"`
	TestScores    []TestScore `json:"testScores,omitempty"`
	SchoolLogoURL string      `json:"schoolLogoUrl,omitempty"`
}

type TestScore struct {
	Name  string `json:"name,omitempty"`
	Score string `json:"score,omitempty"`
}

type Skill struct {
	Name string `json:"name,omitempty"`
}

// Proficiency is the source's closed fluency enumeration.
type Proficiency string

const (
	ProficiencyNativeOrBilingual   Proficiency = "NATIVE_OR_BILINGUAL"
	ProficiencyFullProfessional    Proficiency = "FULL_PROFESSIONAL"
	ProficiencyProfessionalWorking Proficiency = "PROFESSIONAL_WORKING"
	ProficiencyLimitedWorking      Proficiency = "LIMITED_WORKING"
	ProficiencyElementary          Proficiency = "ELEMENTARY"
)

type Language struct {
	Name        string      `json:"name,omitempty"`
	Proficiency Proficiency `json:"proficiency,omitempty"`
}

type Certification struct {
	Name       string      `json:"name,omitempty"`
	Authority  string      `json:"authority,omitempty"`
	URL        string      `json:"url,omitempty"`
	TimePeriod *TimePeriod `json:"timePeriod,omitempty"`
}

type Honor struct {
	Title       string `json:"title,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
	IssueDate   *Date  `json:"issueDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type Publication struct {
	Name        string `json:"name,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	URL         string `json:"url,omitempty"`
	Date        *Date  `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

type Project struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url,omitempty"`
	TimePeriod  *TimePeriod `json:"timePeriod,omitempty"`
}

// Cause is a volunteer cause the member follows. The source has no direct
// interests concept; causes stand in for it.
type Cause struct {
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
}

type VolunteerExperience struct {
	CompanyName string      `json:"companyName,omitempty"`
	Role        string      `json:"role,omitempty"`
	Description string      `json:"description,omitempty"`
	Cause       string      `json:"cause,omitempty"`
	TimePeriod  *TimePeriod `json:"timePeriod,omitempty"`
}

// Profile is one member profile snapshot as returned by the fetch API.
// Direct contact details are never present here; they come from a separate
// ContactInfo view.
type Profile struct {
	FirstName       string          `json:"firstName,omitempty"`
	LastName        string          `json:"lastName,omitempty"`
	Headline        string          `json:"headline,omitempty"`
	Summary         string          `json:"summary,omitempty"`
	Address         string          `json:"address,omitempty"`
	GeoLocationName string          `json:"geoLocationName,omitempty"`
	GeoCountryName  string          `json:"geoCountryName,omitempty"`
	Location        *MemberLocation `json:"location,omitempty"`

	ProfilePictureOriginalImage *PictureContainer `json:"profilePictureOriginalImage,omitempty"`

	Experience      []Experience          `json:"experience,omitempty"`
	Education       []Education           `json:"education,omitempty"`
	Skills          []Skill               `json:"skills,omitempty"`
	Languages       []Language            `json:"languages,omitempty"`
	Certifications  []Certification       `json:"certifications,omitempty"`
	Honors          []Honor               `json:"honors,omitempty"`
	Publications    []Publication         `json:"publications,omitempty"`
	Projects        []Project             `json:"projects,omitempty"`
	Volunteer       []VolunteerExperience `json:"volunteer,omitempty"`
	VolunteerCauses []Cause               `json:"volunteerCauses,omitempty"`
}

type Website struct {
	URL   string `json:"url,omitempty"`
	Label string `json:"label,omitempty"`
}

// ContactInfo is the separate contact-details view. It is only available
// for connections, so normalization treats it as an optional overlay.
type ContactInfo struct {
	EmailAddress string    `json:"emailAddress,omitempty"`
	PhoneNumbers []string  `json:"phoneNumbers,omitempty"`
	Websites     []Website `json:"websites,omitempty"`
	Twitter      []string  `json:"twitter,omitempty"`
}
