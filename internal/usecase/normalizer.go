package usecase

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"resume-normalizer/internal/model"
	"resume-normalizer/pkg/linkedin"

	"golang.org/x/net/publicsuffix"
)

const (
	resumeSchemaURL = "https://raw.githubusercontent.com/jsonresume/resume-schema/v1.0.0/schema.json"
	schemaVersion   = "v1.0.0"
)

// Source fields with no canonical slot are preserved in the per-entity Extra
// maps under these keys.
const (
	extraEmployeeCountRange = "employeeCountRange"
	extraIndustries         = "industries"
	extraCompanyLogo        = "companyLogo"
	extraCause              = "cause"
	extraDescription        = "description"
	extraSchoolLogo         = "schoolLogo"
)

// conversion collects the audit trail for one normalization pass: every
// source field that degraded to absent is recorded so callers can see what
// was dropped without treating it as an error.
type conversion struct {
	warnings []string
}

func (c *conversion) skip(field, reason string) {
	c.warnings = append(c.warnings, fmt.Sprintf("%s: %s", field, reason))
}

// FromProfile converts one source profile snapshot into a canonical Resume.
// A malformed or unmappable sub-field degrades that field to absent and is
// noted in the returned audit list; the conversion itself never fails.
// Empty source sequences produce no canonical sequence at all.
func FromProfile(p *linkedin.Profile) (*model.Resume, []string) {
	c := &conversion{}

	r := &model.Resume{Schema: resumeSchemaURL}
	r.Basics = c.basics(p)

	for _, exp := range p.Experience {
		r.Work = append(r.Work, c.work(exp))
	}
	for _, v := range p.Volunteer {
		r.Volunteer = append(r.Volunteer, c.volunteer(v))
	}
	for _, edu := range p.Education {
		r.Education = append(r.Education, c.education(edu))
	}
	for _, h := range p.Honors {
		r.Awards = append(r.Awards, model.Award{
			Title:   h.Title,
			Awarder: h.Issuer,
			Date:    c.date("awards.date", h.IssueDate),
			Summary: h.Description,
		})
	}
	for _, cert := range p.Certifications {
		var start, end string
		if cert.TimePeriod != nil {
			start = c.date("certificates.date", cert.TimePeriod.StartDate)
			end = c.date("certificates.endDate", cert.TimePeriod.EndDate)
		}
		r.Certificates = append(r.Certificates, model.Certificate{
			Name:    cert.Name,
			Issuer:  cert.Authority,
			URL:     cert.URL,
			Date:    start,
			EndDate: end,
		})
	}
	for _, pub := range p.Publications {
		r.Publications = append(r.Publications, model.Publication{
			Name:        pub.Name,
			Publisher:   pub.Publisher,
			ReleaseDate: c.date("publications.releaseDate", pub.Date),
			URL:         pub.URL,
			Summary:     pub.Description,
		})
	}
	for _, s := range p.Skills {
		// the source has no proficiency or keyword concept; the skill's
		// own name is its only keyword
		r.Skills = append(r.Skills, model.Skill{
			Name:     s.Name,
			Keywords: []string{s.Name},
		})
	}
	for _, l := range p.Languages {
		r.Languages = append(r.Languages, model.Language{
			Language: l.Name,
			Fluency:  c.fluencyLabel(l),
		})
	}
	for _, cause := range p.VolunteerCauses {
		in := model.Interest{Name: cause.Name}
		if cause.Category != "" {
			in.Keywords = []string{cause.Category}
		}
		r.Interests = append(r.Interests, in)
	}
	for _, proj := range p.Projects {
		start, end := c.datesOf("projects", proj.TimePeriod)
		r.Projects = append(r.Projects, model.Project{
			Name:        proj.Title,
			Description: proj.Description,
			URL:         proj.URL,
			StartDate:   start,
			EndDate:     end,
		})
	}

	// Meta is stamped with our processing time; the source has no
	// last-modified concept for a profile snapshot.
	r.Meta = &model.Meta{
		Version:      schemaVersion,
		LastModified: time.Now().UTC().Format(time.RFC3339),
	}

	return r, c.warnings
}

func (c *conversion) basics(p *linkedin.Profile) *model.Basics {
	return &model.Basics{
		Name:     fullName(p.FirstName, p.LastName),
		Label:    p.Headline,
		Summary:  p.Summary,
		Image:    c.profileImageURL(p),
		Location: c.location(p),
	}
}

// fullName synthesizes a display name from whichever name parts exist.
func fullName(first, last string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}

// profileImageURL joins the image root URL with the first artifact's path
// segment. Best-effort: anything that does not come out as an absolute URL
// degrades to absent.
func (c *conversion) profileImageURL(p *linkedin.Profile) string {
	pic := p.ProfilePictureOriginalImage
	if pic == nil || pic.VectorImage == nil {
		return ""
	}
	vi := pic.VectorImage
	if vi.RootURL == "" || len(vi.Artifacts) == 0 {
		return ""
	}
	full := vi.RootURL + vi.Artifacts[0].FileIdentifyingURLPathSegment
	u, err := url.Parse(full)
	if err != nil || u.Scheme == "" {
		c.skip("basics.image", "profile image URL did not parse: "+full)
		return ""
	}
	return u.String()
}

func (c *conversion) location(p *linkedin.Profile) *model.Location {
	if p.GeoCountryName == "" && p.GeoLocationName == "" && p.Address == "" {
		return nil
	}

	loc := &model.Location{
		Address: p.Address,
		City:    p.GeoLocationName,
	}
	if p.Location != nil && p.Location.BasicLocation != nil {
		loc.PostalCode = p.Location.BasicLocation.PostalCode
		cc := p.Location.BasicLocation.CountryCode
		if model.ValidCountryCode(cc) {
			loc.CountryCode = cc
		} else if cc != "" {
			c.skip("basics.location.countryCode", "structured country code did not validate: "+cc)
		}
	}
	if loc.CountryCode == "" && p.GeoCountryName != "" {
		loc.CountryCode = lookupCountryCode(p.GeoCountryName)
		if loc.CountryCode == "" {
			c.skip("basics.location.countryCode", "no code mapping for country name "+p.GeoCountryName)
		}
	}
	return loc
}

func (c *conversion) work(exp linkedin.Experience) model.Work {
	w := model.Work{
		Name:        exp.CompanyName,
		Position:    exp.Title,
		Location:    exp.LocationName,
		Description: exp.Description,
	}
	w.StartDate, w.EndDate = c.datesOf("work", exp.TimePeriod)
	if exp.Description != "" {
		w.Summary, w.Highlights = SegmentDescription(exp.Description)
	}
	if exp.Company != nil {
		if exp.Company.EmployeeCountRange != nil {
			w.Extra = addExtra(w.Extra, extraEmployeeCountRange, exp.Company.EmployeeCountRange)
		}
		if len(exp.Company.Industries) > 0 {
			w.Extra = addExtra(w.Extra, extraIndustries, exp.Company.Industries)
		}
		if exp.Company.LogoURL != "" {
			w.Extra = addExtra(w.Extra, extraCompanyLogo, exp.Company.LogoURL)
		}
	}
	return w
}

func (c *conversion) volunteer(v linkedin.VolunteerExperience) model.Volunteer {
	out := model.Volunteer{
		Organization: v.CompanyName,
		Position:     v.Role,
	}
	out.StartDate, out.EndDate = c.datesOf("volunteer", v.TimePeriod)
	if v.Description != "" {
		out.Summary, out.Highlights = SegmentDescription(v.Description)
	}
	if v.Cause != "" {
		out.Extra = addExtra(out.Extra, extraCause, v.Cause)
	}
	return out
}

func (c *conversion) education(edu linkedin.Education) model.Education {
	e := model.Education{
		Institution: edu.SchoolName,
		StudyType:   edu.DegreeName,
		Area:        edu.FieldOfStudy,
		Score:       edu.Grade,
		Courses:     edu.Courses,
	}
	e.StartDate, e.EndDate = c.datesOf("education", edu.TimePeriod)

	// Honors and test scores are distinct source concepts with no canonical
	// slot; they become lines of a synthesized description in the Extra map
	// rather than being folded into score or courses.
	var lines []string
	lines = append(lines, edu.Honors...)
	for _, ts := range edu.TestScores {
		lines = append(lines, ts.Name+": "+ts.Score)
	}
	if len(lines) > 0 {
		e.Extra = addExtra(e.Extra, extraDescription, strings.Join(lines, "\n"))
	}
	if edu.SchoolLogoURL != "" {
		e.Extra = addExtra(e.Extra, extraSchoolLogo, edu.SchoolLogoURL)
	}
	return e
}

// fluencyLabel maps the source's closed proficiency enumeration to a fixed
// canonical label. Full-professional and professional-working collapse to
// the same label; that distinction is knowingly lost.
func (c *conversion) fluencyLabel(l linkedin.Language) string {
	switch l.Proficiency {
	case linkedin.ProficiencyNativeOrBilingual:
		return "Native"
	case linkedin.ProficiencyFullProfessional, linkedin.ProficiencyProfessionalWorking:
		return "Professional"
	case linkedin.ProficiencyLimitedWorking:
		return "Conversational"
	case linkedin.ProficiencyElementary:
		return "Elementary"
	case "":
		return "Unknown"
	default:
		c.skip("languages.fluency", "unrecognized proficiency "+string(l.Proficiency))
		return "Unknown"
	}
}

// datesOf derives the canonical start/end date strings from a source time
// period. Month-level precision yields YYYY-MM; year-only sources yield YYYY.
func (c *conversion) datesOf(field string, tp *linkedin.TimePeriod) (start, end string) {
	if tp == nil {
		return "", ""
	}
	return c.date(field+".startDate", tp.StartDate), c.date(field+".endDate", tp.EndDate)
}

// date formats a source date and guards the result against the canonical
// date syntax. Components outside the canonical range degrade to absent
// with a warning instead of poisoning the document.
func (c *conversion) date(field string, d *linkedin.Date) string {
	s := formatSourceDate(d)
	if s != "" && !model.ValidDate(s) {
		c.skip(field, "source date out of range: "+s)
		return ""
	}
	return s
}

func formatSourceDate(d *linkedin.Date) string {
	if d == nil || d.Year == 0 {
		return ""
	}
	if d.Month == 0 {
		return fmt.Sprintf("%04d", d.Year)
	}
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
}

// MergeContactInfo overlays the separate contact-details view onto basics
// already built from a profile. Fields the profile filled in are kept;
// only gaps are populated. Returns the audit list of skipped values.
func MergeContactInfo(b *model.Basics, ci *linkedin.ContactInfo) []string {
	c := &conversion{}
	if b == nil || ci == nil {
		return nil
	}

	if b.Email == "" && ci.EmailAddress != "" {
		if model.ValidEmail(ci.EmailAddress) {
			b.Email = ci.EmailAddress
		} else {
			c.skip("basics.email", "contact email did not validate: "+ci.EmailAddress)
		}
	}
	if b.Phone == "" && len(ci.PhoneNumbers) > 0 {
		b.Phone = ci.PhoneNumbers[0]
	}

	for _, site := range ci.Websites {
		u, err := url.Parse(site.URL)
		if err != nil || u.Scheme == "" {
			c.skip("basics.profiles", "website URL did not parse: "+site.URL)
			continue
		}
		network := site.Label
		if network == "" {
			network = siteLabel(u)
		}
		if network == "" {
			network = "Website"
		}
		b.Profiles = append(b.Profiles, model.Profile{Network: network, URL: u.String()})
	}
	for _, handle := range ci.Twitter {
		b.Profiles = append(b.Profiles, model.Profile{
			Network:  "Twitter",
			Username: handle,
			URL:      "https://twitter.com/" + handle,
		})
	}

	return c.warnings
}

// siteLabel derives a tidy network label from a website host (eTLD+1
// without the www prefix).
func siteLabel(u *url.URL) string {
	host := u.Hostname()
	if host == "" {
		return ""
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

// addExtra marshals v under key, lazily allocating the map. Marshal failures
// cannot occur for the plain values routed here.
func addExtra(m map[string]json.RawMessage, key string, v interface{}) map[string]json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return m
	}
	if m == nil {
		m = map[string]json.RawMessage{}
	}
	m[key] = b
	return m
}
