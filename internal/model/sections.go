package model

import "encoding/json"

var (
	knownWorkSet = knownSet(
		"name", "location", "description", "position", "url",
		"startDate", "endDate", "summary", "highlights",
	)
	knownVolunteerSet = knownSet(
		"organization", "position", "url", "startDate", "endDate",
		"summary", "highlights",
	)
	knownEducationSet = knownSet(
		"institution", "url", "area", "studyType", "startDate", "endDate",
		"score", "courses",
	)
	knownAwardSet = knownSet(
		"title", "date", "awarder", "summary",
	)
	knownCertificateSet = knownSet(
		"name", "date", "endDate", "url", "issuer",
	)
	knownPublicationSet = knownSet(
		"name", "publisher", "releaseDate", "url", "summary",
	)
	knownSkillSet = knownSet(
		"name", "level", "keywords",
	)
	knownLanguageSet = knownSet(
		"language", "fluency",
	)
	knownInterestSet = knownSet(
		"name", "keywords",
	)
	knownReferenceSet = knownSet(
		"name", "reference",
	)
	knownProjectSet = knownSet(
		"name", "description", "highlights", "keywords", "startDate",
		"endDate", "url", "roles", "entity", "type",
	)
)

// Work is one employment entry. Description holds the raw source text;
// Summary and Highlights are derived from it by segmentation. A present
// start date with no end date means the position is ongoing, which is a
// display concern only (renderers show "Present").
type Work struct {
	Name        string   `json:"name,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Position    string   `json:"position,omitempty"`
	URL         string   `json:"url,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type workWire struct {
	Name        string   `json:"name,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Position    string   `json:"position,omitempty"`
	URL         string   `json:"url,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

func (wk *Work) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w workWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := checkDate("work.startDate", w.StartDate); err != nil {
		return err
	}
	if err := checkDate("work.endDate", w.EndDate); err != nil {
		return err
	}

	*wk = Work{
		Name:        w.Name,
		Location:    w.Location,
		Description: w.Description,
		Position:    w.Position,
		URL:         w.URL,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Summary:     w.Summary,
		Highlights:  w.Highlights,
	}

	wk.Extra = splitExtra(raw, knownWorkSet)
	return nil
}

func (wk Work) MarshalJSON() ([]byte, error) {
	w := workWire{
		Name:        wk.Name,
		Location:    wk.Location,
		Description: wk.Description,
		Position:    wk.Position,
		URL:         wk.URL,
		StartDate:   wk.StartDate,
		EndDate:     wk.EndDate,
		Summary:     wk.Summary,
		Highlights:  wk.Highlights,
	}
	return marshalExtra(wk.Extra, w)
}

type Volunteer struct {
	Organization string   `json:"organization,omitempty"`
	Position     string   `json:"position,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type volunteerWire struct {
	Organization string   `json:"organization,omitempty"`
	Position     string   `json:"position,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

func (v *Volunteer) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w volunteerWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := checkDate("volunteer.startDate", w.StartDate); err != nil {
		return err
	}
	if err := checkDate("volunteer.endDate", w.EndDate); err != nil {
		return err
	}

	*v = Volunteer{
		Organization: w.Organization,
		Position:     w.Position,
		URL:          w.URL,
		StartDate:    w.StartDate,
		EndDate:      w.EndDate,
		Summary:      w.Summary,
		Highlights:   w.Highlights,
	}

	v.Extra = splitExtra(raw, knownVolunteerSet)
	return nil
}

func (v Volunteer) MarshalJSON() ([]byte, error) {
	w := volunteerWire{
		Organization: v.Organization,
		Position:     v.Position,
		URL:          v.URL,
		StartDate:    v.StartDate,
		EndDate:      v.EndDate,
		Summary:      v.Summary,
		Highlights:   v.Highlights,
	}
	return marshalExtra(v.Extra, w)
}

type Education struct {
	Institution string   `json:"institution,omitempty"`
	URL         string   `json:"url,omitempty"`
	Area        string   `json:"area,omitempty"`
	StudyType   string   `json:"studyType,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Score       string   `json:"score,omitempty"`
	Courses     []string `json:"courses,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type educationWire struct {
	Institution string   `json:"institution,omitempty"`
	URL         string   `json:"url,omitempty"`
	Area        string   `json:"area,omitempty"`
	StudyType   string   `json:"studyType,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Score       string   `json:"score,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

func (e *Education) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w educationWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := checkDate("education.startDate", w.StartDate); err != nil {
		return err
	}
	if err := checkDate("education.endDate", w.EndDate); err != nil {
		return err
	}

	*e = Education{
		Institution: w.Institution,
		URL:         w.URL,
		Area:        w.Area,
		StudyType:   w.StudyType,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Score:       w.Score,
		Courses:     w.Courses,
	}

	e.Extra = splitExtra(raw, knownEducationSet)
	return nil
}

func (e Education) MarshalJSON() ([]byte, error) {
	w := educationWire{
		Institution: e.Institution,
		URL:         e.URL,
		Area:        e.Area,
		StudyType:   e.StudyType,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Score:       e.Score,
		Courses:     e.Courses,
	}
	return marshalExtra(e.Extra, w)
}

type Award struct {
	Title   string `json:"title,omitempty"`
	Date    string `json:"date,omitempty"`
	Awarder string `json:"awarder,omitempty"`
	Summary string `json:"summary,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type awardWire struct {
	Title   string `json:"title,omitempty"`
	Date    string `json:"date,omitempty"`
	Awarder string `json:"awarder,omitempty"`
	Summary string `json:"summary,omitempty"`
}

func (a *Award) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w awardWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := checkDate("awards.date", w.Date); err != nil {
		return err
	}

	*a = Award{Title: w.Title, Date: w.Date, Awarder: w.Awarder, Summary: w.Summary}

	a.Extra = splitExtra(raw, knownAwardSet)
	return nil
}

func (a Award) MarshalJSON() ([]byte, error) {
	w := awardWire{Title: a.Title, Date: a.Date, Awarder: a.Awarder, Summary: a.Summary}
	return marshalExtra(a.Extra, w)
}

// Certificate carries an optional endDate for credentials that expire.
type Certificate struct {
	Name    string `json:"name,omitempty"`
	Date    string `json:"date,omitempty"`
	EndDate string `json:"endDate,omitempty"`
	URL     string `json:"url,omitempty"`
	Issuer  string `json:"issuer,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type certificateWire struct {
	Name    string `json:"name,omitempty"`
	Date    string `json:"date,omitempty"`
	EndDate string `json:"endDate,omitempty"`
	URL     string `json:"url,omitempty"`
	Issuer  string `json:"issuer,omitempty"`
}

func (c *Certificate) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w certificateWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := checkDate("certificates.date", w.Date); err != nil {
		return err
	}
	if err := checkDate("certificates.endDate", w.EndDate); err != nil {
		return err
	}

	*c = Certificate{Name: w.Name, Date: w.Date, EndDate: w.EndDate, URL: w.URL, Issuer: w.Issuer}

	c.Extra = splitExtra(raw, knownCertificateSet)
	return nil
}

func (c Certificate) MarshalJSON() ([]byte, error) {
	w := certificateWire{Name: c.Name, Date: c.Date, EndDate: c.EndDate, URL: c.URL, Issuer: c.Issuer}
	return marshalExtra(c.Extra, w)
}

type Publication struct {
	Name        string `json:"name,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	URL         string `json:"url,omitempty"`
	Summary     string `json:"summary,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type publicationWire struct {
	Name        string `json:"name,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	URL         string `json:"url,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

func (p *Publication) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w publicationWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := checkDate("publications.releaseDate", w.ReleaseDate); err != nil {
		return err
	}

	*p = Publication{
		Name:        w.Name,
		Publisher:   w.Publisher,
		ReleaseDate: w.ReleaseDate,
		URL:         w.URL,
		Summary:     w.Summary,
	}

	p.Extra = splitExtra(raw, knownPublicationSet)
	return nil
}

func (p Publication) MarshalJSON() ([]byte, error) {
	w := publicationWire{
		Name:        p.Name,
		Publisher:   p.Publisher,
		ReleaseDate: p.ReleaseDate,
		URL:         p.URL,
		Summary:     p.Summary,
	}
	return marshalExtra(p.Extra, w)
}

type Skill struct {
	Name     string   `json:"name,omitempty"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type skillWire struct {
	Name     string   `json:"name,omitempty"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

func (s *Skill) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w skillWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*s = Skill{Name: w.Name, Level: w.Level, Keywords: w.Keywords}

	s.Extra = splitExtra(raw, knownSkillSet)
	return nil
}

func (s Skill) MarshalJSON() ([]byte, error) {
	w := skillWire{Name: s.Name, Level: s.Level, Keywords: s.Keywords}
	return marshalExtra(s.Extra, w)
}

type Language struct {
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type languageWire struct {
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`
}

func (l *Language) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w languageWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*l = Language{Language: w.Language, Fluency: w.Fluency}

	l.Extra = splitExtra(raw, knownLanguageSet)
	return nil
}

func (l Language) MarshalJSON() ([]byte, error) {
	w := languageWire{Language: l.Language, Fluency: l.Fluency}
	return marshalExtra(l.Extra, w)
}

type Interest struct {
	Name     string   `json:"name,omitempty"`
	Keywords []string `json:"keywords,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type interestWire struct {
	Name     string   `json:"name,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

func (i *Interest) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w interestWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*i = Interest{Name: w.Name, Keywords: w.Keywords}

	i.Extra = splitExtra(raw, knownInterestSet)
	return nil
}

func (i Interest) MarshalJSON() ([]byte, error) {
	w := interestWire{Name: i.Name, Keywords: i.Keywords}
	return marshalExtra(i.Extra, w)
}

type Reference struct {
	Name      string `json:"name,omitempty"`
	Reference string `json:"reference,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type referenceWire struct {
	Name      string `json:"name,omitempty"`
	Reference string `json:"reference,omitempty"`
}

func (r *Reference) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w referenceWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*r = Reference{Name: w.Name, Reference: w.Reference}

	r.Extra = splitExtra(raw, knownReferenceSet)
	return nil
}

func (r Reference) MarshalJSON() ([]byte, error) {
	w := referenceWire{Name: r.Name, Reference: r.Reference}
	return marshalExtra(r.Extra, w)
}

type Project struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	URL         string   `json:"url,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Entity      string   `json:"entity,omitempty"`
	Type        string   `json:"type,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type projectWire struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	URL         string   `json:"url,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Entity      string   `json:"entity,omitempty"`
	Type        string   `json:"type,omitempty"`
}

func (p *Project) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var w projectWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := checkDate("projects.startDate", w.StartDate); err != nil {
		return err
	}
	if err := checkDate("projects.endDate", w.EndDate); err != nil {
		return err
	}

	*p = Project{
		Name:        w.Name,
		Description: w.Description,
		Highlights:  w.Highlights,
		Keywords:    w.Keywords,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		URL:         w.URL,
		Roles:       w.Roles,
		Entity:      w.Entity,
		Type:        w.Type,
	}

	p.Extra = splitExtra(raw, knownProjectSet)
	return nil
}

func (p Project) MarshalJSON() ([]byte, error) {
	w := projectWire{
		Name:        p.Name,
		Description: p.Description,
		Highlights:  p.Highlights,
		Keywords:    p.Keywords,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		URL:         p.URL,
		Roles:       p.Roles,
		Entity:      p.Entity,
		Type:        p.Type,
	}
	return marshalExtra(p.Extra, w)
}
