package usecase

import (
	"fmt"

	"resume-normalizer/internal/model"
)

// SectionReport holds completeness state for one resume section.
type SectionReport struct {
	Section string   `json:"section"`
	Present bool     `json:"present"`
	Count   int      `json:"count,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// CompletenessReport summarizes which sections of a normalized resume carry
// content and which identity fields are still missing. It is advisory; a
// sparse resume is still a valid resume.
type CompletenessReport struct {
	Complete bool            `json:"complete"`
	Sections []SectionReport `json:"sections"`
}

// ReportCompleteness inspects a normalized resume section by section.
func ReportCompleteness(r *model.Resume) *CompletenessReport {
	out := &CompletenessReport{Complete: true}

	out.add(basicsReport(r.Basics))
	out.add(sliceReport("work", len(r.Work), workMissing(r.Work)))
	out.add(sliceReport("education", len(r.Education), nil))
	out.add(sliceReport("skills", len(r.Skills), nil))
	out.add(sliceReport("languages", len(r.Languages), nil))
	out.add(sliceReport("projects", len(r.Projects), nil))
	out.add(sliceReport("certificates", len(r.Certificates), nil))
	out.add(sliceReport("publications", len(r.Publications), nil))
	out.add(sliceReport("awards", len(r.Awards), nil))
	out.add(sliceReport("volunteer", len(r.Volunteer), nil))
	out.add(sliceReport("interests", len(r.Interests), nil))

	return out
}

func (r *CompletenessReport) add(s SectionReport) {
	if !s.Present || len(s.Missing) > 0 {
		r.Complete = false
	}
	r.Sections = append(r.Sections, s)
}

func basicsReport(b *model.Basics) SectionReport {
	s := SectionReport{Section: "basics"}
	if b == nil {
		s.Missing = append(s.Missing, "basics")
		return s
	}
	s.Present = true
	if b.Name == "" {
		s.Missing = append(s.Missing, "basics.name")
	}
	if b.Label == "" {
		s.Missing = append(s.Missing, "basics.label")
	}
	if b.Email == "" {
		s.Missing = append(s.Missing, "basics.email")
	}
	if b.Location == nil {
		s.Missing = append(s.Missing, "basics.location")
	}
	return s
}

func sliceReport(name string, count int, missing []string) SectionReport {
	return SectionReport{
		Section: name,
		Present: count > 0,
		Count:   count,
		Missing: missing,
	}
}

// workMissing flags entries with no employer or position. Undated entries
// are not flagged; plenty of real histories omit dates.
func workMissing(work []model.Work) []string {
	var missing []string
	for i, w := range work {
		if w.Name == "" {
			missing = append(missing, fmt.Sprintf("work[%d].name", i))
		}
		if w.Position == "" {
			missing = append(missing, fmt.Sprintf("work[%d].position", i))
		}
	}
	return missing
}
