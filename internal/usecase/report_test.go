package usecase

import (
	"testing"

	"resume-normalizer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCompleteness(t *testing.T) {
	r := &model.Resume{
		Basics: &model.Basics{
			Name:     "Ada Lovelace",
			Label:    "Analyst",
			Email:    "ada@example.com",
			Location: &model.Location{City: "London"},
		},
		Work:      []model.Work{{Name: "Acme", Position: "Engineer"}},
		Education: []model.Education{{Institution: "Imperial College"}},
		Skills:    []model.Skill{{Name: "Go"}},
		Languages: []model.Language{{Language: "English"}},
	}

	report := ReportCompleteness(r)
	assert.False(t, report.Complete) // projects, certificates etc. are empty

	byName := map[string]SectionReport{}
	for _, s := range report.Sections {
		byName[s.Section] = s
	}

	assert.True(t, byName["basics"].Present)
	assert.Empty(t, byName["basics"].Missing)
	assert.True(t, byName["work"].Present)
	assert.Equal(t, 1, byName["work"].Count)
	assert.False(t, byName["projects"].Present)
}

func TestReportCompletenessFlagsMissingIdentity(t *testing.T) {
	report := ReportCompleteness(&model.Resume{Basics: &model.Basics{}})
	require.NotEmpty(t, report.Sections)
	basics := report.Sections[0]
	assert.Contains(t, basics.Missing, "basics.name")
	assert.Contains(t, basics.Missing, "basics.email")
	assert.False(t, report.Complete)
}

func TestReportCompletenessFlagsAnonymousWork(t *testing.T) {
	report := ReportCompleteness(&model.Resume{
		Basics: &model.Basics{Name: "Ada", Label: "x", Email: "a@b.co", Location: &model.Location{}},
		Work:   []model.Work{{Position: "Engineer"}, {Name: "Acme"}},
	})

	var work SectionReport
	for _, s := range report.Sections {
		if s.Section == "work" {
			work = s
		}
	}
	assert.Contains(t, work.Missing, "work[0].name")
	assert.Contains(t, work.Missing, "work[1].position")
}
