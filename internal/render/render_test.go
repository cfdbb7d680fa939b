package render

import (
	"strings"
	"testing"

	"resume-normalizer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderOf(t *testing.T, r *model.Resume) string {
	t.Helper()
	h, err := NewHTMLRenderer()
	require.NoError(t, err)
	out, err := h.Render(r)
	require.NoError(t, err)
	return out
}

func TestRenderBasics(t *testing.T) {
	out := renderOf(t, &model.Resume{
		Basics: &model.Basics{
			Name:    "Ada Lovelace",
			Label:   "Analyst",
			Email:   "ada@example.com",
			Summary: "Working on analytical engines.",
			Location: &model.Location{
				City:        "London",
				CountryCode: "GB",
			},
		},
	})

	assert.Contains(t, out, "<h1>Ada Lovelace</h1>")
	assert.Contains(t, out, "mailto:ada@example.com")
	assert.Contains(t, out, "London, GB")
	assert.Contains(t, out, "Working on analytical engines.")
	// stylesheet is inlined for a self-contained artifact
	assert.Contains(t, out, "<style>")
}

func TestRenderOmitsEmptySections(t *testing.T) {
	out := renderOf(t, &model.Resume{Basics: &model.Basics{Name: "Ada"}})

	assert.NotContains(t, out, "Work Experience")
	assert.NotContains(t, out, "Education")
	assert.NotContains(t, out, "Skills")
	assert.NotContains(t, out, "Languages")
}

func TestRenderWorkDates(t *testing.T) {
	out := renderOf(t, &model.Resume{
		Work: []model.Work{
			{Name: "Acme", Position: "Engineer", StartDate: "2019-06", EndDate: "2021"},
			{Name: "Umbrella", StartDate: "2021"},
		},
	})

	assert.Contains(t, out, "2019-06 to 2021")
	assert.Contains(t, out, "2021 to Present")
}

func TestRenderHighlightsAsList(t *testing.T) {
	out := renderOf(t, &model.Resume{
		Work: []model.Work{
			{Name: "Acme", Highlights: []string{"Shipped v2", "Cut costs 20%"}},
		},
	})

	assert.Contains(t, out, "<li>Shipped v2</li>")
	assert.Contains(t, out, "<li>Cut costs 20%</li>")
}

func TestRenderEscapesUserContent(t *testing.T) {
	out := renderOf(t, &model.Resume{
		Basics: &model.Basics{Name: `<script>alert("x")</script>`},
	})
	assert.NotContains(t, out, "<script>alert")
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "2019 to 2021", dateRange("2019", "2021"))
	assert.Equal(t, "2019 to Present", dateRange("2019", ""))
	assert.Equal(t, "to 2021", dateRange("", "2021"))
	assert.Equal(t, "", dateRange("", ""))
}

func TestRenderSkillsAndLanguages(t *testing.T) {
	out := renderOf(t, &model.Resume{
		Skills:    []model.Skill{{Name: "Go", Keywords: []string{"Go", "concurrency"}}},
		Languages: []model.Language{{Language: "English", Fluency: "Native"}},
	})

	assert.Contains(t, out, `<span class="skill-name">Go</span>`)
	assert.Contains(t, out, "Go, concurrency")
	assert.Contains(t, out, "English - Native")
	assert.True(t, strings.Contains(out, "Skills") && strings.Contains(out, "Languages"))
}
