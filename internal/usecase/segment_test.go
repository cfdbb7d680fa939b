package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Golden inputs. The exact split behavior matters for documents already in
// the wild, so these pin it down; do not "fix" the sticky highlights case.
func TestSegmentDescription(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		summary    string
		highlights []string
	}{
		{
			name:       "summary then bullets",
			input:      "Led the team.\n• Shipped v2\n• Cut costs 20%",
			summary:    "Led the team.",
			highlights: []string{"Shipped v2", "Cut costs 20%"},
		},
		{
			name:       "prose only joins with spaces",
			input:      "Built tools.\nMentored juniors.",
			summary:    "Built tools. Mentored juniors.",
			highlights: nil,
		},
		{
			name:       "unmarked line after bullets stays a highlight",
			input:      "• Did X\nAlso did Y",
			summary:    "",
			highlights: []string{"Did X", "Also did Y"},
		},
		{
			name:       "dash and star markers",
			input:      "- first\n* second",
			summary:    "",
			highlights: []string{"first", "second"},
		},
		{
			name:       "numbered lines",
			input:      "Overview line\n1. delivered feature\n2. improved latency",
			summary:    "Overview line",
			highlights: []string{"delivered feature", "improved latency"},
		},
		{
			name:       "blank lines are skipped",
			input:      "Intro\n\n• one\n\n• two",
			summary:    "Intro",
			highlights: []string{"one", "two"},
		},
		{
			name:       "only one leading marker is stripped",
			input:      "• - nested looking item",
			summary:    "",
			highlights: []string{"- nested looking item"},
		},
		{
			name:       "empty input falls back to itself",
			input:      "",
			summary:    "",
			highlights: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			summary, highlights := SegmentDescription(tc.input)
			assert.Equal(t, tc.summary, summary)
			assert.Equal(t, tc.highlights, highlights)
		})
	}
}

func TestSegmentDescriptionNeverDropsText(t *testing.T) {
	// a single unmarked line is both the only content and the summary
	summary, highlights := SegmentDescription("Just one line of prose")
	assert.Equal(t, "Just one line of prose", summary)
	assert.Nil(t, highlights)
}

func TestLookupCountryCode(t *testing.T) {
	assert.Equal(t, "BR", lookupCountryCode("Brazil"))
	assert.Equal(t, "GB", lookupCountryCode("  united kingdom "))
	assert.Equal(t, "", lookupCountryCode("Atlantis"))
	assert.Equal(t, "", lookupCountryCode(""))
}
