package usecase

import (
	"strings"
	"unicode"
)

// SegmentDescription splits a free-text description into a prose summary and
// an ordered list of discrete highlight statements.
//
// The scan is line-oriented and single pass: bullet lines (•, -, *) and
// numbered lines ("1. did x") become highlights; leading unmarked lines
// accumulate into the summary; empty lines are skipped. Once a highlight has
// been seen the scan never reverts to summary mode, so a trailing unmarked
// line after bullets becomes one more highlight rather than a summary
// fragment. That stickiness is deliberate and load-bearing for existing
// documents; see the golden tests before changing anything here.
//
// If nothing at all was collected the entire original description is
// returned as the summary, so the text is never silently dropped. When every
// line became a highlight the summary is empty; the content lives in the
// highlights.
func SegmentDescription(desc string) (summary string, highlights []string) {
	var summaryLines []string
	inHighlights := false

	for _, line := range strings.Split(desc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "•"), strings.HasPrefix(line, "-"), strings.HasPrefix(line, "*"):
			entry := strings.TrimSpace(trimBulletMarker(line))
			highlights = append(highlights, entry)
			inHighlights = true

		case unicode.IsDigit(rune(line[0])) && strings.Contains(line, "."):
			// numbered highlight: drop everything up to and including
			// the first dot
			entry := strings.TrimSpace(line[strings.Index(line, ".")+1:])
			highlights = append(highlights, entry)
			inHighlights = true

		case !inHighlights:
			summaryLines = append(summaryLines, line)

		default:
			// continuation line inside highlights: its own entry
			highlights = append(highlights, line)
		}
	}

	switch {
	case len(summaryLines) > 0:
		summary = strings.Join(summaryLines, " ")
	case len(highlights) == 0:
		summary = desc
	}
	return summary, highlights
}

// trimBulletMarker strips exactly one leading bullet marker rune.
func trimBulletMarker(line string) string {
	for _, marker := range []string{"•", "-", "*"} {
		if strings.HasPrefix(line, marker) {
			return line[len(marker):]
		}
	}
	return line
}
