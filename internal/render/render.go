// Package render turns a canonical resume into a standalone HTML document.
// Sections with no content produce no markup at all; the template only
// emits what the resume actually carries.
package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"

	"resume-normalizer/internal/model"
)

//go:embed templates/template.html
var templateHTML string

//go:embed templates/style.css
var styleCSS string

type HTMLRenderer struct {
	tpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tpl, err := template.New("resume").Funcs(template.FuncMap{
		"dateRange": dateRange,
		"join":      strings.Join,
	}).Parse(templateHTML)
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tpl: tpl}, nil
}

// Render produces the full HTML document with the stylesheet inlined so the
// artifact is self-contained.
func (h *HTMLRenderer) Render(r *model.Resume) (string, error) {
	var buf bytes.Buffer
	data := map[string]interface{}{
		"Resume": r,
		"Style":  template.CSS(styleCSS),
	}
	if err := h.tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// dateRange formats a start/end pair for display. Ongoing entries read
// "to Present".
func dateRange(start, end string) string {
	var parts []string
	if start != "" {
		parts = append(parts, start)
	}
	switch {
	case end != "":
		parts = append(parts, "to "+end)
	case start != "":
		parts = append(parts, "to Present")
	}
	return strings.Join(parts, " ")
}
