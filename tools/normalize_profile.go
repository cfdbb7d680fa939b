package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"resume-normalizer/internal/render"
	"resume-normalizer/internal/usecase"
	"resume-normalizer/pkg/linkedin"
)

func main() {
	in := "profile.json"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read profile: %v\n", err)
		os.Exit(2)
	}
	var profile linkedin.Profile
	if err := json.Unmarshal(b, &profile); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	resume, warnings := usecase.FromProfile(&profile)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	outDir := filepath.Join("resume-data", "generated")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(2)
	}

	doc, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal resume: %v\n", err)
		os.Exit(2)
	}
	jsonOut := filepath.Join(outDir, "resume_normalized.json")
	if err := os.WriteFile(jsonOut, doc, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write json: %v\n", err)
		os.Exit(2)
	}

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "template: %v\n", err)
		os.Exit(2)
	}
	html, err := renderer.Render(resume)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	htmlOut := filepath.Join(outDir, "resume_normalized.html")
	if err := os.WriteFile(htmlOut, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write html: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("wrote %s and %s\n", jsonOut, htmlOut)
}
