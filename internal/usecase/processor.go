package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-normalizer/internal/domain"
	"resume-normalizer/internal/model"
	"resume-normalizer/pkg/linkedin"

	"github.com/google/uuid"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type HTMLRenderer interface {
	Render(r *model.Resume) (string, error)
}

type JobsRepo interface {
	Save(ctx context.Context, j *domain.NormalizeJob) error
}

type Processor struct {
	fetcher  linkedin.Fetcher
	html     HTMLRenderer
	renderer Renderer
	repo     JobsRepo
	dataDir  string
	attempts int
}

func NewProcessor(f linkedin.Fetcher, html HTMLRenderer, r Renderer, repo JobsRepo, dataDir string, attempts int) *Processor {
	if attempts <= 0 {
		attempts = 3
	}
	return &Processor{fetcher: f, html: html, renderer: r, repo: repo, dataDir: dataDir, attempts: attempts}
}

// Process runs one normalization job end to end: fetch the source profile,
// convert it to the canonical document, overlay contact details, validate,
// render artifacts and persist. Only fetch and render failures abort the
// job; degraded fields ride along as warnings.
func (p *Processor) Process(ctx context.Context, job *domain.NormalizeJob) error {
	if job.Metadata == nil {
		job.Metadata = map[string]interface{}{}
	}

	profile, err := p.fetcher.Profile(ctx, job.PublicID)
	if err != nil {
		return p.fail(ctx, job, fmt.Errorf("fetch profile %s: %w", job.PublicID, err))
	}

	resume, warnings := FromProfile(profile)

	// Contact details are a separate, permissioned view; absence is normal.
	ci, err := p.fetcher.ContactInfo(ctx, job.PublicID)
	if err != nil {
		warnings = append(warnings, "basics: contact info unavailable: "+err.Error())
	} else if ci != nil {
		warnings = append(warnings, MergeContactInfo(resume.Basics, ci)...)
	}

	if err := model.ValidateResume(resume); err != nil {
		job.Metadata["schema_errors"] = err.Error()
		return p.fail(ctx, job, fmt.Errorf("canonical document failed schema validation: %w", err))
	}

	report := ReportCompleteness(resume)
	job.Metadata["completeness"] = report
	if !report.Complete {
		fmt.Printf("processor: job %s resume incomplete\n", job.ID)
	}

	html, err := p.html.Render(resume)
	if err != nil {
		return p.fail(ctx, job, fmt.Errorf("render html: %w", err))
	}

	// save JSON and HTML artifacts before PDF rendering so they survive a
	// rendering failure
	ts := time.Now().Format("20060102T150405")
	genDir := filepath.Join(p.dataDir, "generated")
	if err := os.MkdirAll(genDir, 0o755); err != nil {
		return p.fail(ctx, job, err)
	}

	jsonName := fmt.Sprintf("resume_%s.json", ts)
	htmlName := fmt.Sprintf("resume_%s.html", ts)
	pdfName := fmt.Sprintf("resume_%s.pdf", ts)

	doc, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return p.fail(ctx, job, err)
	}
	if err := os.WriteFile(filepath.Join(genDir, jsonName), doc, 0o644); err != nil {
		return p.fail(ctx, job, err)
	}
	if err := os.WriteFile(filepath.Join(genDir, htmlName), []byte(html), 0o644); err != nil {
		return p.fail(ctx, job, err)
	}

	// produce PDF with retry and validation
	var pdfBytes []byte
	var renderErr error
	for i := 0; i < p.attempts; i++ {
		pdfBytes, renderErr = p.renderer.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if len(pdfBytes) > 0 && strings.HasPrefix(string(pdfBytes), "%PDF") {
				break
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		fmt.Printf("processor: render attempt %d failed: %v\n", i+1, renderErr)
		if i < p.attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	if renderErr != nil {
		// keep the JSON and HTML artifacts; record the failure and move on
		fmt.Printf("processor: rendering failed after %d attempts: %v\n", p.attempts, renderErr)
		job.Metadata["pdf_render_error"] = renderErr.Error()
	} else {
		if err := os.WriteFile(filepath.Join(genDir, pdfName), pdfBytes, 0o644); err != nil {
			return p.fail(ctx, job, err)
		}
	}

	// copy PDF to a per-profile folder
	if renderErr == nil && len(pdfBytes) > 0 {
		profileDir := filepath.Join(p.dataDir, "resumes", job.PublicID)
		if err := os.MkdirAll(profileDir, 0o755); err != nil {
			return p.fail(ctx, job, err)
		}
		destName := uuid.New().String() + ".pdf"
		if err := os.WriteFile(filepath.Join(profileDir, destName), pdfBytes, 0o644); err != nil {
			return p.fail(ctx, job, err)
		}
		job.Metadata["profile_copy"] = filepath.Join(profileDir, destName)
	}

	job.Resume = resume
	job.Warnings = warnings
	job.Status = "completed"
	job.Metadata["generated_json"] = filepath.Join(genDir, jsonName)
	job.Metadata["generated_html"] = filepath.Join(genDir, htmlName)
	if renderErr == nil && len(pdfBytes) > 0 {
		job.Metadata["generated_pdf"] = filepath.Join(genDir, pdfName)
	} else {
		job.Metadata["generated_pdf"] = ""
	}
	job.UpdatedAt = time.Now()

	if p.repo != nil {
		if err := p.repo.Save(ctx, job); err != nil {
			return err
		}
	}

	return nil
}

func (p *Processor) fail(ctx context.Context, job *domain.NormalizeJob, err error) error {
	job.Status = "failed"
	job.Metadata["error"] = err.Error()
	job.UpdatedAt = time.Now()
	if p.repo != nil {
		if saveErr := p.repo.Save(ctx, job); saveErr != nil {
			fmt.Printf("processor: unable to persist failed job %s: %v\n", job.ID, saveErr)
		}
	}
	return err
}
