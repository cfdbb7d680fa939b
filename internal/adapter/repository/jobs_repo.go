package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-normalizer/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type JobsRepo struct {
	pool *pgxpool.Pool
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

func (r *JobsRepo) Save(ctx context.Context, j *domain.NormalizeJob) error {
	if r.pool == nil {
		return nil
	}

	metaB, _ := json.Marshal(j.Metadata)
	warnB, _ := json.Marshal(j.Warnings)

	_, err := r.pool.Exec(ctx, `INSERT INTO normalize_jobs (id, public_id, status, metadata, warnings, resume_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET public_id = EXCLUDED.public_id, status = EXCLUDED.status, metadata = EXCLUDED.metadata, warnings = EXCLUDED.warnings, resume_id = EXCLUDED.resume_id, updated_at = EXCLUDED.updated_at`,
		j.ID, j.PublicID, j.Status, metaB, warnB, j.ResumeID, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return err
	}

	if j.Resume == nil {
		return nil
	}

	// Best-effort: persist the canonical document alongside the job row.
	var resumeID uuid.UUID
	if j.ResumeID != nil {
		resumeID = *j.ResumeID
	} else {
		resumeID = uuid.New()
		j.ResumeID = &resumeID
	}

	title := "Resume"
	if j.Resume.Basics != nil && j.Resume.Basics.Name != "" {
		title = j.Resume.Basics.Name
	}

	doc, err := json.Marshal(j.Resume)
	if err != nil {
		return fmt.Errorf("marshal resume %s: %w", resumeID, err)
	}

	htmlPath := ""
	pdfPath := ""
	if j.Metadata != nil {
		if p, ok := j.Metadata["generated_html"].(string); ok {
			htmlPath = p
		}
		if p, ok := j.Metadata["generated_pdf"].(string); ok {
			pdfPath = p
		}
	}

	if _, e := r.pool.Exec(ctx, `INSERT INTO resumes (id, public_id, title, document, html_path, pdf_path, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET public_id = EXCLUDED.public_id, title = EXCLUDED.title, document = EXCLUDED.document, html_path = EXCLUDED.html_path, pdf_path = EXCLUDED.pdf_path, updated_at = EXCLUDED.updated_at`,
		resumeID, j.PublicID, title, doc, htmlPath, pdfPath, j.CreatedAt, j.UpdatedAt); e != nil {
		fmt.Printf("jobs_repo: unable to upsert resumes row (non-fatal): %v\n", e)
	}

	return nil
}

// GetJob loads one job row. Returns nil without error when the row does
// not exist.
func (r *JobsRepo) GetJob(ctx context.Context, id uuid.UUID) (*domain.NormalizeJob, error) {
	if r.pool == nil {
		return nil, nil
	}

	var j domain.NormalizeJob
	var metaB, warnB []byte
	err := r.pool.QueryRow(ctx, `SELECT id, public_id, status, metadata, warnings, resume_id, created_at, updated_at
		FROM normalize_jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.PublicID, &j.Status, &metaB, &warnB, &j.ResumeID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(metaB) > 0 {
		_ = json.Unmarshal(metaB, &j.Metadata)
	}
	if len(warnB) > 0 {
		_ = json.Unmarshal(warnB, &j.Warnings)
	}
	return &j, nil
}

// GetResumeDocument returns the stored canonical JSON document for a resume.
func (r *JobsRepo) GetResumeDocument(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if r.pool == nil {
		return nil, nil
	}
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT document FROM resumes WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}
