package domain

import (
	"time"

	"resume-normalizer/internal/model"

	"github.com/google/uuid"
)

// NormalizeJob tracks one profile-to-resume normalization run from request
// to persisted artifact.
type NormalizeJob struct {
	ID        uuid.UUID              `json:"id"`
	PublicID  string                 `json:"public_id"`
	Status    string                 `json:"status"`
	Metadata  map[string]interface{} `json:"metadata"`
	ResumeID  *uuid.UUID             `json:"resume_id,omitempty"`
	Warnings  []string               `json:"warnings,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	Resume    *model.Resume          `json:"resume,omitempty"`
}
