package http

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"resume-normalizer/internal/adapter/repository"
	"resume-normalizer/internal/domain"
	"resume-normalizer/internal/model"
	"resume-normalizer/internal/usecase"
	"resume-normalizer/pkg/linkedin"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type JobsStore interface {
	usecase.JobsRepo
	GetJob(ctx context.Context, id uuid.UUID) (*domain.NormalizeJob, error)
	HistoryForProfile(ctx context.Context, publicID string) (repository.HistoryResult, error)
}

type Handler struct {
	processor *usecase.Processor
	repo      JobsStore
}

func NewHandler(p *usecase.Processor, r JobsStore) *Handler {
	return &Handler{processor: p, repo: r}
}

type startReq struct {
	PublicID string `json:"publicId" validate:"required,min=1"`
}

func (h *Handler) StartJob(c *fiber.Ctx) error {
	var req startReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "publicId is required"})
	}

	job := &domain.NormalizeJob{
		ID:        uuid.New(),
		PublicID:  req.PublicID,
		Status:    "pending",
		Metadata:  map[string]interface{}{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// persist initial job (best-effort)
	if h.repo != nil {
		if err := h.repo.Save(context.Background(), job); err != nil {
			log.Printf("warning: failed to save job: %v", err)
		}
	}

	// spawn background processing
	go func(j *domain.NormalizeJob) {
		ctx := context.Background()
		if err := h.processor.Process(ctx, j); err != nil {
			log.Printf("job %s failed: %v", j.ID.String(), err)
		}
	}(job)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"jobId": job.ID.String(), "status": "started"})
}

type normalizeReq struct {
	Profile     *linkedin.Profile     `json:"profile" validate:"required"`
	ContactInfo *linkedin.ContactInfo `json:"contactInfo"`
}

// Normalize converts a caller-supplied source snapshot into the canonical
// document synchronously, without touching the job pipeline. Fields that
// degraded to absent come back in the warnings list.
func (h *Handler) Normalize(c *fiber.Ctx) error {
	var req normalizeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "profile is required"})
	}

	resume, warnings := usecase.FromProfile(req.Profile)
	if req.ContactInfo != nil {
		warnings = append(warnings, usecase.MergeContactInfo(resume.Basics, req.ContactInfo)...)
	}
	if warnings == nil {
		warnings = []string{}
	}
	return c.JSON(fiber.Map{"resume": resume, "warnings": warnings})
}

func (h *Handler) GetJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job id"})
	}

	job, err := h.repo.GetJob(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if job == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	return c.JSON(job)
}

func (h *Handler) ProfileHistory(c *fiber.Ctx) error {
	publicID := c.Params("publicId")
	if publicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "publicId is required"})
	}

	res, err := h.repo.HistoryForProfile(c.Context(), publicID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

// ValidateResume checks a caller-supplied resume document against the
// canonical schema and the field-format rules. Field errors surface with
// their dotted paths so clients can pinpoint the offending value.
func (h *Handler) ValidateResume(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}

	var fieldErrors []string
	var r model.Resume
	if err := json.Unmarshal(body, &r); err != nil {
		fieldErrors = append(fieldErrors, err.Error())
	}
	if err := model.ValidateBytes(body); err != nil {
		fieldErrors = append(fieldErrors, err.Error())
	}

	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"valid": false, "errors": fieldErrors})
	}
	return c.JSON(fiber.Map{"valid": true})
}
