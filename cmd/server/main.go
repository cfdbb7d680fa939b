package main

import (
	"context"
	"log"

	httpadapter "resume-normalizer/internal/adapter/http"
	repo "resume-normalizer/internal/adapter/repository"
	"resume-normalizer/internal/config"
	"resume-normalizer/internal/infrastructure/migration"
	"resume-normalizer/internal/render"
	"resume-normalizer/internal/usecase"
	"resume-normalizer/pkg/infrastructure"
	"resume-normalizer/pkg/linkedin"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	jobsPool, err := infrastructure.NewJobsPool(ctx, cfg.JobsDBUrl)
	if err != nil {
		log.Printf("warning: jobs DB not available: %v", err)
	} else {
		if err := migration.RunMigrations(ctx, jobsPool); err != nil {
			log.Printf("warning: migrations failed: %v", err)
		}
	}

	htmlRenderer, err := render.NewHTMLRenderer()
	if err != nil {
		log.Fatalf("template: %v", err)
	}

	pdfRenderer := infrastructure.NewChromedpRenderer(cfg.ChromePath)
	fetcher := linkedin.NewClientWithBaseURL(cfg.ProfileServiceURL)
	jobsRepo := repo.NewJobsRepo(jobsPool)
	processor := usecase.NewProcessor(fetcher, htmlRenderer, pdfRenderer, jobsRepo, cfg.DataDir, cfg.RenderAttempts)

	app := fiber.New()

	h := httpadapter.NewHandler(processor, jobsRepo)
	app.Post("/normalize", h.Normalize)
	app.Post("/jobs/start", h.StartJob)
	app.Get("/jobs/:id", h.GetJob)
	app.Get("/profiles/:publicId/resumes", h.ProfileHistory)
	app.Post("/resumes/validate", h.ValidateResume)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
