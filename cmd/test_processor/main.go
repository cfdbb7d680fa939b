package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"resume-normalizer/internal/adapter/repository"
	"resume-normalizer/internal/domain"
	"resume-normalizer/internal/render"
	"resume-normalizer/internal/usecase"
	"resume-normalizer/pkg/infrastructure"
	"resume-normalizer/pkg/linkedin"

	"github.com/google/uuid"
)

// Runs the full pipeline against a local mock of the profile-fetch service.

func sampleProfile() map[string]interface{} {
	return map[string]interface{}{
		"firstName":       "Ada",
		"lastName":        "Lovelace",
		"headline":        "Analyst and Programmer",
		"summary":         "Working on analytical engines.",
		"geoLocationName": "London",
		"geoCountryName":  "United Kingdom",
		"experience": []map[string]interface{}{
			{
				"companyName": "Analytical Engines Ltd",
				"title":       "Lead Analyst",
				"description": "Designed the first program.\n• Wrote notes on the engine\n• Described loop constructs",
				"timePeriod": map[string]interface{}{
					"startDate": map[string]interface{}{"month": 6, "year": 1842},
				},
			},
		},
		"skills": []map[string]interface{}{
			{"name": "Mathematics"},
			{"name": "Computing"},
		},
		"languages": []map[string]interface{}{
			{"name": "English", "proficiency": "NATIVE_OR_BILINGUAL"},
			{"name": "French", "proficiency": "PROFESSIONAL_WORKING"},
		},
	}
}

func startMockProfileService(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/profiles/ada", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sampleProfile())
	})
	mux.HandleFunc("/v1/profiles/ada/contact-info", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"emailAddress": "ada@example.com",
			"websites": []map[string]interface{}{
				{"url": "https://adalovelace.example.com"},
			},
		})
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("mock profile service failed: %v", err)
		}
	}()
	return srv
}

func main() {
	srv := startMockProfileService(":8000")
	defer srv.Shutdown(context.Background())

	htmlRenderer, err := render.NewHTMLRenderer()
	if err != nil {
		fmt.Printf("template: %v\n", err)
		os.Exit(1)
	}

	fetcher := linkedin.NewClientWithBaseURL("http://127.0.0.1:8000")
	pdfRenderer := infrastructure.NewChromedpRenderer("")
	jobsRepo := repository.NewJobsRepo(nil)
	processor := usecase.NewProcessor(fetcher, htmlRenderer, pdfRenderer, jobsRepo, "resume-data", 3)

	job := &domain.NormalizeJob{
		ID:        uuid.New(),
		PublicID:  "ada",
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := processor.Process(ctx, job); err != nil {
		fmt.Printf("Process failed: %v\n", err)
		return
	}

	fmt.Printf("Process completed. Generated JSON: %v\n", job.Metadata["generated_json"])
	fmt.Printf("Warnings: %v\n", job.Warnings)
}
