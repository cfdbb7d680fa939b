package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	JobsDBUrl         string
	ProfileServiceURL string
	ChromePath        string
	DataDir           string
	RenderAttempts    int
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignore the error in prod
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		JobsDBUrl:         getEnv("JOBS_DATABASE_URL", ""),
		ProfileServiceURL: strings.TrimRight(getEnv("PROFILE_SERVICE_URL", "http://profile-service:8000"), "/"),
		ChromePath:        getEnv("CHROME_PATH", ""),
		DataDir:           getEnv("DATA_DIR", "resume-data"),
		RenderAttempts:    getEnvInt("RENDER_ATTEMPTS", 3),
	}

	if cfg.JobsDBUrl == "" {
		log.Println("WARNING: JOBS_DATABASE_URL is missing. Jobs will not be persisted.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
