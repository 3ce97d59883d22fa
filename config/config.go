package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv reads .env if present. Real deployments set the environment
// directly, so a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment")
	}
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustGetEnv fails startup when a required variable is unset.
func MustGetEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		logrus.Fatalf("%s not set in environment", key)
	}
	return v
}

// CORSOrigins returns the allowed browser origins, comma separated in
// CORS_ORIGINS. Defaults to the local frontend.
func CORSOrigins() []string {
	raw := GetEnv("CORS_ORIGINS", "http://localhost:3000")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
