package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the server.
type Config struct {
	Port                         string
	ProjectID                    string
	StorageBucket                string
	GoogleApplicationCredentials string
	AllowedOrigins               []string
	FreeSongsOnSignup            int
}

// Load reads configuration from the environment, first merging in a .env
// file when one is present. Missing optional values fall back to defaults.
func Load() *Config {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	return &Config{
		Port:                         loadEnv("PORT", "8080"),
		ProjectID:                    loadEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:                loadEnv("STORAGE_BUCKET", "song-photos"),
		GoogleApplicationCredentials: loadEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		AllowedOrigins:               loadEnvAsList("ALLOWED_ORIGINS"),
		FreeSongsOnSignup:            1,
	}
}

func loadEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadEnvAsList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
