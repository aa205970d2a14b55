package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment at startup. A
// .env file is honored when present; real environment variables win.
type Config struct {
	Port            string
	DatabasePath    string
	SecretKey       string
	Timezone        string
	Location        *time.Location
	DefaultLanguage string
	LocalesDir      string
	TemplatesDir    string
	UploadDir       string
	CookieSecure    bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	config := Config{
		Port:            envOr("PORT", "8080"),
		DatabasePath:    envOr("DB_PATH", "data/brunotrack.db"),
		SecretKey:       os.Getenv("SECRET_KEY"),
		Timezone:        envOr("TZ", "America/Mexico_City"),
		DefaultLanguage: envOr("DEFAULT_LANGUAGE", "en"),
		LocalesDir:      envOr("LOCALES_DIR", "locales"),
		TemplatesDir:    envOr("TEMPLATES_DIR", "internal/templates"),
		UploadDir:       envOr("UPLOAD_DIR", "data/uploads"),
		CookieSecure:    envBool("COOKIE_SECURE", false),
	}

	if config.SecretKey == "" {
		return Config{}, fmt.Errorf("SECRET_KEY is required")
	}

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("load timezone %q: %w", config.Timezone, err)
	}
	config.Location = location

	return config, nil
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
