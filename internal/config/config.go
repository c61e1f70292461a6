package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port           string
	DBPath         string
	JWTSecret      string
	MaxUploadBytes int64 // upload size cap for GPX files
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/routes/routes.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	maxUpload := int64(10 * 1024 * 1024) // 10MB default, plenty for GPX
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			maxUpload = parsed
		}
	}

	return &Config{
		Port:           port,
		DBPath:         dbPath,
		JWTSecret:      jwtSecret,
		MaxUploadBytes: maxUpload,
	}
}
