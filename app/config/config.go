// Package config loads runtime configuration from the environment, with an
// optional .env file for development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Media backend selectors.
const (
	MediaBackendDisk  = "disk"
	MediaBackendMinio = "minio"
)

// Minio holds the object-store connection settings, used only when the
// media backend is "minio".
type Minio struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Config is the full runtime configuration.
type Config struct {
	ServerPort int
	DBPath     string
	JWTSecret  string
	LogLevel   zerolog.Level

	MediaBackend string
	UploadsDir   string
	Minio        Minio

	AdminEmail    string
	AdminPassword string
}

// Load reads the configuration from the environment. A missing .env file is
// fine; real environments set variables directly.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment variables")
	}

	return &Config{
		ServerPort: getEnvAsInt("SERVER_PORT", 4000),
		DBPath:     getEnv("DB_PATH", "data/badger"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		LogLevel:   parseLevel(getEnv("LOG_LEVEL", "info")),

		MediaBackend: getEnv("MEDIA_BACKEND", MediaBackendDisk),
		UploadsDir:   getEnv("UPLOADS_DIR", "public/uploads"),
		Minio: Minio{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "uploads"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func parseLevel(value string) zerolog.Level {
	level, err := zerolog.ParseLevel(value)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
