package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `validate:"required,numeric"`
	DatabaseURL string // empty disables the result archive

	// Upload limits
	MaxUploadMB    int `validate:"min=1,max=100"`
	MaxUploadFiles int `validate:"min=1,max=100"`

	ExtractWorkers int `validate:"min=1,max=64"`

	LogJSON  bool
	LogDebug bool

	SwaggerURL string `validate:"omitempty,url"`
}

// LoadConfig reads .env (if present) and the environment, applying defaults.
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		err = godotenv.Load("../../.env")
		if err != nil {
			log.Println("Warning: Could not load .env file, using environment variables")
		}
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	port := getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		Port:        port,
		DatabaseURL: getenv("DATABASE_URL"),
		SwaggerURL:  getenv("SWAGGER_URL"),
	}

	var err error
	if cfg.MaxUploadMB, err = intEnv(getenv, "MAX_UPLOAD_MB", 10); err != nil {
		return nil, err
	}
	if cfg.MaxUploadFiles, err = intEnv(getenv, "MAX_UPLOAD_FILES", 10); err != nil {
		return nil, err
	}
	if cfg.ExtractWorkers, err = intEnv(getenv, "EXTRACT_WORKERS", 4); err != nil {
		return nil, err
	}
	if cfg.LogJSON, err = boolEnv(getenv, "LOG_JSON"); err != nil {
		return nil, err
	}
	if cfg.LogDebug, err = boolEnv(getenv, "LOG_DEBUG"); err != nil {
		return nil, err
	}
	if cfg.SwaggerURL == "" {
		cfg.SwaggerURL = "http://localhost:" + cfg.Port + "/swagger/doc.json"
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ArchiveEnabled reports whether extraction results are persisted.
func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}

func intEnv(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func boolEnv(getenv func(string) string, key string) (bool, error) {
	v := getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
