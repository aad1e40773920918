package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"weekenddiaries/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `validate:"required"`
	Data     DataConfig     `validate:"required"`
	Database DatabaseConfig
	UI       UIConfig `validate:"required"`
	Logging  LoggingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string        `validate:"required,numeric"`
	APIPort         string        `validate:"required,numeric"`
	GinMode         string        `validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration

	// AllowedOrigins may call the JSON API from a browser. "*" allows any.
	AllowedOrigins []string `validate:"dive,required"`

	// RateLimit is requests per minute per client IP on the API; 0 disables it.
	RateLimit int `validate:"min=0"`
}

// DataConfig holds the place file locations
type DataConfig struct {
	File             string `validate:"required"`
	FallbackFile     string
	FallbackEncoding string `validate:"omitempty,oneof=ISO-8859-1 iso-8859-1 latin1 windows-1252 cp1252 utf-8 UTF-8"`
}

// DatabaseConfig selects the SQL place source. An empty URL means files are
// used instead.
type DatabaseConfig struct {
	Driver string `validate:"omitempty,oneof=postgres sqlite"`
	URL    string
}

// Enabled reports whether places are read from a database.
func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

// UIConfig holds web page settings
type UIConfig struct {
	SidebarImage string
	WeekendPicks int `validate:"min=1,max=20"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string
}

// LoadDotEnv reads .env files into the environment if present. Variables that
// are already set win.
func LoadDotEnv(files ...string) {
	present := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return
	}
	_ = godotenv.Load(present...)
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:   *loadServerConfig(),
		Data:     *loadDataConfig(),
		Database: *loadDatabaseConfig(),
		UI:       *loadUIConfig(),
		Logging:  LoggingConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		APIPort:         getEnvOrDefault("API_PORT", "5000"),
		GinMode:         getEnvOrDefault("GIN_MODE", "debug"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		AllowedOrigins:  getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimit:       getEnvIntOrDefault("API_RATE_LIMIT", 120),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		File:             getEnvOrDefault("PLACES_FILE", "places_expand.csv"),
		FallbackFile:     getEnvOrDefault("PLACES_FALLBACK_FILE", "places.csv"),
		FallbackEncoding: getEnvOrDefault("PLACES_FALLBACK_ENCODING", "ISO-8859-1"),
	}
}

func loadDatabaseConfig() *DatabaseConfig {
	url := os.Getenv("PLACES_DATABASE_URL")
	driver := os.Getenv("PLACES_DB_DRIVER")
	if driver == "" && url != "" {
		driver = inferDriver(url)
	}
	return &DatabaseConfig{Driver: driver, URL: url}
}

// inferDriver treats postgres URLs and key=value DSNs as PostgreSQL and
// anything else as a SQLite path.
func inferDriver(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") || strings.Contains(url, "host=") {
		return "postgres"
	}
	return "sqlite"
}

func loadUIConfig() *UIConfig {
	return &UIConfig{
		SidebarImage: getEnvOrDefault("SIDEBAR_IMAGE", "Img.jpg"),
		WeekendPicks: getEnvIntOrDefault("WEEKEND_PICKS", 3),
	}
}

var validate = validator.New()

func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
			}
			return errors.ConfigInvalid(strings.Join(msgs, "; "))
		}
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
