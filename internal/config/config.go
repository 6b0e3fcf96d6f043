package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds all configuration options for the task scheduler
type Config struct {
	Database    DatabaseConfig    `mapstructure:"db"`
	Validation  ValidationConfig  `mapstructure:"validation"`
	Recommend   RecommendConfig   `mapstructure:"recommend"`
	Application ApplicationConfig `mapstructure:"app"`
	Log         LogConfig         `mapstructure:"log"`
	Server      ServerConfig      `mapstructure:"server"`
	Output      OutputConfig      `mapstructure:"output"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `mapstructure:"dir" validate:"required"`
	Filename       string        `mapstructure:"filename" validate:"required"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout" validate:"gt=0"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	DirPermissions uint32        `mapstructure:"dir_permissions" validate:"gt=0"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength       int `mapstructure:"title_min_length" validate:"gte=1"`
	TitleMaxLength       int `mapstructure:"title_max_length" validate:"gtefield=TitleMinLength"`
	DescriptionMaxLength int `mapstructure:"description_max_length" validate:"gte=0"`
}

// RecommendConfig holds recommendation defaults
type RecommendConfig struct {
	// Limit caps the number of recommendations; zero means no limit.
	Limit       int `mapstructure:"limit" validate:"gte=0"`
	DueSoonDays int `mapstructure:"due_soon_days" validate:"gte=0"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Environment Environment   `mapstructure:"env" validate:"oneof=development testing production"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
}

// ServerConfig holds the HTTP transport configuration
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// OutputConfig holds CLI output defaults
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Dir:            filepath.Join(homeDir, ".tt"),
			Filename:       "tt.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0o755,
		},
		Validation: ValidationConfig{
			TitleMinLength:       1,
			TitleMaxLength:       255,
			DescriptionMaxLength: 2000,
		},
		Recommend: RecommendConfig{
			Limit:       5,
			DueSoonDays: 3,
		},
		Application: ApplicationConfig{
			Timeout:     60 * time.Second,
			Environment: Production,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Validate checks the configuration and reports the first invalid field
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ConfigError{Field: "config", Message: err.Error()}
	}

	fe := fieldErrs[0]
	return &ConfigError{Field: keyFor(fe.StructNamespace()), Message: messageFor(fe)}
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
