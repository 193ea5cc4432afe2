package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // zone database for hosts without one

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Registrar struct {
		CourseLoadThreshold  int    `yaml:"course_load_threshold" env:"REGISTRAR_COURSE_LOAD_THRESHOLD"`
		InactivityWindowDays int    `yaml:"inactivity_window_days" env:"REGISTRAR_INACTIVITY_WINDOW_DAYS"`
		TimeZone             string `yaml:"timezone" env:"REGISTRAR_TIMEZONE"`
		MigrationsDir        string `yaml:"migrations_dir" env:"REGISTRAR_MIGRATIONS_DIR"`
		SeedRanks            bool   `yaml:"seed_ranks" env:"REGISTRAR_SEED_RANKS"`
	} `yaml:"registrar"`

	Messages Messages `yaml:"messages"`
}

// Messages is the response message catalog
type Messages struct {
	GetAll        string `yaml:"get_all" env:"MSG_GET_ALL"`
	Get           string `yaml:"get" env:"MSG_GET"`
	Add           string `yaml:"add" env:"MSG_ADD"`
	Update        string `yaml:"update" env:"MSG_UPDATE"`
	Delete        string `yaml:"delete" env:"MSG_DELETE"`
	Search        string `yaml:"search" env:"MSG_SEARCH"`
	NotFound      string `yaml:"not_found" env:"MSG_NOT_FOUND"`
	InvalidInput  string `yaml:"invalid_input" env:"MSG_INVALID_INPUT"`
	Duplicate     string `yaml:"duplicate_entry" env:"MSG_DUPLICATE_ENTRY"`
	InternalError string `yaml:"internal_error" env:"MSG_INTERNAL_ERROR"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ShutdownTimeout = "10s"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "registrar"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Registrar defaults
	config.Registrar.CourseLoadThreshold = 5
	config.Registrar.InactivityWindowDays = 5
	config.Registrar.TimeZone = "UTC"
	config.Registrar.MigrationsDir = "migrations"
	config.Registrar.SeedRanks = true

	config.Messages = DefaultMessages()
}

// DefaultMessages returns the built-in response message catalog
func DefaultMessages() Messages {
	return Messages{
		GetAll:        "Entities fetched successfully",
		Get:           "Entity fetched successfully, id:",
		Add:           "Entity added successfully",
		Update:        "Entity updated successfully",
		Delete:        "Entity deleted successfully",
		Search:        "Search completed successfully",
		NotFound:      "Entity not found",
		InvalidInput:  "Invalid input",
		Duplicate:     "Duplicate entry",
		InternalError: "Internal server error",
	}
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection lifetime format: %w", err)
	}

	if config.Registrar.CourseLoadThreshold < 0 {
		return fmt.Errorf("course load threshold cannot be negative")
	}

	if config.Registrar.InactivityWindowDays < 0 {
		return fmt.Errorf("inactivity window cannot be negative")
	}

	if _, err := time.LoadLocation(config.Registrar.TimeZone); err != nil {
		return fmt.Errorf("invalid registrar timezone %q: %w", config.Registrar.TimeZone, err)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// Location returns the time zone DTO dates are read and printed in
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Registrar.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
