package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the DocumentHub API configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Database    DatabaseConfig    `yaml:"database"`
	Storage     StorageConfig     `yaml:"storage"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Locales     LocalesConfig     `yaml:"locales"`
	Attachments AttachmentsConfig `yaml:"attachments"`
	Auth        AuthConfig        `yaml:"auth"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"` // redis, memory (default: redis)
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// StorageConfig holds key namespace settings.
type StorageConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// CatalogConfig holds pagination settings and optional vocabulary overrides.
// Vocabulary keys are facet categories (department, ministry, doc_type,
// status); a listed category replaces the built-in values wholesale.
type CatalogConfig struct {
	DefaultPageSize int                 `yaml:"default_page_size"`
	MaxPageSize     int                 `yaml:"max_page_size"`
	Vocabulary      map[string][]string `yaml:"vocabulary"`
}

// LocalesConfig lists the dictionary files to load at startup.
type LocalesConfig struct {
	Dictionaries []string `yaml:"dictionaries"`
}

// AttachmentsConfig holds object storage settings for attachment uploads.
// When disabled the upload endpoint reports attachments_disabled.
type AttachmentsConfig struct {
	Enabled          bool   `yaml:"enabled"`
	Endpoint         string `yaml:"endpoint"`
	Region           string `yaml:"region"`
	Bucket           string `yaml:"bucket"`
	AccessKeyID      string `yaml:"access_key_id"`
	SecretAccessKey  string `yaml:"secret_access_key"`
	MaxSizeMB        int    `yaml:"max_size_mb"`
	URLExpiryMinutes int    `yaml:"url_expiry_minutes"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "redis"
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = "dochub:"
	}
	if c.Catalog.DefaultPageSize <= 0 {
		c.Catalog.DefaultPageSize = 20
	}
	if c.Catalog.MaxPageSize <= 0 {
		c.Catalog.MaxPageSize = 100
	}
	if c.Attachments.MaxSizeMB <= 0 {
		c.Attachments.MaxSizeMB = 15
	}
	if c.Attachments.URLExpiryMinutes <= 0 {
		c.Attachments.URLExpiryMinutes = 5
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Database.Driver {
	case "redis":
		if len(c.Database.Addrs) == 0 {
			return fmt.Errorf("database.addrs is required for the redis driver")
		}
	case "memory":
		// no connection settings
	default:
		return fmt.Errorf("database.driver must be \"redis\" or \"memory\", got %q", c.Database.Driver)
	}
	for cat := range c.Catalog.Vocabulary {
		switch cat {
		case "department", "ministry", "doc_type", "status":
			// ok
		default:
			return fmt.Errorf("catalog.vocabulary has unknown category %q", cat)
		}
	}
	if c.Attachments.Enabled {
		if c.Attachments.Bucket == "" {
			return fmt.Errorf("attachments.bucket is required when attachments are enabled")
		}
		if c.Attachments.Endpoint == "" {
			return fmt.Errorf("attachments.endpoint is required when attachments are enabled")
		}
		if c.Attachments.AccessKeyID == "" || c.Attachments.SecretAccessKey == "" {
			return fmt.Errorf("attachments credentials are required when attachments are enabled")
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
