// Package config provides configuration loading and validation for the
// resume analyzer.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config represents the analyzer configuration. All fields are optional;
// missing values use defaults or come from the environment. Without a
// remote service URL and API key configured, recommendation generation
// always takes the local fallback path.
type Config struct {
	// Server
	Port      int    `json:"port,omitempty" validate:"omitempty,gte=1,lte=65535"`
	UploadDir string `json:"upload_dir,omitempty"`

	// Remote scoring service
	RemoteServiceURL string `json:"remote_service_url,omitempty" validate:"omitempty,url"`
	RemoteAPIKey     string `json:"remote_api_key,omitempty"`
	RemoteModel      string `json:"remote_model,omitempty"`
	TimeoutMs        int    `json:"timeout_ms,omitempty" validate:"gte=0"`
	MaxRetries       int    `json:"max_retries,omitempty" validate:"gte=0,lte=10"`
}

var validate = validator.New()

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. The remote service
// variables keep the names the demo deployment already uses.
func FromEnv() Config {
	return Config{
		Port:             envInt("PORT"),
		UploadDir:        os.Getenv("UPLOAD_DIR"),
		RemoteServiceURL: os.Getenv("GEMINI_API_URL"),
		RemoteAPIKey:     os.Getenv("GEMINI_API_KEY"),
		RemoteModel:      os.Getenv("GEMINI_MODEL"),
		TimeoutMs:        envInt("GEMINI_TIMEOUT_MS"),
		MaxRetries:       envInt("GEMINI_RETRIES"),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. CLI flags and file values win over environment defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.RemoteServiceURL == "" {
		result.RemoteServiceURL = defaults.RemoteServiceURL
	}
	if result.RemoteAPIKey == "" {
		result.RemoteAPIKey = defaults.RemoteAPIKey
	}
	if result.RemoteModel == "" {
		result.RemoteModel = defaults.RemoteModel
	}
	if result.TimeoutMs == 0 {
		result.TimeoutMs = defaults.TimeoutMs
	}
	if result.MaxRetries == 0 {
		result.MaxRetries = defaults.MaxRetries
	}

	return result
}

func envInt(name string) int {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
