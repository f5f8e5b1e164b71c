package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration. It is read once at process
// start and never mutated afterwards; every component receives the parts
// it needs explicitly instead of reading ambient process state.
type Config struct {
	// Server holds the HTTP listener settings.
	Server ServerConfig `yaml:"server"`

	// LLM holds the completion endpoint settings.
	LLM LLMConfig `yaml:"llm"`

	// Upload holds resume upload limits.
	Upload UploadConfig `yaml:"upload"`

	// Logger holds log output settings.
	Logger LoggerConfig `yaml:"logger"`
}

// ServerConfig defines the HTTP server settings.
type ServerConfig struct {
	Address string `yaml:"address"` // e.g. ":8080" or "0.0.0.0:8080"
}

// LLMConfig defines the completion endpoint settings.
// The API key is the single credential gating all AI features; when it is
// empty every pipeline degrades to static fallback data.
type LLMConfig struct {
	APIKey         string `yaml:"api_key"`         // overridden by GROQ_API_KEY
	APIURL         string `yaml:"api_url"`         // chat completions endpoint
	Model          string `yaml:"model"`           // completion model name
	TimeoutSeconds int    `yaml:"timeout_seconds"` // per-call timeout (seconds)
}

// UploadConfig defines resume upload limits.
type UploadConfig struct {
	MaxSizeBytes int64 `yaml:"max_size_bytes"` // maximum accepted file size
}

// LoggerConfig defines log output settings.
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // timestamp format
	ReportCaller bool   `yaml:"report_caller"` // report caller file:line
}

// Default endpoint values matching the hosted Groq service.
const (
	DefaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"
	DefaultModel  = "llama-3.3-70b-versatile"

	// DefaultMaxUploadBytes caps resume uploads at 5MB.
	DefaultMaxUploadBytes int64 = 5 * 1024 * 1024
)

// LoadConfig loads configuration from a YAML file, then applies `.env` and
// environment overrides. A missing file is not an error: the service runs
// on defaults and degrades to fallback data when no credential is set.
func LoadConfig(configPath string) (*Config, error) {
	// Pick up a local .env if present.
	_ = godotenv.Load()

	config := createDefaultConfig()

	if configPath == "" {
		for _, path := range []string{"config.yaml", "./config.yaml", "../config.yaml"} {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		} else {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		}
	}

	// Environment overrides win over the file.
	if envKey := os.Getenv("GROQ_API_KEY"); envKey != "" {
		config.LLM.APIKey = envKey
	}
	if envURL := os.Getenv("GROQ_API_URL"); envURL != "" {
		config.LLM.APIURL = envURL
	}
	if envModel := os.Getenv("GROQ_MODEL"); envModel != "" {
		config.LLM.Model = envModel
	}

	applyDefaults(config)

	return config, nil
}

// createDefaultConfig returns a config with every default filled in.
func createDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.LLM.APIURL == "" {
		config.LLM.APIURL = DefaultAPIURL
	}
	if config.LLM.Model == "" {
		config.LLM.Model = DefaultModel
	}
	if config.LLM.TimeoutSeconds <= 0 {
		config.LLM.TimeoutSeconds = 60
	}
	if config.Upload.MaxSizeBytes <= 0 {
		config.Upload.MaxSizeBytes = DefaultMaxUploadBytes
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Logger.Format == "" {
		config.Logger.Format = "json"
	}
}
