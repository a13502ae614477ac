package config

import (
	"fmt"

	"github.com/kbukum/fusionkit/logger"
)

// BaseConfig contains essential fields every deployment needs.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "fusionkit"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	for _, v := range validEnvs {
		if c.Environment == v {
			return nil
		}
	}
	return fmt.Errorf("base.environment must be one of %v (got: %s)", validEnvs, c.Environment)
}

// ProviderConfig selects and configures one collaborator backend.
type ProviderConfig struct {
	// Provider is the registered backend name (e.g. "whisper", "pyannote").
	Provider string `yaml:"provider" mapstructure:"provider"`
	// Settings is passed to the backend factory as-is.
	Settings map[string]any `yaml:"settings" mapstructure:"settings"`
}

// DiarizationConfig configures the diarization collaborator.
type DiarizationConfig struct {
	ProviderConfig `yaml:",inline" mapstructure:",squash"`
	// Enabled turns diarization off entirely. A disabled diarizer is the
	// "feature disabled" flavor of unavailability: every recording takes
	// the single-speaker fallback and is marked degraded.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// ObservabilityConfig configures OTLP metric export.
type ObservabilityConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure bool   `yaml:"insecure" mapstructure:"insecure"`
}

// Config is the root fusionkit configuration.
type Config struct {
	Base          BaseConfig          `yaml:"base" mapstructure:"base"`
	Logging       logger.Config       `yaml:"logging" mapstructure:"logging"`
	Transcription ProviderConfig      `yaml:"transcription" mapstructure:"transcription"`
	Diarization   DiarizationConfig   `yaml:"diarization" mapstructure:"diarization"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults applies default values to the whole configuration.
func (c *Config) ApplyDefaults() {
	c.Base.ApplyDefaults()
	c.Logging.ApplyDefaults()
	if c.Transcription.Provider == "" {
		c.Transcription.Provider = "whisper"
	}
	if c.Diarization.Provider == "" {
		c.Diarization.Provider = "pyannote"
	}
	if c.Observability.Endpoint == "" {
		c.Observability.Endpoint = "localhost:4318"
	}
}

// Validate validates the whole configuration.
func (c *Config) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.Transcription.Provider == "" {
		return fmt.Errorf("transcription.provider is required")
	}
	if c.Diarization.Enabled && c.Diarization.Provider == "" {
		return fmt.Errorf("diarization.provider is required when diarization is enabled")
	}
	return nil
}

// Load reads, defaults, and validates the root configuration.
func Load(opts ...LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := LoadConfig("fusionkit", cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
