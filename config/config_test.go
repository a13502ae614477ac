package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Base.Name != "fusionkit" {
		t.Errorf("base.name = %s", cfg.Base.Name)
	}
	if cfg.Base.Environment != "development" || !cfg.Base.Debug {
		t.Errorf("base = %+v", cfg.Base)
	}
	if cfg.Transcription.Provider != "whisper" {
		t.Errorf("transcription.provider = %s", cfg.Transcription.Provider)
	}
	if cfg.Diarization.Provider != "pyannote" {
		t.Errorf("diarization.provider = %s", cfg.Diarization.Provider)
	}
	if cfg.Diarization.Enabled {
		t.Error("diarization must be opt-in")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad environment", func(c *Config) { c.Base.Environment = "qa" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"missing transcription provider", func(c *Config) { c.Transcription.Provider = "" }, true},
		{"enabled diarization needs provider", func(c *Config) {
			c.Diarization.Enabled = true
			c.Diarization.Provider = ""
		}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.ApplyDefaults()
			tc.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	yaml := `
base:
  environment: production
logging:
  level: warn
  format: json
diarization:
  enabled: true
  provider: pyannote
  settings:
    base_url: http://diarizer:8388
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Base.Environment != "production" {
		t.Errorf("environment = %s", cfg.Base.Environment)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if !cfg.Diarization.Enabled {
		t.Error("diarization.enabled not read")
	}
	if cfg.Diarization.Settings["base_url"] != "http://diarizer:8388" {
		t.Errorf("settings = %v", cfg.Diarization.Settings)
	}
}

func TestLoadConfig_MissingFilesStillDefaults(t *testing.T) {
	cfg, err := Load(WithConfigFile(filepath.Join(t.TempDir(), "nope.yml")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Transcription.Provider != "whisper" {
		t.Errorf("provider = %s", cfg.Transcription.Provider)
	}
}
