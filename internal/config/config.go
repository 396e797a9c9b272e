// Package config loads runtime configuration from an optional YAML file
// with environment overrides. Every field has a usable default so the
// app starts with no file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	// GeminiAPIKey authenticates the generative content client.
	GeminiAPIKey string `yaml:"gemini_api_key"`

	// Model is used for every request except long-form course content.
	Model string `yaml:"model"`

	// ProModel is used for course lesson generation.
	ProModel string `yaml:"pro_model"`

	// DataDir holds the SQLite database and log file.
	DataDir string `yaml:"data_dir"`

	// PollInterval drives the shared-state refresh tick.
	PollInterval time.Duration `yaml:"poll_interval"`

	// ContentTimeout bounds each generative request attempt.
	ContentTimeout time.Duration `yaml:"content_timeout"`

	// ContentRetries is the number of retries after a failed attempt.
	ContentRetries int `yaml:"content_retries"`

	// PlayerBin streams radio stations; PlayerArgs precede the URL.
	PlayerBin  string   `yaml:"player_bin"`
	PlayerArgs []string `yaml:"player_args"`

	// SpeechBin reads chapters aloud; SpeechArgs precede the text.
	SpeechBin  string   `yaml:"speech_bin"`
	SpeechArgs []string `yaml:"speech_args"`

	// Verbose switches the file logger to debug level.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	return Config{
		Model:          "gemini-2.5-flash",
		ProModel:       "gemini-3-pro-preview",
		PollInterval:   2 * time.Second,
		ContentTimeout: 45 * time.Second,
		ContentRetries: 2,
	}
}

// DefaultPath is the conventional config location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "verbo.yaml"
	}
	return filepath.Join(dir, "verbo", "config.yaml")
}

// Load reads path, applies env overrides, and fills defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)
	fillDefaults(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("VERBO_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("VERBO_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("VERBO_PLAYER"); v != "" {
		cfg.PlayerBin = v
		cfg.PlayerArgs = nil
	}
	if v := os.Getenv("VERBO_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.PollInterval = d
		}
	}
	if v := os.Getenv("VERBO_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}

func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.ProModel == "" {
		cfg.ProModel = def.ProModel
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.ContentTimeout <= 0 {
		cfg.ContentTimeout = def.ContentTimeout
	}
	if cfg.ContentRetries < 0 {
		cfg.ContentRetries = 0
	}
	if cfg.DataDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.DataDir = filepath.Join(dir, "verbo")
		} else {
			cfg.DataDir = "."
		}
	}
}

// DBPath returns the SQLite file location under DataDir.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "verbo.sqlite")
}

// LogPath returns the log file location under DataDir.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "verbo.log")
}
