// Package config loads amend's settings from YAML, a .env file and the
// environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrMissingAPIKey = errors.New("config: no API key set (llm.api_key, GEMINI_API_KEY or GOOGLE_API_KEY)")

type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	Suggest SuggestConfig `yaml:"suggest"`
	Editor  EditorConfig  `yaml:"editor"`
	Logging LoggingConfig `yaml:"logging"`
}

type LLMConfig struct {
	Provider    string        `yaml:"provider"` // gemini, fake
	Model       string        `yaml:"model"`
	APIKey      string        `yaml:"api_key"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxAttempts int           `yaml:"max_attempts"`

	// FakeReplies are returned in rotation by the fake provider.
	FakeReplies []string `yaml:"fake_replies"`
}

type SuggestConfig struct {
	QuietInterval        time.Duration `yaml:"quiet_interval"`
	OmitEditHistory      bool          `yaml:"omit_edit_history"`
	AcceptStaleResponses bool          `yaml:"accept_stale_responses"`

	// PromptFile replaces the built-in instruction template.
	PromptFile string `yaml:"prompt_file"`
}

type EditorConfig struct {
	ShowLineNumbers bool `yaml:"show_line_numbers"`
	TabWidth        int  `yaml:"tab_width"`
	HistoryLimit    int  `yaml:"history_limit"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "gemini",
			Model:       "gemini-2.0-flash",
			Timeout:     30 * time.Second,
			MaxAttempts: 3,
		},
		Suggest: SuggestConfig{
			QuietInterval: 700 * time.Millisecond,
		},
		Editor: EditorConfig{
			ShowLineNumbers: true,
			TabWidth:        4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/amend/config.yaml or its platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".amend", "config.yaml")
	}
	return filepath.Join(dir, "amend", "config.yaml")
}

// Load reads path over the defaults, then applies .env and environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if key := firstNonEmpty(env("GEMINI_API_KEY"), env("GOOGLE_API_KEY")); key != "" {
		c.LLM.APIKey = key
	}
	if v := env("AMEND_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := env("AMEND_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := env("AMEND_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := env("AMEND_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

// Validate reports settings the selected provider cannot run without.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LLM.Provider) {
	case "", "gemini":
		if c.LLM.APIKey == "" {
			return ErrMissingAPIKey
		}
		if c.LLM.Model == "" {
			return errors.New("config: llm.model is empty")
		}
	case "fake":
	default:
		return fmt.Errorf("config: unknown llm.provider %q", c.LLM.Provider)
	}
	if c.Suggest.QuietInterval < 0 {
		return fmt.Errorf("config: suggest.quiet_interval must not be negative, got %s", c.Suggest.QuietInterval)
	}
	return nil
}

// Prompt returns the custom template, or "" to use the built-in one.
func (c *Config) Prompt() (string, error) {
	if c.Suggest.PromptFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.Suggest.PromptFile)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file: %w", err)
	}
	return string(data), nil
}

func env(key string) string { return strings.TrimSpace(os.Getenv(key)) }

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
