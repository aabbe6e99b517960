package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pomodoro/internal/core/model"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// ErrInvalidConfig is returned when a config value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New()

// Config contains the startup options read from settings.yaml.
type Config struct {
	SessionMinutes int    `validate:"min=1,max=60"`
	BreakMinutes   int    `validate:"min=1,max=60"`
	LogLevel       string `validate:"oneof=debug info warn error"`
	LogFormat      string `validate:"oneof=pretty json"`
	Sound          bool
}

type yamlConfig struct {
	SessionMinutes *int    `yaml:"session_minutes"`
	BreakMinutes   *int    `yaml:"break_minutes"`
	Sound          *bool   `yaml:"sound"`
	LogLevel       *string `yaml:"log_level"`
	LogFormat      *string `yaml:"log_format"`
}

// DefaultConfig returns the values used when no file is present.
func DefaultConfig() Config {
	return Config{
		SessionMinutes: model.DefaultSessionMinutes,
		BreakMinutes:   model.DefaultBreakMinutes,
		Sound:          true,
		LogLevel:       "info",
		LogFormat:      "pretty",
	}
}

// Settings returns the initial lengths for the settings store.
func (cfg Config) Settings() model.Settings {
	return model.Settings{
		SessionMinutes: cfg.SessionMinutes,
		BreakMinutes:   cfg.BreakMinutes,
	}
}

// Validate checks every field against its allowed range.
func (cfg Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// DefaultPath returns settings.yaml inside the user config directory.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadConfig reads startup options from YAML.
// If the file does not exist, default options are returned.
// The file is never written; timer state is not persisted.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return cfg, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlConfig(&cfg, fileData)
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func applyYamlConfig(cfg *Config, fileData yamlConfig) {
	if fileData.SessionMinutes != nil {
		cfg.SessionMinutes = *fileData.SessionMinutes
	}
	if fileData.BreakMinutes != nil {
		cfg.BreakMinutes = *fileData.BreakMinutes
	}
	if fileData.Sound != nil {
		cfg.Sound = *fileData.Sound
	}
	if fileData.LogLevel != nil {
		cfg.LogLevel = *fileData.LogLevel
	}
	if fileData.LogFormat != nil {
		cfg.LogFormat = *fileData.LogFormat
	}
}
