package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ezchuang/pomodoro4linux/internal/options"
)

type Config struct {
	WorkMinutes int    `yaml:"work_minutes"`
	RestMinutes int    `yaml:"rest_minutes"`
	Notify      bool   `yaml:"notify"`
	Database    string `yaml:"database"`
}

func Default() *Config {
	return &Config{
		WorkMinutes: options.DefaultWorkMinutes,
		RestMinutes: options.DefaultRestMinutes,
		Notify:      true,
		Database:    filepath.Join(defaultDir(), "history.db"),
	}
}

// DefaultPath is ~/.pomodoro4linux/config.yaml.
func DefaultPath() string {
	return filepath.Join(defaultDir(), "config.yaml")
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pomodoro4linux"
	}
	return filepath.Join(home, ".pomodoro4linux")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the interval lengths, naming the YAML keys in errors.
func (c *Config) Validate() error {
	return c.Options().ValidateAs("work_minutes", "rest_minutes")
}

func (c *Config) Options() options.Options {
	return options.Options{Work: c.WorkMinutes, Rest: c.RestMinutes}
}
