package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Config holds application-level configuration.
type Config struct {
	DBPath      string `yaml:"db"`         // SQLite quote database
	PageSize    int    `yaml:"page_size"`  // Quotes per page in the unfiltered list
	LogFile     string `yaml:"log_file"`   // Empty disables logging
	LogLevel    string `yaml:"log_level"`  // zerolog level name
	UIStatePath string `yaml:"state_file"` // Last opened list, restored on launch
}

// Load reads the optional YAML config file, then applies environment overrides.
//
//	QUOTEBOOK_CONFIG     Path to config file (default: ~/.config/quotebook/config.yml)
//	QUOTEBOOK_DB         Path to SQLite database (default: ~/.config/quotebook/quotes.db)
//	QUOTEBOOK_PAGE_SIZE  Quotes per page, 1..200 (default: 20)
//	QUOTEBOOK_LOG_FILE   Log file (default: ~/.config/quotebook/quotebook.log)
//	QUOTEBOOK_LOG_LEVEL  Log level (default: "info")
//	QUOTEBOOK_STATE      UI state file (default: ~/.config/quotebook/ui_state.json)
func Load() (Config, error) {
	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:      filepath.Join(dir, "quotes.db"),
		PageSize:    DefaultPageSize,
		LogFile:     filepath.Join(dir, "quotebook.log"),
		LogLevel:    "info",
		UIStatePath: filepath.Join(dir, "ui_state.json"),
	}

	path := os.Getenv("QUOTEBOOK_CONFIG")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, "config.yml")
	}
	if err := loadFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	if v := os.Getenv("QUOTEBOOK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("QUOTEBOOK_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("invalid QUOTEBOOK_PAGE_SIZE: %w", err)
		}
		cfg.PageSize = n
	}
	if v, ok := os.LookupEnv("QUOTEBOOK_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v := os.Getenv("QUOTEBOOK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("QUOTEBOOK_STATE"); v != "" {
		cfg.UIStatePath = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("invalid config: db path is empty")
	}
	if c.PageSize < 1 || c.PageSize > MaxPageSize {
		return fmt.Errorf("invalid config: page size must be between 1 and %d, got %d", MaxPageSize, c.PageSize)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func configDir() (string, error) {
	if dir := os.Getenv("QUOTEBOOK_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "quotebook"), nil
}
