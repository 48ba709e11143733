package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// UIState is what the TUI remembers between launches.
type UIState struct {
	FilterMode  string `json:"filter_mode,omitempty"`  // "category" or "author"; empty for the full list
	FilterValue string `json:"filter_value,omitempty"` // Category or author name
	BrowseTab   string `json:"browse_tab,omitempty"`   // "categories" or "authors"
}

// LoadUIState reads the state file. A missing file yields the zero state.
func LoadUIState(path string) (UIState, error) {
	if path == "" {
		return UIState{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return UIState{}, nil
	}
	if err != nil {
		return UIState{}, fmt.Errorf("read ui state: %w", err)
	}
	var st UIState
	if err := json.Unmarshal(data, &st); err != nil {
		return UIState{}, fmt.Errorf("parse ui state: %w", err)
	}
	return st, nil
}

// SaveUIState writes the state file atomically.
func SaveUIState(path string, st UIState) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ui state: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "ui_state-*.json")
	if err != nil {
		return fmt.Errorf("create ui state temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write ui state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write ui state: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace ui state: %w", err)
	}
	return nil
}
