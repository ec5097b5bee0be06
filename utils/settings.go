package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Settings is everything the browser persists between sessions.
type Settings struct {
	Watched   []int  `json:"watched"`
	Favorites []int  `json:"favorites"`
	Theme     string `json:"theme,omitempty"`     // "dark" or "green"
	ViewMode  string `json:"view_mode,omitempty"` // "list" or "grid"
}

func settingsFile() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// ---------------- Load settings ----------------
func LoadSettings() (Settings, error) {
	path, err := settingsFile()
	if err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("invalid settings format: %w", err)
	}
	return s, nil
}

// ---------------- Save settings ----------------
func SaveSettings(s Settings) error {
	path, err := settingsFile()
	if err != nil {
		return err
	}
	if s.Watched == nil {
		s.Watched = []int{}
	}
	if s.Favorites == nil {
		s.Favorites = []int{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, data)
}
