// Package config persists notestats settings as a JSON file in the user's
// home directory. Analysis flags are handed to the core analyzer; the
// presentation fields only affect how results are displayed.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName  = ".notestats"
	configFileName = "config.json"
)

// Stats bar positions.
const (
	PositionFooter = "footer"
	PositionHeader = "header"
)

// Settings stores user-defined notestats settings.
type Settings struct {
	// IgnoreCallouts excludes `> [!type]` callout blocks from all counts.
	IgnoreCallouts bool `json:"ignore_callouts"`
	// StripMarkdownChars counts characters against Markdown-stripped text.
	StripMarkdownChars bool `json:"strip_markdown_chars"`
	// ShowWordCount toggles the word segment of the stats bar.
	ShowWordCount bool `json:"show_word_count"`
	// StatsPosition places the stats bar ("footer" or "header").
	StatsPosition string `json:"stats_position"`
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{
		IgnoreCallouts:     true,
		StripMarkdownChars: false,
		ShowWordCount:      true,
		StatsPosition:      PositionFooter,
	}
}

// Path returns the configuration file path.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads saved settings, falling back to defaults when the file does
// not exist. A file that exists but cannot be parsed is an error so a typo
// never silently discards the user's settings.
func Load() (Settings, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}

	settings := Default()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return normalize(settings), nil
}

// Save writes settings to disk, creating the config directory if needed.
func Save(settings Settings) error {
	settings = normalize(settings)

	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(path, data, 0o600)
}

// normalize clamps free-form fields to recognized values.
func normalize(settings Settings) Settings {
	if settings.StatsPosition != PositionHeader {
		settings.StatsPosition = PositionFooter
	}
	return settings
}
