package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	settings, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings != Default() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	settings := Settings{
		IgnoreCallouts:     false,
		StripMarkdownChars: true,
		ShowWordCount:      false,
		StatsPosition:      PositionHeader,
	}
	if err := Save(settings); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != settings {
		t.Fatalf("expected %+v, got %+v", settings, loaded)
	}

	path, err := Path()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat config path: %v", err)
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, configDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error for corrupt config")
	}
}

func TestNormalizeStatsPosition(t *testing.T) {
	settings := normalize(Settings{StatsPosition: "sideways"})
	if settings.StatsPosition != PositionFooter {
		t.Fatalf("expected footer fallback, got %q", settings.StatsPosition)
	}
}
