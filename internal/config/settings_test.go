package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSettingsRoundTripJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	if err := SaveSettings(path, Settings{Provider: "weatherapi"}); err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings file: %v", err)
	}
	if !strings.Contains(string(raw), `"provider"`) {
		t.Errorf("expected JSON content, got %s", raw)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if loaded.Provider != "weatherapi" {
		t.Fatalf("expected provider weatherapi, got %s", loaded.Provider)
	}
}

func TestSettingsRoundTripYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	if err := SaveSettings(path, Settings{Provider: "openweather"}); err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings file: %v", err)
	}
	if !strings.Contains(string(raw), "provider:") {
		t.Errorf("expected YAML content, got %s", raw)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if loaded.Provider != "openweather" {
		t.Fatalf("expected provider openweather, got %s", loaded.Provider)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	_, err := LoadSettings(path)
	if err == nil {
		t.Fatalf("expected missing settings error, got nil")
	}
	if !errors.Is(err, ErrSettingsNotFound) {
		t.Fatalf("expected ErrSettingsNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "configure") {
		t.Errorf("expected instructional error, got %v", err)
	}
}

func TestLoadSettingsEmptyProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"provider":""}`), 0o644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Fatalf("expected error for empty provider, got nil")
	}
}

func TestSaveSettingsCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")

	if err := SaveSettings(path, Settings{Provider: "weatherapi"}); err != nil {
		t.Fatalf("SaveSettings returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file to exist: %v", err)
	}
}
