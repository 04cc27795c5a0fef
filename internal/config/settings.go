package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the persisted provider selection written by the configure
// command and read back before every fetch.
type Settings struct {
	Provider string `json:"provider" yaml:"provider"`
}

// ErrSettingsNotFound reports a missing settings file; the caller should
// tell the user to run configure first.
var ErrSettingsNotFound = errors.New("settings file not found")

type marshalFn func(any) ([]byte, error)

type unmarshalFn func([]byte, any) error

type settingsCodec struct {
	name      string
	exts      []string
	marshal   marshalFn
	unmarshal unmarshalFn
}

// JSON first: it is the codec for the default settings path and for any
// extension we do not recognize.
var settingsCodecs = []settingsCodec{
	{
		name:      "json",
		exts:      []string{".json"},
		marshal:   func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") },
		unmarshal: json.Unmarshal,
	},
	{
		name:      "yaml",
		exts:      []string{".yaml", ".yml"},
		marshal:   yaml.Marshal,
		unmarshal: yaml.Unmarshal,
	},
}

func codecForPath(path string) settingsCodec {
	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range settingsCodecs {
		for _, e := range c.exts {
			if ext == e {
				return c
			}
		}
	}
	return settingsCodecs[0]
}

// SaveSettings writes the provider selection to path, creating parent
// directories as needed.
func SaveSettings(path string, s Settings) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("settings file path is empty")
	}
	if strings.TrimSpace(s.Provider) == "" {
		return errors.New("provider name is empty")
	}

	codec := codecForPath(path)
	raw, err := codec.marshal(s)
	if err != nil {
		return fmt.Errorf("encode %s settings: %w", codec.name, err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// LoadSettings reads the provider selection from path.
func LoadSettings(path string) (Settings, error) {
	if strings.TrimSpace(path) == "" {
		return Settings{}, errors.New("settings file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("%w at %s: run: wapp configure <provider>", ErrSettingsNotFound, path)
		}
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	codec := codecForPath(path)
	var s Settings
	if err := codec.unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("decode %s settings: %w", codec.name, err)
	}

	// The provider name is handed to the resolver exactly as stored; only
	// reject files with nothing usable in them.
	if strings.TrimSpace(s.Provider) == "" {
		return Settings{}, fmt.Errorf("settings file %s has no provider set", path)
	}
	return s, nil
}
