// Package store holds the console's local, non-authoritative state: the
// global config file, best-effort TUI state, and the sqlite activity history.
// Everything the backend owns is fetched fresh; nothing here is a write
// queue or a cache of remote truth.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

const configFileName = "config.json"

// GlobalConfig is ~/.claudetask/config.json.
type GlobalConfig struct {
	// ServerURL is the backend base URL. The only required setting.
	ServerURL string `json:"serverUrl,omitempty"`

	// CurrentProjectID scopes the TUI and CLI when --project is not given.
	CurrentProjectID string `json:"currentProjectId,omitempty"`

	// LogRefreshSeconds overrides the log viewer auto-refresh interval.
	LogRefreshSeconds int `json:"logRefreshSeconds,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.claudetask).
	if v := strings.TrimSpace(os.Getenv("CLAUDETASK_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claudetask"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LoadConfig reads the global config. A missing file is an empty config, not
// an error. The file is parsed leniently (comments and trailing commas are
// fine; people hand-edit this).
func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	std, err := hujson.Standardize(b)
	if err != nil {
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig writes the global config atomically.
func SaveConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	path := filepath.Join(dir, configFileName)
	return atomic.WriteFile(path, bytes.NewReader(b))
}
