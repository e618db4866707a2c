// Package preset persists the resolutions last applied per display device.
package preset

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Load reads preset data from disk. Missing files return empty data.
func Load(path string) (Presets, error) {
	var p Presets
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, err
	}
	return p, nil
}

// Save writes preset data to disk, creating parent directories as needed.
func Save(path string, p Presets) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
