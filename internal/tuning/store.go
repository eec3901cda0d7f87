package tuning

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads tuning from disk. A missing file returns the defaults.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), err
	}
	if err := t.Validate(); err != nil {
		return Default(), err
	}
	return t, nil
}

// Save writes tuning to disk, creating parent directories as needed.
func Save(path string, t Tuning) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
