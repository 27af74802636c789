// Package session persists simulation state between runs as YAML.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"black-hole/internal/sims/blackhole"

	"gopkg.in/yaml.v3"
)

// FileName is the session file created under the user config directory.
const FileName = "session.yaml"

// DefaultPath returns the per-user session location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "black-hole", FileName), nil
}

// Save writes st to path, creating parent directories as needed. The file is
// written to a temporary sibling first and renamed into place.
func Save(path string, st blackhole.State) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing session: %w", err)
	}
	return nil
}

// Load reads a session written by Save. Fields missing from the file keep
// their default values.
func Load(path string) (blackhole.State, error) {
	st := blackhole.State{Config: blackhole.DefaultConfig()}
	data, err := os.ReadFile(path)
	if err != nil {
		return st, fmt.Errorf("reading session: %w", err)
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("parsing session: %w", err)
	}
	return st, nil
}

// LoadOrDefault behaves like Load but reports ok=false instead of an error
// when the file does not exist yet.
func LoadOrDefault(path string) (st blackhole.State, ok bool, err error) {
	st, err = Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return blackhole.State{Config: blackhole.DefaultConfig()}, false, nil
	}
	if err != nil {
		return st, false, err
	}
	return st, true, nil
}
