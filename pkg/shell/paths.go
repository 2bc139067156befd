package shell

import (
	"os"
	"path/filepath"
)

// ConfigPath returns the path of the config file:
// $XDG_CONFIG_HOME/crotchet/config.yaml, or ~/.config/crotchet/config.yaml if
// $XDG_CONFIG_HOME is not set.
func ConfigPath() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crotchet", "config.yaml"), nil
}

// DBPath returns the path of the history database:
// $XDG_STATE_HOME/crotchet/db, or ~/.local/state/crotchet/db if
// $XDG_STATE_HOME is not set. It creates the parent directory if needed.
func DBPath() (string, error) {
	dir, err := xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "crotchet")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "db"), nil
}

func xdgDir(envName, homeRel string) (string, error) {
	if dir := os.Getenv(envName); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRel), nil
}
