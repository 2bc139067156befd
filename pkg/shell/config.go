package shell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the content of the config file.
type Config struct {
	// Prompt is shown before each line in the REPL when stdin is a terminal.
	Prompt string `yaml:"prompt"`
	// Strict makes set fail on names that are not bound.
	Strict bool `yaml:"strict"`
	// History controls whether REPL lines are saved in the history database.
	History bool `yaml:"history"`
	// Seed seeds the rand builtin when nonzero.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the configuration used when there is no config file.
func DefaultConfig() Config {
	return Config{Prompt: "crotchet> ", History: true}
}

// LoadConfig reads the config file at path. Settings missing from the file
// keep their default values. A missing file or an empty path is not an
// error. If the file cannot be read or parsed, LoadConfig returns the default
// configuration along with the error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(&cfg)
	if err != nil && err != io.EOF {
		return DefaultConfig(), fmt.Errorf("cannot parse config file %s: %w", path, err)
	}
	return cfg, nil
}
