package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a configuration file and applies it on top of [Default].
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return Config{}, &Error{Op: "config.load", Path: path, Err: err}
	}
	return Parse(path, b)
}

// Parse decodes YAML configuration from b. The path is only used in error
// messages. Unknown keys are rejected.
func Parse(path string, b []byte) (Config, error) {
	var dto YAMLFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &Error{
			Op:   "config.parse",
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrInvalidConfig, err),
		}
	}
	return Map(path, Default(), dto)
}
