// Package config loads catenary requests and plot settings from YAML files.
package config

import (
	"errors"
	"fmt"

	"honnef.co/go/catenary"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config is everything the command line tool needs for one run.
type Config struct {
	Request catenary.Request
	Solver  catenary.Options
	Plot    Plot
}

// Plot controls how a solved curve is rendered.
type Plot struct {
	Samples int
	// Width and Height are in inches.
	Width  float64
	Height float64
	Title  string
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Request: catenary.Request{
			L:  158.98,
			D:  130.76,
			YL: 62.37,
			YR: 0.0,
		},
		Solver: catenary.DefaultOptions,
		Plot: Plot{
			Samples: catenary.DefaultSamples,
			Width:   10,
			Height:  6,
			Title:   "Catenary Curve",
		},
	}
}

// Error reports a configuration file that couldn't be read or is invalid.
type Error struct {
	Op    string
	Path  string
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Field != "" {
		base += fmt.Sprintf(" field %s", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func invalidField(path, field, msg string) error {
	return &Error{
		Op:    "config.map",
		Path:  path,
		Field: field,
		Err:   fmt.Errorf("%w: %s", ErrInvalidConfig, msg),
	}
}
