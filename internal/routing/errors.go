package routing

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound indicates the routing configuration file does not exist
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrMalformedConfig indicates the document could not be parsed
	ErrMalformedConfig = errors.New("error parsing YAML configuration")

	// ErrMissingSections indicates one or more required top-level sections are absent
	ErrMissingSections = errors.New("missing required sections in config")

	// ErrInvalidRule indicates a routing rule lacks a required field
	ErrInvalidRule = errors.New("invalid routing rule")

	// ErrDuplicateIntent indicates two routing rules declare the same intent
	ErrDuplicateIntent = errors.New("duplicate routing rule intent")
)

// ConfigLoadError is returned by every routing configuration loader.
// It is fatal at process start.
type ConfigLoadError struct {
	Path    string
	Missing []string
	Err     error
}

func (e *ConfigLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load routing config: %v", e.Err)
	}
	return fmt.Sprintf("load routing config %s: %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}
