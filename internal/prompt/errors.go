package prompt

import (
	"errors"
	"fmt"
)

var (
	// ErrLibraryNotFound indicates the prompt library file does not exist
	ErrLibraryNotFound = errors.New("prompt library file not found")

	// ErrMalformedLibrary indicates the prompt library could not be parsed
	ErrMalformedLibrary = errors.New("error loading YAML file")

	// ErrMissingVariable indicates a template placeholder had no value
	ErrMissingVariable = errors.New("missing prompt variable")
)

// LoadError is returned by LoadFile. Load logs it and degrades to an empty library.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load prompt library %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
