package router

import (
	"errors"
	"fmt"

	"patient-intake-router/internal/prediction"
)

// ErrPromptNotFound indicates the classification prompt is missing from the library.
var ErrPromptNotFound = errors.New("prompt not found")

// ConfigurationError is a per-request precondition failure, such as a missing prompt.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// kindOf maps a Classify failure onto its ErrorKind.
func kindOf(err error) ErrorKind {
	var cfgErr *ConfigurationError
	var predErr *prediction.PredictionError
	switch {
	case errors.As(err, &cfgErr):
		return ErrorKindConfiguration
	case errors.As(err, &predErr):
		return ErrorKindPrediction
	default:
		return ErrorKindInternal
	}
}

// panicError wraps a recovered panic value.
type panicError struct {
	value any
}

func (e panicError) Error() string {
	return fmt.Sprintf("%v", e.value)
}
