package prediction

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOutput indicates the model reply had no JSON content
	ErrEmptyOutput = errors.New("empty model output")

	// ErrMissingField indicates a required field was absent or null
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidOutput indicates the decoded value failed validation
	ErrInvalidOutput = errors.New("output failed validation")
)

// PredictionError is returned for any failure inside Predict.
type PredictionError struct {
	Stage string
	Err   error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("structured prediction failed (%s): %v", e.Stage, e.Err)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}
