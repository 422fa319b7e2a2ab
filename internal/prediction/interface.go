package prediction

import (
	"context"

	"patient-intake-router/internal/prompt"
)

// Gateway turns a prompt template into a validated structured value.
type Gateway interface {
	// Predict renders tmpl with vars, asks the model for output matching schema and
	// decodes it into out. Every failure is a *PredictionError. No retries.
	Predict(ctx context.Context, tmpl prompt.Template, schema Schema, vars map[string]string, out any) error
}
