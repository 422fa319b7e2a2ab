package prediction

import (
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"

	"patient-intake-router/pkg/log"
)

var _ Gateway = (*implGateway)(nil)

// New creates a Gateway over llm.
func New(l log.Logger, llm Generator, opts Options) Gateway {
	return &implGateway{
		l:        l,
		llm:      llm,
		opts:     opts,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   otel.Tracer(tracerName),
	}
}
