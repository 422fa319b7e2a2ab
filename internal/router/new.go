package router

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"patient-intake-router/internal/prediction"
	"patient-intake-router/internal/prompt"
	"patient-intake-router/internal/routing"
	"patient-intake-router/pkg/log"
)

// Router turns a free-text utterance into a routing Decision.
type Router interface {
	// ProcessUserInput never fails: every failure becomes an error Decision.
	ProcessUserInput(ctx context.Context, text string) Decision
	// Classify runs the model without deciding a route.
	Classify(ctx context.Context, text string) (IntentClassification, error)
}

// IntentRouter classifies intent with an LLM and routes with the routing configuration
type IntentRouter struct {
	l       log.Logger
	cfg     *routing.Configuration
	prompts *prompt.Library
	gateway prediction.Gateway
	tracer  trace.Tracer
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter. cfg and prompts are read-only after construction.
func New(l log.Logger, cfg *routing.Configuration, prompts *prompt.Library, gateway prediction.Gateway) *IntentRouter {
	if prompts == nil {
		prompts = prompt.Empty()
	}
	return &IntentRouter{
		l:       l,
		cfg:     cfg,
		prompts: prompts,
		gateway: gateway,
		tracer:  otel.Tracer(tracerName),
	}
}
