package prediction

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel/trace"

	"github.com/go-playground/validator/v10"

	"patient-intake-router/pkg/llmprovider"
	"patient-intake-router/pkg/log"
)

// Generator is the model capability the gateway drives. *llmprovider.Manager implements it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Schema describes the structured output expected from the model.
type Schema struct {
	Name string
	// JSON is a JSON Schema object with lowercase type names.
	JSON map[string]any
}

// Required lists the top-level properties the output must carry.
func (s Schema) Required() []string {
	switch req := s.JSON["required"].(type) {
	case []string:
		return req
	case []any:
		out := make([]string, 0, len(req))
		for _, r := range req {
			if name, ok := r.(string); ok {
				out = append(out, name)
			}
		}
		return out
	}
	return nil
}

// String renders the schema as indented JSON for the system instruction.
func (s Schema) String() string {
	b, err := json.MarshalIndent(s.JSON, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Options tunes generation.
type Options struct {
	Temperature float64
	MaxTokens   int
}

type implGateway struct {
	l        log.Logger
	llm      Generator
	opts     Options
	validate *validator.Validate
	tracer   trace.Tracer
}
