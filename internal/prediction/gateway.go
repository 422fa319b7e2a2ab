package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"patient-intake-router/internal/prompt"
	"patient-intake-router/pkg/llmprovider"
)

func (g *implGateway) Predict(ctx context.Context, tmpl prompt.Template, schema Schema, vars map[string]string, out any) (err error) {
	ctx, span := g.tracer.Start(ctx, "prediction.Predict", trace.WithAttributes(
		attribute.String("prompt.category", tmpl.Category),
		attribute.String("prompt.name", tmpl.Name),
		attribute.String("schema.name", schema.Name),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rendered, err := tmpl.Render(vars)
	if err != nil {
		return g.fail(ctx, StageRender, err)
	}

	resp, err := g.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleSystem,
			Parts: []llmprovider.Part{{Text: fmt.Sprintf(systemInstructionTemplate, schema.Name, schema)}},
		},
		Messages:       []llmprovider.Message{llmprovider.UserMessage(rendered)},
		Temperature:    g.opts.Temperature,
		MaxTokens:      g.opts.MaxTokens,
		JSONOutput:     true,
		ResponseSchema: schema.JSON,
	})
	if err != nil {
		return g.fail(ctx, StageProvider, err)
	}
	span.SetAttributes(
		attribute.String("llm.provider", resp.ProviderName),
		attribute.String("llm.model", resp.ModelName),
	)

	payload := extractJSON(resp.Text())
	if payload == "" {
		return g.fail(ctx, StageDecode, ErrEmptyOutput)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return g.fail(ctx, StageDecode, err)
	}
	for _, name := range schema.Required() {
		raw, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return g.fail(ctx, StageValidate, fmt.Errorf("%w: %s", ErrMissingField, name))
		}
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return g.fail(ctx, StageDecode, err)
	}

	if isStruct(out) {
		if err := g.validate.Struct(out); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				return g.fail(ctx, StageValidate, fmt.Errorf("%w: %s", ErrInvalidOutput, describe(verrs)))
			}
			return g.fail(ctx, StageValidate, err)
		}
	}

	return nil
}

func (g *implGateway) fail(ctx context.Context, stage string, err error) error {
	g.l.Errorf(ctx, "%s: Error in structured prediction (%s): %v", LogPrefixPredict, stage, err)
	return &PredictionError{Stage: stage, Err: err}
}

// extractJSON strips markdown code fences and any prose around the outermost object.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	text = strings.TrimSpace(text)

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return text
	}
	return text[start : end+1]
}

func isStruct(v any) bool {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
