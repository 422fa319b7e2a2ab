package prediction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patient-intake-router/internal/prompt"
	"patient-intake-router/pkg/llmprovider"
	"patient-intake-router/pkg/log"
)

type fakeGenerator struct {
	text    string
	err     error
	lastReq *llmprovider.Request
	calls   int
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: f.text}}},
		ProviderName: "fake",
		ModelName:    "fake-model",
	}, nil
}

type triage struct {
	Department string  `json:"department" validate:"required"`
	Score      float64 `json:"score" validate:"gte=0,lte=1"`
	Urgent     bool    `json:"urgent"`
}

var triageSchema = Schema{
	Name: "Triage",
	JSON: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"department": map[string]any{"type": "string"},
			"score":      map[string]any{"type": "number"},
			"urgent":     map[string]any{"type": "boolean"},
		},
		"required": []string{"department", "score", "urgent"},
	},
}

var triageTemplate = prompt.Template{
	Category: "intake",
	Name:     "triage",
	Text:     "Caller: {user_input}",
}

func newTestGateway(gen Generator) Gateway {
	return New(log.NewNop(), gen, Options{Temperature: 0.1, MaxTokens: 512})
}

func TestPredict_Success(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "bare json", text: `{"department":"billing","score":0.9,"urgent":false}`},
		{name: "json code fence", text: "```json\n{\"department\":\"billing\",\"score\":0.9,\"urgent\":false}\n```"},
		{name: "plain code fence", text: "```\n{\"department\":\"billing\",\"score\":0.9,\"urgent\":false}\n```"},
		{name: "surrounding prose", text: "Sure! {\"department\":\"billing\",\"score\":0.9,\"urgent\":false} Hope that helps."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: tt.text}
			var out triage

			err := newTestGateway(gen).Predict(context.Background(), triageTemplate, triageSchema,
				map[string]string{"user_input": "my bill is wrong"}, &out)
			require.NoError(t, err)
			assert.Equal(t, triage{Department: "billing", Score: 0.9}, out)
		})
	}
}

func TestPredict_BuildsRequest(t *testing.T) {
	gen := &fakeGenerator{text: `{"department":"billing","score":0.5,"urgent":true}`}
	var out triage

	require.NoError(t, newTestGateway(gen).Predict(context.Background(), triageTemplate, triageSchema,
		map[string]string{"user_input": "my bill is wrong"}, &out))

	req := gen.lastReq
	require.NotNil(t, req)
	assert.Equal(t, "Caller: my bill is wrong", req.Messages[0].Parts[0].Text)
	assert.True(t, req.JSONOutput)
	assert.Equal(t, triageSchema.JSON, req.ResponseSchema)
	assert.InDelta(t, 0.1, req.Temperature, 1e-9)
	assert.Equal(t, 512, req.MaxTokens)
	assert.Contains(t, req.SystemInstruction.Parts[0].Text, "Triage")
	assert.Contains(t, req.SystemInstruction.Parts[0].Text, `"department"`)
}

func TestPredict_Failures(t *testing.T) {
	tests := []struct {
		name      string
		gen       *fakeGenerator
		vars      map[string]string
		wantStage string
		wantErr   error
	}{
		{
			name:      "missing template variable",
			gen:       &fakeGenerator{text: `{}`},
			vars:      map[string]string{},
			wantStage: StageRender,
			wantErr:   prompt.ErrMissingVariable,
		},
		{
			name:      "provider failure",
			gen:       &fakeGenerator{err: llmprovider.ErrProviderTimeout},
			wantStage: StageProvider,
			wantErr:   llmprovider.ErrProviderTimeout,
		},
		{
			name:      "empty output",
			gen:       &fakeGenerator{text: "   "},
			wantStage: StageDecode,
			wantErr:   ErrEmptyOutput,
		},
		{
			name:      "not json",
			gen:       &fakeGenerator{text: "I think this is billing"},
			wantStage: StageDecode,
		},
		{
			name:      "missing required field",
			gen:       &fakeGenerator{text: `{"department":"billing","score":0.4}`},
			wantStage: StageValidate,
			wantErr:   ErrMissingField,
		},
		{
			name:      "null required field",
			gen:       &fakeGenerator{text: `{"department":"billing","score":null,"urgent":false}`},
			wantStage: StageValidate,
			wantErr:   ErrMissingField,
		},
		{
			name:      "wrong field type",
			gen:       &fakeGenerator{text: `{"department":"billing","score":"high","urgent":false}`},
			wantStage: StageDecode,
		},
		{
			name:      "out of range",
			gen:       &fakeGenerator{text: `{"department":"billing","score":1.7,"urgent":false}`},
			wantStage: StageValidate,
			wantErr:   ErrInvalidOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := tt.vars
			if vars == nil {
				vars = map[string]string{"user_input": "hello"}
			}
			var out triage

			err := newTestGateway(tt.gen).Predict(context.Background(), triageTemplate, triageSchema, vars, &out)
			require.Error(t, err)

			var predErr *PredictionError
			require.True(t, errors.As(err, &predErr), "error %v is not a PredictionError", err)
			assert.Equal(t, tt.wantStage, predErr.Stage)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPredict_RenderFailureSkipsProvider(t *testing.T) {
	gen := &fakeGenerator{text: `{}`}
	var out triage

	err := newTestGateway(gen).Predict(context.Background(), triageTemplate, triageSchema, nil, &out)
	require.Error(t, err)
	assert.Equal(t, 0, gen.calls)
}

func TestSchema(t *testing.T) {
	assert.Equal(t, []string{"department", "score", "urgent"}, triageSchema.Required())

	fromYAML := Schema{JSON: map[string]any{"required": []any{"a", 1, "b"}}}
	assert.Equal(t, []string{"a", "b"}, fromYAML.Required())

	assert.Nil(t, Schema{}.Required())
	assert.True(t, strings.HasPrefix(triageSchema.String(), "{"))
}
