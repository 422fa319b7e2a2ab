package vertex

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

func newVertexImpl(models generator, model string) *vertexImpl {
	return &vertexImpl{models: models, model: model}
}

// GenerateContent sends a single generateContent call through the SDK
func (v *vertexImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: []*genai.Part{{Text: req.Prompt}}},
	}

	resp, err := v.models.GenerateContent(ctx, v.model, contents, buildConfig(req))
	if err != nil {
		return nil, fmt.Errorf("vertex: generate content: %w", err)
	}
	return transformResponse(resp), nil
}

// Model returns the model being used
func (v *vertexImpl) Model() string {
	return v.model
}

func buildConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(req.Temperature)),
		ResponseMIMEType: req.ResponseMIMEType,
		ResponseSchema:   ConvertSchema(req.ResponseSchema),
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.SystemInstruction}}}
	}
	return cfg
}

func transformResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{Usage: &Usage{}}
	if resp == nil {
		return out
	}
	if u := resp.UsageMetadata; u != nil {
		out.Usage.InputTokens = int(u.PromptTokenCount)
		out.Usage.OutputTokens = int(u.CandidatesTokenCount)
		out.Usage.TotalTokens = int(u.TotalTokenCount)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return out
	}

	candidate := resp.Candidates[0]
	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	out.Text = b.String()
	out.FinishReason = string(candidate.FinishReason)
	return out
}
