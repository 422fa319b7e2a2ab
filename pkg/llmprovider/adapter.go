package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"patient-intake-router/pkg/gemini"
	"patient-intake-router/pkg/openai"
	"patient-intake-router/pkg/vertex"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		ResponseSchema:    req.ResponseSchema,
	}
	if req.JSONOutput || req.ResponseSchema != nil {
		geminiReq.ResponseMIMEType = gemini.MIMETypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, classifyStatus(err)
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		FinishReason: resp.FinishReason,
		Usage:        convertUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to the Provider interface. One adapter type
// serves every OpenAI-compatible vendor; name tells them apart.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openAIReq := &openai.Request{
		Messages:    convertToOpenAIMessages(req.SystemInstruction, req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONOutput || req.ResponseSchema != nil,
	}

	resp, err := a.client.GenerateContent(ctx, openAIReq)
	if err != nil {
		return nil, classifyStatus(err)
	}

	role := resp.Role
	if role == "" {
		role = RoleAssistant
	}
	return &Response{
		Content:      Message{Role: role, Parts: []Part{{Text: resp.Text}}},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		FinishReason: resp.FinishReason,
		Usage:        convertUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// VertexAdapter adapts pkg/vertex to llmprovider.Provider interface
type VertexAdapter struct {
	client vertex.IVertex
}

// NewVertexAdapter creates a new Vertex AI adapter
func NewVertexAdapter(client vertex.IVertex) *VertexAdapter {
	return &VertexAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *VertexAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	vertexReq := &vertex.Request{
		SystemInstruction: joinText(req.SystemInstruction),
		Prompt:            joinMessages(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		ResponseSchema:    req.ResponseSchema,
	}
	if req.JSONOutput || req.ResponseSchema != nil {
		vertexReq.ResponseMIMEType = vertex.MIMETypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, vertexReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Text}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		FinishReason: resp.FinishReason,
		Usage:        convertUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *VertexAdapter) Name() string {
	return ProviderVertex
}

// Model returns model name
func (a *VertexAdapter) Model() string {
	return a.client.Model()
}

// classifyStatus maps HTTP status codes from the REST clients onto package sentinels.
func classifyStatus(err error) error {
	status := 0
	var oaErr *openai.APIError
	var gmErr *gemini.APIError
	switch {
	case errors.As(err, &oaErr):
		status = oaErr.StatusCode
	case errors.As(err, &gmErr):
		status = gmErr.StatusCode
	}

	switch status {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return err
}

func convertUsage(in, out, total int) *Usage {
	return &Usage{InputTokens: in, OutputTokens: out, TotalTokens: total}
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for OpenAI-compatible APIs
func convertToOpenAIMessages(system *Message, msgs []Message) []openai.Message {
	out := make([]openai.Message, 0, len(msgs)+1)
	if system != nil {
		out = append(out, openai.Message{Role: RoleSystem, Content: joinText(system)})
	}
	for i := range msgs {
		role := msgs[i].Role
		if role == "" {
			role = RoleUser
		}
		out = append(out, openai.Message{Role: role, Content: joinText(&msgs[i])})
	}
	return out
}

func joinText(msg *Message) string {
	if msg == nil {
		return ""
	}
	texts := make([]string, 0, len(msg.Parts))
	for _, p := range msg.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}

func joinMessages(msgs []Message) string {
	texts := make([]string, 0, len(msgs))
	for i := range msgs {
		if t := joinText(&msgs[i]); t != "" {
			texts = append(texts, t)
		}
	}
	return strings.Join(texts, "\n\n")
}
