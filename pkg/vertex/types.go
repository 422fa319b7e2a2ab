package vertex

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Config holds Vertex AI client configuration
type Config struct {
	Project  string
	Location string
	Model    string
	APIKey   string // optional, express mode
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.Project == "" && c.APIKey == "" {
		return fmt.Errorf("vertex: Project or APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Location == "" && c.APIKey == "" {
		c.Location = DefaultLocation
	}
	return nil
}

// generator is the subset of *genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// vertexImpl is the internal implementation of IVertex
type vertexImpl struct {
	models generator
	model  string
}

// Request represents a generation request
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
	ResponseMIMEType  string
	// ResponseSchema uses lowercase JSON Schema types.
	ResponseSchema map[string]any
}

// Response represents a generation response
type Response struct {
	Text         string
	FinishReason string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
