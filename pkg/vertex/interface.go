package vertex

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// IVertex is a Gemini client on the Vertex AI backend.
// Implementations are safe for concurrent use.
type IVertex interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New builds a genai client for cfg. Credentials come from cfg.APIKey or
// Application Default Credentials.
func New(ctx context.Context, cfg Config) (IVertex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:   cfg.APIKey,
		Backend:  genai.BackendVertexAI,
		Project:  cfg.Project,
		Location: cfg.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("vertex: failed to create client: %w", err)
	}
	return newVertexImpl(client.Models, cfg.Model), nil
}
