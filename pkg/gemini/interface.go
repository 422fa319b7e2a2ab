package gemini

import "context"

// IGemini is a client for the Generative Language generateContent endpoint.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a single generateContent call
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New validates cfg and returns a REST client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
