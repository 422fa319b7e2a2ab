package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"patient-intake-router/pkg/log"
)

// Manager sends each request to the highest-priority provider exactly once.
// Retrying and falling back are left to the caller.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	// Timeout bounds a single provider call. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// NewManager creates a new Provider Manager with the given providers, config, and logger.
// providers must already be sorted by priority.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Primary returns the provider requests are sent to, or nil when none is configured.
func (m *Manager) Primary() Provider {
	if len(m.providers) == 0 {
		return nil
	}
	return m.providers[0]
}

// GenerateContent sends req to the primary provider under the configured timeout.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	provider := m.Primary()
	if provider == nil {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("%w: no messages", ErrInvalidRequest)
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := provider.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, ErrProviderTimeout) {
			err = fmt.Errorf("%w after %s: %v", ErrProviderTimeout, m.config.Timeout, err)
		}
		m.logFailure(ctx, provider, err)
		return nil, &ProviderError{Provider: provider.Name(), Err: err}
	}
	if resp == nil || resp.Text() == "" {
		m.logFailure(ctx, provider, ErrEmptyResponse)
		return nil, &ProviderError{Provider: provider.Name(), Err: ErrEmptyResponse}
	}

	m.logSuccess(ctx, provider, resp, time.Since(start))
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response, elapsed time.Duration) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d elapsed=%s",
		provider.Name(), provider.Model(), in, out, elapsed)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
