package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"patient-intake-router/config"
	"patient-intake-router/pkg/gemini"
	"patient-intake-router/pkg/log"
	"patient-intake-router/pkg/openai"
	"patient-intake-router/pkg/vertex"
)

// Provider names accepted in llm.providers[].name
const (
	ProviderOpenAI    = "openai"
	ProviderFireworks = "fireworks"
	ProviderDeepSeek  = "deepseek"
	ProviderQwen      = "qwen"
	ProviderGemini    = "gemini"
	ProviderVertex    = "vertex"
)

// openAICompatibleURLs holds the default base URL of each OpenAI-compatible vendor.
var openAICompatibleURLs = map[string]string{
	ProviderOpenAI:    openai.DefaultBaseURL,
	ProviderFireworks: openai.FireworksBaseURL,
	ProviderDeepSeek:  openai.DeepSeekBaseURL,
	ProviderQwen:      openai.QwenBaseURL,
}

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}
	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(ctx, p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "pkg.llmprovider.InitializeProviders: %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	l.Infof(ctx, "pkg.llmprovider.InitializeProviders: using %s (%s), %d provider(s) available",
		providers[0].Name(), providers[0].Model(), len(providers))

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}
	name := strings.ToLower(cfg.Name)

	if defaultURL, ok := openAICompatibleURLs[name]; ok {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultURL
		}
		client, err := openai.New(openai.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: baseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", name, err)
		}
		return NewOpenAIAdapter(name, client), nil
	}

	switch name {
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
		}
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case ProviderVertex:
		client, err := vertex.New(ctx, vertex.Config{
			Project:  cfg.Project,
			Location: cfg.Location,
			Model:    cfg.Model,
			APIKey:   cfg.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create vertex client: %w", err)
		}
		return NewVertexAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}
