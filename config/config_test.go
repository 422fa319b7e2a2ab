package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("TEST_INTAKE_KEY", "sk-from-env")

	path := writeConfig(t, `
http_server:
  port: 9090
routing:
  config_dir: /srv/intake
llm:
  timeout: 5s
  providers:
    - name: openai
      enabled: true
      priority: 1
      api_key: ${TEST_INTAKE_KEY}
      model: gpt-4
    - name: vertex
      enabled: false
      priority: 2
      project: my-project
      location: europe-west4
      model: gemini-2.5-flash
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "/srv/intake", cfg.Routing.ConfigDir)
	assert.Equal(t, "routing_rules.yaml", cfg.Routing.RulesFile)
	assert.Equal(t, "prompt_library.yaml", cfg.Routing.PromptsFile)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMin)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.InDelta(t, 0.1, cfg.LLM.Temperature, 1e-9)

	require.Len(t, cfg.LLM.Providers, 2)
	assert.Equal(t, "sk-from-env", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, "europe-west4", cfg.LLM.Providers[1].Location)
	assert.False(t, cfg.LLM.Providers[1].Enabled)
}

func TestLoadFile_ProviderFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-legacy")
	t.Setenv("LLM_PROVIDER", "fireworks")

	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	require.NoError(t, err)

	require.Len(t, cfg.LLM.Providers, 1)
	p := cfg.LLM.Providers[0]
	assert.Equal(t, "fireworks", p.Name)
	assert.Equal(t, "gpt-4", p.Model)
	assert.Equal(t, "sk-legacy", p.APIKey)
	assert.True(t, p.Enabled)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	t.Run("no providers", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "environment:\n  name: test\n"))
		assert.ErrorContains(t, err, "no LLM providers configured")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestValidateLLMConfig(t *testing.T) {
	base := func() LLMConfig {
		return LLMConfig{
			Timeout:     time.Second,
			Temperature: 0.1,
			Providers: []ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-4"},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*LLMConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*LLMConfig) {}},
		{name: "missing model", mutate: func(c *LLMConfig) { c.Providers[0].Model = "" }, wantErr: "model is required"},
		{name: "missing name", mutate: func(c *LLMConfig) { c.Providers[0].Name = "" }, wantErr: "name is required"},
		{name: "zero priority", mutate: func(c *LLMConfig) { c.Providers[0].Priority = 0 }, wantErr: "priority must be positive"},
		{name: "duplicate priority", mutate: func(c *LLMConfig) {
			c.Providers = append(c.Providers, ProviderConfig{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"})
		}, wantErr: "duplicate priority"},
		{name: "none enabled", mutate: func(c *LLMConfig) { c.Providers[0].Enabled = false }, wantErr: "no enabled LLM providers"},
		{name: "zero timeout", mutate: func(c *LLMConfig) { c.Timeout = 0 }, wantErr: "llm.timeout"},
		{name: "temperature out of range", mutate: func(c *LLMConfig) { c.Temperature = 3 }, wantErr: "llm.temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := validateLLMConfig(&cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRoutingConfigPaths(t *testing.T) {
	r := RoutingConfig{ConfigDir: "/srv/intake", RulesFile: "routing_rules.yaml", PromptsFile: "prompt_library.yaml"}
	assert.Equal(t, "/srv/intake/routing_rules.yaml", r.RulesPath())
	assert.Equal(t, "/srv/intake/prompt_library.yaml", r.PromptsPath())
}
