package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Intake routing
	Routing   RoutingConfig
	RateLimit RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Patient chat intake (optional)
	Telegram TelegramConfig

	// Observability
	Tracing TracingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RoutingConfig locates the routing rules and prompt library documents.
type RoutingConfig struct {
	ConfigDir   string
	RulesFile   string
	PromptsFile string
}

// RulesPath is the routing rules document inside ConfigDir.
func (r RoutingConfig) RulesPath() string {
	return filepath.Join(r.ConfigDir, r.RulesFile)
}

// PromptsPath is the prompt library document inside ConfigDir.
func (r RoutingConfig) PromptsPath() string {
	return filepath.Join(r.ConfigDir, r.PromptsFile)
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// TelegramConfig enables the chat intake channel when BotToken is set.
type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

type TracingConfig struct {
	Enabled     bool
	ServiceName string
	Exporter    string // "stdout" or "otlp"
	Endpoint    string
	Insecure    bool
	SampleRatio float64
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers   []ProviderConfig
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string

	// Vertex AI only
	Project  string
	Location string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory, if present, is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Routing documents
	cfg.Routing.ConfigDir = v.GetString("routing.config_dir")
	cfg.Routing.RulesFile = v.GetString("routing.rules_file")
	cfg.Routing.PromptsFile = v.GetString("routing.prompts_file")
	if dir := v.GetString("intake_config_dir"); dir != "" {
		cfg.Routing.ConfigDir = dir
	}

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = v.GetString("telegram.secret_token")

	// Tracing
	cfg.Tracing.Enabled = v.GetBool("tracing.enabled")
	cfg.Tracing.ServiceName = v.GetString("tracing.service_name")
	cfg.Tracing.Exporter = v.GetString("tracing.exporter")
	cfg.Tracing.Endpoint = v.GetString("tracing.endpoint")
	cfg.Tracing.Insecure = v.GetBool("tracing.insecure")
	cfg.Tracing.SampleRatio = v.GetFloat64("tracing.sample_ratio")

	// LLM Provider Abstraction
	cfg.LLM.Timeout = v.GetDuration("llm.timeout")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Project:  expandEnvVar(v, getStringFromMap(providerMap, "project")),
					Location: getStringFromMap(providerMap, "location"),
				})
			}
		}
	}

	// Older deployments only set OPENAI_API_KEY and LLM_PROVIDER.
	if len(cfg.LLM.Providers) == 0 {
		if p, ok := providerFromEnv(v); ok {
			cfg.LLM.Providers = append(cfg.LLM.Providers, p)
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("routing.config_dir", "config")
	v.SetDefault("routing.rules_file", "routing_rules.yaml")
	v.SetDefault("routing.prompts_file", "prompt_library.yaml")
	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "patient-intake-router")
	v.SetDefault("tracing.exporter", "stdout")
	v.SetDefault("tracing.sample_ratio", 1.0)

	// LLM defaults
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.max_tokens", 1024)
}

// providerFromEnv builds a single provider from OPENAI_API_KEY, LLM_PROVIDER and LLM_MODEL.
func providerFromEnv(v *viper.Viper) (ProviderConfig, bool) {
	apiKey := v.GetString("openai_api_key")
	if apiKey == "" {
		return ProviderConfig{}, false
	}

	name := strings.ToLower(v.GetString("llm_provider"))
	if name == "" {
		name = "openai"
	}
	model := v.GetString("llm_model")
	if model == "" {
		model = "gpt-4"
	}

	return ProviderConfig{
		Name:     name,
		Enabled:  true,
		Priority: 1,
		APIKey:   apiKey,
		Model:    model,
	}, true
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml or set OPENAI_API_KEY")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
