package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4"

	// DefaultBaseURL is the OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// FireworksBaseURL is the Fireworks AI OpenAI-compatible endpoint
	FireworksBaseURL = "https://api.fireworks.ai/inference/v1"

	// DeepSeekBaseURL is the DeepSeek OpenAI-compatible endpoint
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	// QwenBaseURL is the DashScope OpenAI-compatible endpoint
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	responseFormatJSON = "json_object"
)
