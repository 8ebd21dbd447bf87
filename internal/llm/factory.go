package llm

import (
	"fmt"
	"strings"

	"github.com/mvoren/clauselens/internal/model"
)

// NewProvider creates a new text generation provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - return nil (generation disabled,
		// heuristic engine handles analysis)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown generation provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig, proxy model.ProxyConfig) Config {
	return Config{
		Provider:   modelConfig.Provider,
		Model:      modelConfig.Model,
		APIKey:     modelConfig.APIKey,
		BaseURL:    modelConfig.BaseURL,
		Timeout:    modelConfig.Timeout,
		MaxTokens:  modelConfig.MaxTokens,
		HTTPProxy:  proxy.HTTP,
		HTTPSProxy: proxy.HTTPS,
		NoProxy:    proxy.NoProxy,
	}
}
