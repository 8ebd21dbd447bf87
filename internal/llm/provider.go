package llm

import "context"

// Provider defines the interface for text generation capabilities
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate produces text for a prompt. The output is untrusted and must
	// be validated (and, for JSON, repaired) by the caller before use.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// GenerateRequest contains the input for a text generation call
type GenerateRequest struct {
	// System sets the assistant's role for the call
	System string

	// Prompt is the full user prompt
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls sampling; analysis calls keep it low
	Temperature float32
}

// GenerateResponse contains the provider's raw output
type GenerateResponse struct {
	// Text is the generated text, trimmed of surrounding whitespace
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds text generation provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama or OpenAI-compatible proxies)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 4000,
	}
}
