package llm

import (
	"testing"

	"github.com/mvoren/clauselens/internal/model"
)

func TestNewProvider_OpenAI(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "openai", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if provider.Name() != "openai" {
		t.Errorf("expected openai, got %s", provider.Name())
	}
}

func TestNewProvider_OpenAI_MissingKey(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestNewProvider_Anthropic(t *testing.T) {
	for _, name := range []string{"anthropic", "claude", "Anthropic"} {
		provider, err := NewProvider(Config{Provider: name, APIKey: "test-key"})
		if err != nil {
			t.Fatalf("provider %q: expected no error, got %v", name, err)
		}
		if provider.Name() != "anthropic" {
			t.Errorf("provider %q: expected anthropic, got %s", name, provider.Name())
		}
	}
}

func TestNewProvider_Ollama(t *testing.T) {
	provider, err := NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if provider.Name() != "ollama" {
		t.Errorf("expected ollama, got %s", provider.Name())
	}
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Fatalf("empty provider should not error, got %v", err)
	}
	if provider != nil {
		t.Error("empty provider should yield nil (generation disabled)")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "bard"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestConfigFromModel(t *testing.T) {
	cfg := ConfigFromModel(model.LLMConfig{
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		APIKey:    "key",
		Timeout:   15,
		MaxTokens: 2000,
	}, model.ProxyConfig{HTTP: "http://proxy:8080"})

	if cfg.Provider != "openai" || cfg.Model != "gpt-4o-mini" {
		t.Errorf("provider fields not carried: %+v", cfg)
	}
	if cfg.HTTPProxy != "http://proxy:8080" {
		t.Errorf("proxy not carried: %q", cfg.HTTPProxy)
	}
}
