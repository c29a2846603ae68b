// File path: internal/llm/llm_test.go
package llm

import (
	"context"
	"testing"
)

func TestNewProviderFallsBackToLocal(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	provider := NewProvider(context.Background())
	if provider.Name() != "local" {
		t.Fatalf("expected local provider, got %q", provider.Name())
	}
}

func TestNewProviderSelectsOpenAI(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_HTTP_TIMEOUT", "30s")

	provider := NewProvider(context.Background())
	if provider.Name() != "openai" {
		t.Fatalf("expected openai provider, got %q", provider.Name())
	}
}
