// File path: internal/llm/providers/local.go
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type Message struct {
	Role    string
	Content string
}

type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
}

// LocalProvider is the development fallback used when no model API key is
// configured. It returns a deterministic, schema-valid response so the rest
// of the pipeline can be exercised end to end.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}
	last := strings.TrimSpace(messages[len(messages)-1].Content)
	excerpt := last
	if len(excerpt) > 120 {
		excerpt = excerpt[:120] + "..."
	}
	stub := map[string]any{
		"shiftSummary": []string{
			"No model provider configured; returning stub handover",
			"Prompt excerpt: " + excerpt,
		},
		"criticalAlarms":     []any{},
		"openIssues":         []any{},
		"recommendedActions": []string{"Configure GEMINI_API_KEY or OPENAI_API_KEY"},
		"questions":          []string{},
	}
	encoded, err := json.Marshal(stub)
	if err != nil {
		return "", err
	}
	return "```json\n" + string(encoded) + "\n```", nil
}

func (l *LocalProvider) Name() string {
	return "local"
}
