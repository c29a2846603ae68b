// File path: internal/llm/providers/local_test.go
package providers

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLocalProviderReturnsFencedJSON(t *testing.T) {
	provider := NewLocalProvider()
	response, err := provider.Chat(context.Background(), []Message{
		{Role: "user", Content: "generate the handover"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(response, "```json\n") || !strings.HasSuffix(response, "\n```") {
		t.Fatalf("response not fenced:\n%s", response)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(response, "```json\n"), "\n```")
	var decoded map[string]any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		t.Fatalf("fenced body is not JSON: %v", err)
	}
	for _, key := range []string{"shiftSummary", "criticalAlarms", "openIssues", "recommendedActions", "questions"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing key %q: %s", key, body)
		}
	}
}

func TestLocalProviderTruncatesExcerpt(t *testing.T) {
	provider := NewLocalProvider()
	long := strings.Repeat("x", 500)
	response, err := provider.Chat(context.Background(), []Message{{Role: "user", Content: long}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(response, strings.Repeat("x", 120)+"...") {
		t.Fatal("excerpt not truncated")
	}
	if strings.Contains(response, strings.Repeat("x", 121)) {
		t.Fatal("excerpt longer than the cap")
	}
}

func TestLocalProviderRequiresMessages(t *testing.T) {
	provider := NewLocalProvider()
	if _, err := provider.Chat(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty message list")
	}
}
