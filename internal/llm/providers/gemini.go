// File path: internal/llm/providers/gemini.go
package providers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/opsrelay/handover/internal/common"
)

type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	model := strings.TrimSpace(os.Getenv("HANDOVER_GEMINI_MODEL"))
	if model == "" {
		model = "gemini-2.0-flash"
	}
	logger := common.Logger()
	logger.Info("llm: Gemini provider configured", "model", model)
	return &GeminiProvider{client: client, model: model}, nil
}

func (g *GeminiProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}
	logger := common.Logger()
	logger.Debug("llm: sending generate content request", "model", g.model, "messages", len(messages))
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		contents = append(contents, genai.NewContentFromText(msg.Content, geminiRole(msg.Role)))
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		logger.Error("llm: generate content failed", "error", err)
		return "", err
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty model response")
	}
	logger.Debug("llm: generate content succeeded", "chars", len(text))
	return text, nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

// geminiRole maps the provider-neutral role label onto the typed genai
// role; assistant turns become model turns, everything else is user input.
func geminiRole(role string) genai.Role {
	if strings.ToLower(role) == "assistant" {
		return genai.RoleModel
	}
	return genai.RoleUser
}
