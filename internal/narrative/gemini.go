package narrative

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiNarrator implements Narrator on the Google Gemini API.
type GeminiNarrator struct {
	client      *genai.Client
	model       string
	temperature float32
}

var _ Narrator = (*GeminiNarrator)(nil)

// NewGeminiNarrator creates a narrator for the given model and sampling
// temperature.
func NewGeminiNarrator(ctx context.Context, apiKey, model string, temperature float64) (*GeminiNarrator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiNarrator{client: client, model: model, temperature: float32(temperature)}, nil
}

// Generate runs one completion with the given system instruction and length
// cap.
func (g *GeminiNarrator) Generate(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: int32(maxTokens),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	return resp.Text(), nil
}
