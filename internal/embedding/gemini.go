package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultEmbedModel = "text-embedding-004"

// ErrUnavailable signals that no embedding backend is loaded for this call.
var ErrUnavailable = errors.New("embedding backend unavailable")

// Gemini produces embeddings through the Gemini API. The client is read-only
// after construction and safe for concurrent use.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini embedding backend. An empty API key is an error
// so a missing key surfaces as "unavailable" at load time instead of failing
// on every Embed call.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultEmbedModel
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Available() bool {
	return g != nil && g.client != nil
}

func (g *Gemini) Embed(ctx context.Context, text string) ([]float32, error) {
	if !g.Available() {
		return nil, ErrUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	resp, err := g.client.Models.EmbedContent(ctx, g.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil {
		return nil, errors.New("empty embedding response")
	}
	return resp.Embeddings[0].Values, nil
}
