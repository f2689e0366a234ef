package chat

import (
	"context"
	"net/http"
	"sync"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-1.5-flash"

// GeminiGenerator calls the Gemini API. One genai client is kept per API key.
type GeminiGenerator struct {
	model      string
	httpClient *http.Client
	baseURL    string

	mu      sync.Mutex
	clients map[string]*genai.Client
}

// NewGeminiGenerator returns a generator for model. A nil httpClient uses
// the genai default.
func NewGeminiGenerator(model string, httpClient *http.Client) *GeminiGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{
		model:      model,
		httpClient: httpClient,
		clients:    make(map[string]*genai.Client),
	}
}

func (g *GeminiGenerator) Generate(ctx context.Context, apiKey, text string) (string, error) {
	c, err := g.client(ctx, apiKey)
	if err != nil {
		return "", err
	}

	resp, err := c.Models.GenerateContent(ctx, g.model, genai.Text(text), nil)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

func (g *GeminiGenerator) client(ctx context.Context, apiKey string) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.clients[apiKey]; ok {
		return c, nil
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
	}
	if g.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	g.clients[apiKey] = c
	return c, nil
}
