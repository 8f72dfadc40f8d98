package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/video-brief/internal/config"
	"github.com/nguyentantai21042004/video-brief/internal/logger"
)

// contentGenerator is the subset of *genai.Models the client needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// New builds one genai client per configured API key. It is meant to be
// called once at startup and the result shared by every handler.
func New(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (Client, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, errors.New("gemini: no API keys configured")
	}

	gens := make([]contentGenerator, 0, len(cfg.APIKeys))
	for i, key := range cfg.APIKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create client for key %d: %w", i+1, err)
		}
		gens = append(gens, client.Models)
	}

	return newWithGenerators(cfg.Model, gens, log), nil
}

func newWithGenerators(model string, gens []contentGenerator, log logger.Logger) *implClient {
	return &implClient{
		model:      model,
		generators: gens,
		logger:     log,
	}
}
