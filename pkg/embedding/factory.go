package embedding

import (
	"context"
	"fmt"
)

// NewEmbeddingProvider builds the embedding backend named by providerType.
func NewEmbeddingProvider(ctx context.Context, providerType, model, baseURL, apiKey string, dimensions int) (EmbeddingProvider, error) {
	switch providerType {
	case "gemini", "":
		return NewGeminiProvider(ctx, apiKey, model, dimensions)
	case "ollama":
		return NewOllamaProvider(baseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", providerType)
	}
}
