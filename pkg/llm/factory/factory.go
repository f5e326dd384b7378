package factory

import (
	"context"
	"fmt"

	"mind-nest-be/pkg/llm"
	"mind-nest-be/pkg/llm/gemini"
	"mind-nest-be/pkg/llm/ollama"
)

// NewLLMProvider builds the text-generation backend named by providerType.
func NewLLMProvider(ctx context.Context, providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini", "":
		provider, err := gemini.NewGeminiProvider(ctx, apiKey, modelName)
		if err != nil {
			return nil, err
		}
		return provider, nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
