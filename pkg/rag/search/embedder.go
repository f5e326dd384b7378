package search

import (
	"context"

	"mind-nest-be/internal/pkg/logger"
	"mind-nest-be/pkg/embedding"
)

// QueryEmbedder turns a user message into a query vector.
// An empty slice is the failure sentinel.
type QueryEmbedder struct {
	provider   embedding.EmbeddingProvider
	dimensions int
	logger     logger.ILogger
}

func NewQueryEmbedder(provider embedding.EmbeddingProvider, dimensions int, log logger.ILogger) *QueryEmbedder {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &QueryEmbedder{
		provider:   provider,
		dimensions: dimensions,
		logger:     log,
	}
}

func (e *QueryEmbedder) Embed(ctx context.Context, text string) []float32 {
	res, err := e.provider.Generate(ctx, text, embedding.TaskRetrievalQuery)
	if err != nil {
		e.logger.Error("EMBEDDING", "Embedding generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return []float32{}
	}
	if res == nil || len(res.Values) == 0 {
		e.logger.Error("EMBEDDING", "Embedding provider returned no values", nil)
		return []float32{}
	}
	if e.dimensions > 0 && len(res.Values) != e.dimensions {
		e.logger.Error("EMBEDDING", "Embedding dimensionality mismatch", map[string]interface{}{
			"expected": e.dimensions,
			"actual":   len(res.Values),
		})
		return []float32{}
	}
	return res.Values
}
