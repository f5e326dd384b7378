package search

import (
	"context"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/pkg/logger"
	"mind-nest-be/internal/repository/contract"
	"mind-nest-be/pkg/rag/language"
)

const (
	DefaultThreshold = 0.35
	DefaultCount     = 4
)

// TechniqueRetriever runs the similarity search over coping techniques.
type TechniqueRetriever struct {
	repo       contract.TechniqueRepository
	dimensions int
	logger     logger.ILogger
}

func NewTechniqueRetriever(repo contract.TechniqueRepository, dimensions int, log logger.ILogger) *TechniqueRetriever {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &TechniqueRetriever{
		repo:       repo,
		dimensions: dimensions,
		logger:     log,
	}
}

// Retrieve returns techniques in descending similarity, never below threshold and never
// more than count. Failures and malformed vectors yield an empty list.
func (r *TechniqueRetriever) Retrieve(ctx context.Context, vector []float32, lang language.Code, threshold float64, count int) []*entity.ScoredTechnique {
	if count <= 0 {
		count = DefaultCount
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if len(vector) == 0 || (r.dimensions > 0 && len(vector) != r.dimensions) {
		r.logger.Warn("RETRIEVAL", "Malformed query vector", map[string]interface{}{
			"length": len(vector),
		})
		return []*entity.ScoredTechnique{}
	}

	results, err := r.repo.SearchSimilarWithScore(ctx, vector, lang.String(), threshold, count)
	if err != nil {
		r.logger.Error("RETRIEVAL", "Technique search failed", map[string]interface{}{
			"error":    err.Error(),
			"language": lang.String(),
		})
		return []*entity.ScoredTechnique{}
	}

	// Enforce the contract even if the store ignores part of the query.
	filtered := make([]*entity.ScoredTechnique, 0, len(results))
	for _, res := range results {
		if res == nil || res.Technique == nil || res.Similarity < threshold {
			continue
		}
		filtered = append(filtered, res)
		if len(filtered) == count {
			break
		}
	}

	r.logger.Debug("RETRIEVAL", "Techniques retrieved", map[string]interface{}{
		"count":    len(filtered),
		"language": lang.String(),
	})
	return filtered
}
