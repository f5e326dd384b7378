package contract

import (
	"context"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/repository/specification"
)

type TechniqueRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Technique, error)
	// SearchSimilarWithScore ranks techniques of one language by cosine similarity,
	// dropping rows below threshold.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, language string, threshold float64, limit int) ([]*entity.ScoredTechnique, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
