package implementation

import (
	"context"
	"fmt"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/mapper"
	"mind-nest-be/internal/model"
	"mind-nest-be/internal/repository/contract"
	"mind-nest-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type TechniqueRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TechniqueMapper
}

func NewTechniqueRepository(db *gorm.DB) contract.TechniqueRepository {
	return &TechniqueRepositoryImpl{
		db:     db,
		mapper: mapper.NewTechniqueMapper(),
	}
}

func (r *TechniqueRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TechniqueRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Technique, error) {
	var models []*model.Technique
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Technique, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

// SearchSimilarWithScore returns techniques with similarity scores, filtered by threshold
func (r *TechniqueRepositoryImpl) SearchSimilarWithScore(
	ctx context.Context,
	embedding []float32,
	language string,
	threshold float64,
	limit int,
) ([]*entity.ScoredTechnique, error) {
	if len(embedding) == 0 {
		return nil, fmt.Errorf("empty query vector")
	}
	if limit <= 0 {
		limit = 4
	}

	// Cosine distance in pgvector is: 1 - cosine_similarity
	// So we compute: 1 - (embedding <=> query_vector) = cosine_similarity
	type result struct {
		model.Technique
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("techniques").
		Select("techniques.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("language = ?", language).
		Where("embedding IS NOT NULL").
		Where("1 - (embedding <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*entity.ScoredTechnique, len(results))
	for i, res := range results {
		scored[i] = &entity.ScoredTechnique{
			Technique:  r.mapper.ToEntity(&res.Technique),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}

func (r *TechniqueRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Technique{}).Count(&count).Error
	return count, err
}
