package mapper

import (
	"encoding/json"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type TechniqueMapper struct{}

func NewTechniqueMapper() *TechniqueMapper {
	return &TechniqueMapper{}
}

func (m *TechniqueMapper) ToEntity(t *model.Technique) *entity.Technique {
	if t == nil {
		return nil
	}

	symptoms := make([]string, 0)
	if len(t.TargetSymptoms) > 0 {
		_ = json.Unmarshal(t.TargetSymptoms, &symptoms)
	}

	return &entity.Technique{
		Id:             t.Id,
		Title:          t.Title,
		Category:       t.Category,
		TargetSymptoms: symptoms,
		Content:        t.Content,
		Instructions:   t.Instructions,
		WhenToUse:      t.WhenToUse,
		Language:       t.Language,
		Embedding:      t.Embedding.Slice(),
		EmbeddingText:  t.EmbeddingText,
		Source:         t.Source,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *TechniqueMapper) ToModel(t *entity.Technique) *model.Technique {
	if t == nil {
		return nil
	}
	return &model.Technique{
		Id:             t.Id,
		Title:          t.Title,
		Category:       t.Category,
		TargetSymptoms: toJSON(t.TargetSymptoms),
		Content:        t.Content,
		Instructions:   t.Instructions,
		WhenToUse:      t.WhenToUse,
		Language:       t.Language,
		Embedding:      pgvector.NewVector(t.Embedding),
		EmbeddingText:  t.EmbeddingText,
		Source:         t.Source,
		CreatedAt:      t.CreatedAt,
	}
}
