package entity

import (
	"time"

	"github.com/google/uuid"
)

type Technique struct {
	Id             uuid.UUID
	Title          string
	Category       string
	TargetSymptoms []string
	Content        string
	Instructions   string
	WhenToUse      string
	Language       string
	Embedding      []float32
	EmbeddingText  string
	Source         string
	CreatedAt      time.Time
}

type ScoredTechnique struct {
	Technique  *Technique
	Similarity float64
}

func (s *ScoredTechnique) Snapshot() TechniqueSnapshot {
	return TechniqueSnapshot{
		Id:           s.Technique.Id,
		Title:        s.Technique.Title,
		Category:     s.Technique.Category,
		Content:      s.Technique.Content,
		Instructions: s.Technique.Instructions,
		Similarity:   s.Similarity,
	}
}
