package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Technique struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title          string          `gorm:"type:varchar(255);not null"`
	Category       string          `gorm:"type:varchar(100);index"`
	TargetSymptoms datatypes.JSON  `gorm:"type:jsonb"`
	Content        string          `gorm:"type:text"`
	Instructions   string          `gorm:"type:text"`
	WhenToUse      string          `gorm:"type:text"`
	Language       string          `gorm:"type:varchar(8);not null;default:'en';index"`
	Embedding      pgvector.Vector `gorm:"type:vector(768)"` // gemini-embedding-001 truncated to 768 dimensions
	EmbeddingText  string          `gorm:"type:text"`
	Source         string          `gorm:"type:varchar(255)"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (Technique) TableName() string {
	return "techniques"
}
