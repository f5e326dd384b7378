package model

import (
	"time"

	"github.com/google/uuid"
)

type CrisisResource struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Country        string    `gorm:"type:varchar(100)"`
	Phone          string    `gorm:"type:varchar(100)"`
	Website        string    `gorm:"type:varchar(255)"`
	Description    string    `gorm:"type:text"`
	AvailableHours string    `gorm:"type:varchar(100)"`
	CompanyLang    string    `gorm:"type:varchar(100)"`
	Language       string    `gorm:"type:varchar(8);not null;default:'en';index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (CrisisResource) TableName() string {
	return "crisis_resources"
}
