package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatTurn ids are assigned by the application so that the schema stays portable.
type ChatTurn struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId              uuid.UUID      `gorm:"type:uuid;not null;index:idx_chat_turns_user_sent,priority:1"`
	User                *User          `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Role                string         `gorm:"type:varchar(16);not null"`
	Message             string         `gorm:"type:text;not null"`
	SentAt              time.Time      `gorm:"not null;index:idx_chat_turns_user_sent,priority:2"`
	TechniquesUsed      datatypes.JSON `gorm:"type:jsonb"`
	CrisisResourcesUsed datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
}

func (ChatTurn) TableName() string {
	return "chat_turns"
}
