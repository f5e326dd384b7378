package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type TechniqueDTO struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Content      string    `json:"content"`
	Instructions string    `json:"instructions"`
	Similarity   float64   `json:"similarity"`
}

type SendChatResponse struct {
	Response        string              `json:"response"`
	Severity        string              `json:"severity"`
	Language        string              `json:"language"`
	Techniques      []TechniqueDTO      `json:"techniques"`
	CrisisResources []CrisisResourceDTO `json:"crisis_resources"`
	Quotes          []string            `json:"quotes"`
}

type ChatHistoryItem struct {
	Id              uuid.UUID           `json:"id"`
	Text            string              `json:"text"`
	IsUser          bool                `json:"isUser"`
	Role            string              `json:"role"`
	Timestamp       time.Time           `json:"timestamp"`
	TimeLabel       string              `json:"time_label"`
	Techniques      []TechniqueDTO      `json:"techniques"`
	CrisisResources []CrisisResourceDTO `json:"crisis_resources"`
}

type DeleteChatHistoryResponse struct {
	Deleted int64 `json:"deleted"`
}
