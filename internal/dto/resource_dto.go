package dto

import "github.com/google/uuid"

type CrisisResourceDTO struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Country        string    `json:"country,omitempty"`
	Phone          string    `json:"phone"`
	Website        string    `json:"website"`
	Description    string    `json:"description,omitempty"`
	AvailableHours string    `json:"available_hours"`
	Language       string    `json:"language,omitempty"`
}
