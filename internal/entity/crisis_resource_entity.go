package entity

import (
	"time"

	"github.com/google/uuid"
)

type CrisisResource struct {
	Id             uuid.UUID
	Name           string
	Country        string
	Phone          string
	Website        string
	Description    string
	AvailableHours string
	CompanyLang    string
	Language       string
	CreatedAt      time.Time
}

func (c *CrisisResource) Snapshot() CrisisResourceSnapshot {
	return CrisisResourceSnapshot{
		Id:             c.Id,
		Name:           c.Name,
		Phone:          c.Phone,
		Website:        c.Website,
		AvailableHours: c.AvailableHours,
	}
}
