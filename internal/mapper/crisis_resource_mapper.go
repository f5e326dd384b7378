package mapper

import (
	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/model"
)

type CrisisResourceMapper struct{}

func NewCrisisResourceMapper() *CrisisResourceMapper {
	return &CrisisResourceMapper{}
}

func (m *CrisisResourceMapper) ToEntity(c *model.CrisisResource) *entity.CrisisResource {
	if c == nil {
		return nil
	}
	return &entity.CrisisResource{
		Id:             c.Id,
		Name:           c.Name,
		Country:        c.Country,
		Phone:          c.Phone,
		Website:        c.Website,
		Description:    c.Description,
		AvailableHours: c.AvailableHours,
		CompanyLang:    c.CompanyLang,
		Language:       c.Language,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *CrisisResourceMapper) ToModel(c *entity.CrisisResource) *model.CrisisResource {
	if c == nil {
		return nil
	}
	return &model.CrisisResource{
		Id:             c.Id,
		Name:           c.Name,
		Country:        c.Country,
		Phone:          c.Phone,
		Website:        c.Website,
		Description:    c.Description,
		AvailableHours: c.AvailableHours,
		CompanyLang:    c.CompanyLang,
		Language:       c.Language,
		CreatedAt:      c.CreatedAt,
	}
}
