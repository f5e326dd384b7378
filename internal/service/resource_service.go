package service

import (
	"context"

	"mind-nest-be/internal/dto"
	"mind-nest-be/internal/repository/specification"
	"mind-nest-be/internal/repository/unitofwork"
	"mind-nest-be/pkg/rag/language"
	"mind-nest-be/pkg/rag/search"
)

type IResourceService interface {
	GetResources(ctx context.Context, lang string) ([]*dto.CrisisResourceDTO, error)
}

type resourceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewResourceService(uowFactory unitofwork.RepositoryFactory) IResourceService {
	return &resourceService{uowFactory: uowFactory}
}

// GetResources defaults to English. Unknown codes fail with language.ErrUnsupported.
func (s *resourceService) GetResources(ctx context.Context, lang string) ([]*dto.CrisisResourceDTO, error) {
	code := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, err
		}
		code = parsed
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	resources, err := uow.CrisisResourceRepository().FindAll(ctx, specification.ByLanguage{Language: code.String()})
	if err != nil {
		return nil, err
	}
	search.SortAroundTheClockFirst(resources)

	result := make([]*dto.CrisisResourceDTO, 0, len(resources))
	for _, r := range resources {
		item := crisisResourceDTO(r)
		result = append(result, &item)
	}
	return result, nil
}
