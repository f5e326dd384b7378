package implementation

import (
	"context"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/mapper"
	"mind-nest-be/internal/model"
	"mind-nest-be/internal/repository/contract"
	"mind-nest-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CrisisResourceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CrisisResourceMapper
}

func NewCrisisResourceRepository(db *gorm.DB) contract.CrisisResourceRepository {
	return &CrisisResourceRepositoryImpl{
		db:     db,
		mapper: mapper.NewCrisisResourceMapper(),
	}
}

func (r *CrisisResourceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CrisisResourceRepositoryImpl) Create(ctx context.Context, resource *entity.CrisisResource) error {
	m := r.mapper.ToModel(resource)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*resource = *r.mapper.ToEntity(m)
	return nil
}

func (r *CrisisResourceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CrisisResource, error) {
	var models []*model.CrisisResource
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CrisisResource, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *CrisisResourceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CrisisResource{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
