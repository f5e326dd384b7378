package contract

import (
	"context"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/repository/specification"
)

type CrisisResourceRepository interface {
	Create(ctx context.Context, resource *entity.CrisisResource) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CrisisResource, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
