package contract

import (
	"context"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
}
