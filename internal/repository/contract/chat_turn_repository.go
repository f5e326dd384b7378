package contract

import (
	"context"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatTurnRepository interface {
	Create(ctx context.Context, turn *entity.ChatTurn) error
	CreateBulk(ctx context.Context, turns []*entity.ChatTurn) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) (int64, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error)
	// FindRecentByUserId returns the newest limit turns, oldest first.
	FindRecentByUserId(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ChatTurn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
