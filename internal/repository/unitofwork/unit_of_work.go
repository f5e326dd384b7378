package unitofwork

import (
	"context"

	"mind-nest-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatTurnRepository() contract.ChatTurnRepository
	TechniqueRepository() contract.TechniqueRepository
	CrisisResourceRepository() contract.CrisisResourceRepository
}
