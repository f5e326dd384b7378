package service

import (
	"context"
	"fmt"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/repository/unitofwork"
	"mind-nest-be/pkg/rag/executor"
)

// turnRecorder writes the user and assistant turns in one transaction.
type turnRecorder struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTurnRecorder(uowFactory unitofwork.RepositoryFactory) executor.TurnRecorder {
	return &turnRecorder{uowFactory: uowFactory}
}

func (r *turnRecorder) RecordTurn(ctx context.Context, record *executor.TurnRecord) (err error) {
	userTurn, err := entity.NewChatTurn(record.OwnerID, entity.ChatRoleUser, record.UserMessage, record.UserAt)
	if err != nil {
		return fmt.Errorf("build user turn: %w", err)
	}
	assistantTurn, err := entity.NewChatTurn(record.OwnerID, entity.ChatRoleAssistant, record.AssistantMessage, record.AssistantAt)
	if err != nil {
		return fmt.Errorf("build assistant turn: %w", err)
	}

	assistantTurn.TechniquesUsed = make([]entity.TechniqueSnapshot, 0, len(record.Techniques))
	for _, t := range record.Techniques {
		assistantTurn.TechniquesUsed = append(assistantTurn.TechniquesUsed, t.Snapshot())
	}
	assistantTurn.CrisisResourcesUsed = make([]entity.CrisisResourceSnapshot, 0, len(record.CrisisResources))
	for _, c := range record.CrisisResources {
		assistantTurn.CrisisResourcesUsed = append(assistantTurn.CrisisResourcesUsed, c.Snapshot())
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = uow.Rollback()
		}
	}()

	if err = uow.ChatTurnRepository().CreateBulk(ctx, []*entity.ChatTurn{userTurn, assistantTurn}); err != nil {
		return err
	}
	return uow.Commit()
}
