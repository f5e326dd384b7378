package service

import (
	"context"
	"strings"

	"mind-nest-be/internal/constant"
	"mind-nest-be/internal/dto"
	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/pkg/logger"
	"mind-nest-be/internal/repository/specification"
	"mind-nest-be/internal/repository/unitofwork"
	"mind-nest-be/pkg/rag/executor"

	"github.com/google/uuid"
)

type IChatService interface {
	// SendChat serves anonymous callers (userId nil) without persisting anything.
	SendChat(ctx context.Context, userId *uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, userId *uuid.UUID) ([]*dto.ChatHistoryItem, error)
	DeleteHistory(ctx context.Context, userId *uuid.UUID) (*dto.DeleteChatHistoryResponse, error)
}

// TurnProcessor runs the chat pipeline for one message.
type TurnProcessor interface {
	ProcessTurn(ctx context.Context, req executor.TurnRequest) (*executor.TurnResult, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	pipeline   TurnProcessor
	logger     logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, pipeline TurnProcessor, log logger.ILogger) IChatService {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &chatService{
		uowFactory: uowFactory,
		pipeline:   pipeline,
		logger:     log,
	}
}

func (s *chatService) SendChat(ctx context.Context, userId *uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	owner, err := s.resolveOwner(ctx, userId)
	if err != nil {
		// Lookup failure downgrades to an anonymous turn rather than failing the chat.
		s.logger.Warn("CHAT_SERVICE", "Failed to resolve chat owner", map[string]interface{}{
			"error": err.Error(),
		})
		owner = nil
	}

	var ownerId *uuid.UUID
	if owner != nil {
		ownerId = &owner.Id
	}

	result, err := s.pipeline.ProcessTurn(ctx, executor.TurnRequest{
		Message: strings.TrimSpace(req.Message),
		OwnerID: ownerId,
	})
	if err != nil {
		return nil, err
	}

	techniques := make([]dto.TechniqueDTO, 0, len(result.Techniques))
	for _, t := range result.Techniques {
		techniques = append(techniques, techniqueDTO(t.Snapshot()))
	}

	resources := make([]dto.CrisisResourceDTO, 0, len(result.CrisisResources))
	for _, r := range result.CrisisResources {
		resources = append(resources, crisisResourceDTO(r))
	}

	return &dto.SendChatResponse{
		Response:        result.Response,
		Severity:        result.Severity.String(),
		Language:        result.Language.String(),
		Techniques:      techniques,
		CrisisResources: resources,
		Quotes:          result.Quotes,
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, userId *uuid.UUID) ([]*dto.ChatHistoryItem, error) {
	result := make([]*dto.ChatHistoryItem, 0)

	owner, err := s.resolveOwner(ctx, userId)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return result, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	turns, err := uow.ChatTurnRepository().FindRecentByUserId(ctx, owner.Id, constant.ChatHistoryLimit)
	if err != nil {
		return nil, err
	}

	for _, turn := range turns {
		item := &dto.ChatHistoryItem{
			Id:              turn.Id,
			Text:            turn.Message,
			IsUser:          turn.Role == entity.ChatRoleUser,
			Role:            string(turn.Role),
			Timestamp:       turn.Timestamp,
			TimeLabel:       turn.Timestamp.Format("03:04 PM"),
			Techniques:      make([]dto.TechniqueDTO, 0, len(turn.TechniquesUsed)),
			CrisisResources: make([]dto.CrisisResourceDTO, 0, len(turn.CrisisResourcesUsed)),
		}
		for _, t := range turn.TechniquesUsed {
			item.Techniques = append(item.Techniques, techniqueDTO(t))
		}
		for _, r := range turn.CrisisResourcesUsed {
			item.CrisisResources = append(item.CrisisResources, dto.CrisisResourceDTO{
				Id:             r.Id,
				Name:           r.Name,
				Phone:          r.Phone,
				Website:        r.Website,
				AvailableHours: r.AvailableHours,
			})
		}
		result = append(result, item)
	}

	return result, nil
}

func (s *chatService) DeleteHistory(ctx context.Context, userId *uuid.UUID) (*dto.DeleteChatHistoryResponse, error) {
	if userId == nil {
		return nil, ErrUnauthorized
	}

	owner, err := s.resolveOwner(ctx, userId)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	deleted, err := uow.ChatTurnRepository().DeleteAllByUserId(ctx, owner.Id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("CHAT_SERVICE", "Chat history deleted", map[string]interface{}{
		"user_id": owner.Id.String(),
		"deleted": deleted,
	})
	return &dto.DeleteChatHistoryResponse{Deleted: deleted}, nil
}

// resolveOwner returns nil, nil for anonymous callers and for ids with no user row.
func (s *chatService) resolveOwner(ctx context.Context, userId *uuid.UUID) (*entity.User, error) {
	if userId == nil {
		return nil, nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
}

func techniqueDTO(t entity.TechniqueSnapshot) dto.TechniqueDTO {
	return dto.TechniqueDTO{
		Id:           t.Id,
		Title:        t.Title,
		Category:     t.Category,
		Content:      t.Content,
		Instructions: t.Instructions,
		Similarity:   t.Similarity,
	}
}

func crisisResourceDTO(r *entity.CrisisResource) dto.CrisisResourceDTO {
	return dto.CrisisResourceDTO{
		Id:             r.Id,
		Name:           r.Name,
		Country:        r.Country,
		Phone:          r.Phone,
		Website:        r.Website,
		Description:    r.Description,
		AvailableHours: r.AvailableHours,
		Language:       r.Language,
	}
}
