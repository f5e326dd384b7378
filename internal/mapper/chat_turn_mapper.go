package mapper

import (
	"encoding/json"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/model"

	"gorm.io/datatypes"
)

type ChatTurnMapper struct{}

func NewChatTurnMapper() *ChatTurnMapper {
	return &ChatTurnMapper{}
}

func (m *ChatTurnMapper) ToEntity(t *model.ChatTurn) *entity.ChatTurn {
	if t == nil {
		return nil
	}

	role, err := entity.ParseChatRole(t.Role)
	if err != nil {
		// Unknown rows are surfaced as assistant output rather than dropped.
		role = entity.ChatRoleAssistant
	}

	techniques := make([]entity.TechniqueSnapshot, 0)
	if len(t.TechniquesUsed) > 0 {
		_ = json.Unmarshal(t.TechniquesUsed, &techniques)
	}

	resources := make([]entity.CrisisResourceSnapshot, 0)
	if len(t.CrisisResourcesUsed) > 0 {
		_ = json.Unmarshal(t.CrisisResourcesUsed, &resources)
	}

	return &entity.ChatTurn{
		Id:                  t.Id,
		UserId:              t.UserId,
		Role:                role,
		Message:             t.Message,
		Timestamp:           t.SentAt,
		TechniquesUsed:      techniques,
		CrisisResourcesUsed: resources,
	}
}

func (m *ChatTurnMapper) ToModel(t *entity.ChatTurn) *model.ChatTurn {
	if t == nil {
		return nil
	}
	return &model.ChatTurn{
		Id:                  t.Id,
		UserId:              t.UserId,
		Role:                string(t.Role),
		Message:             t.Message,
		SentAt:              t.Timestamp,
		TechniquesUsed:      toJSON(t.TechniquesUsed),
		CrisisResourcesUsed: toJSON(t.CrisisResourcesUsed),
	}
}

// toJSON never stores NULL; an absent list is written as [].
func toJSON[T any](items []T) datatypes.JSON {
	if len(items) == 0 {
		return datatypes.JSON("[]")
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
