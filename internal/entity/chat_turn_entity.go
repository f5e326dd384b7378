package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies who authored a chat turn.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ParseChatRole accepts only the two known roles. Legacy "model" rows map to assistant.
func ParseChatRole(value string) (ChatRole, error) {
	switch value {
	case string(ChatRoleUser):
		return ChatRoleUser, nil
	case string(ChatRoleAssistant), "model":
		return ChatRoleAssistant, nil
	default:
		return "", fmt.Errorf("unknown chat role %q", value)
	}
}

type ChatTurn struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	Role                ChatRole
	Message             string
	Timestamp           time.Time
	TechniquesUsed      []TechniqueSnapshot
	CrisisResourcesUsed []CrisisResourceSnapshot
}

// NewChatTurn validates the invariants of a turn that is about to be saved.
func NewChatTurn(userId uuid.UUID, role ChatRole, message string, timestamp time.Time) (*ChatTurn, error) {
	if _, err := ParseChatRole(string(role)); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, fmt.Errorf("chat turn message is empty")
	}
	if userId == uuid.Nil {
		return nil, fmt.Errorf("chat turn has no owner")
	}
	return &ChatTurn{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      role,
		Message:   message,
		Timestamp: timestamp,
	}, nil
}

// TechniqueSnapshot is the denormalized copy of a technique as it was shown on a turn.
type TechniqueSnapshot struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Content      string    `json:"content"`
	Instructions string    `json:"instructions"`
	Similarity   float64   `json:"similarity"`
}

// CrisisResourceSnapshot is the denormalized copy of a crisis resource as it was shown on a turn.
type CrisisResourceSnapshot struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Website        string    `json:"website"`
	AvailableHours string    `json:"available_hours"`
}
