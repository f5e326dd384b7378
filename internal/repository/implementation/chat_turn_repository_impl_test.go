package implementation

import (
	"context"
	"testing"
	"time"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo interface {
	Create(ctx context.Context, user *entity.User) error
}) *entity.User {
	t.Helper()
	user := &entity.User{
		Id:       uuid.New(),
		Email:    "user-" + uuid.NewString() + "@example.com",
		FullName: "Test User",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestChatTurnRoundTripOrdering(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewChatTurnRepository(db)

	owner := seedUser(t, users)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	userTurn, err := entity.NewChatTurn(owner.Id, entity.ChatRoleUser, "I feel stressed", base)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, userTurn))

	assistantTurn, err := entity.NewChatTurn(owner.Id, entity.ChatRoleAssistant, "Let's breathe together.", base.Add(time.Millisecond))
	require.NoError(t, err)
	assistantTurn.TechniquesUsed = []entity.TechniqueSnapshot{{Id: uuid.New(), Title: "Box Breathing"}}
	assistantTurn.CrisisResourcesUsed = []entity.CrisisResourceSnapshot{{Id: uuid.New(), Name: "Crisis Line"}}
	require.NoError(t, repo.Create(ctx, assistantTurn))

	turns, err := repo.FindRecentByUserId(ctx, owner.Id, 50)
	require.NoError(t, err)
	require.Len(t, turns, 2)

	assert.Equal(t, entity.ChatRoleUser, turns[0].Role)
	assert.Equal(t, "I feel stressed", turns[0].Message)
	assert.Equal(t, entity.ChatRoleAssistant, turns[1].Role)
	assert.True(t, turns[0].Timestamp.Before(turns[1].Timestamp))

	require.Len(t, turns[1].TechniquesUsed, 1)
	assert.Equal(t, "Box Breathing", turns[1].TechniquesUsed[0].Title)
	require.Len(t, turns[1].CrisisResourcesUsed, 1)
	assert.Equal(t, "Crisis Line", turns[1].CrisisResourcesUsed[0].Name)
	assert.Empty(t, turns[0].TechniquesUsed)
}

func TestFindRecentKeepsNewestWindow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewChatTurnRepository(db)
	owner := seedUser(t, NewUserRepository(db))

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	batch := make([]*entity.ChatTurn, 0, 6)
	for i := 0; i < 6; i++ {
		turn, err := entity.NewChatTurn(owner.Id, entity.ChatRoleUser, "message", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		batch = append(batch, turn)
	}
	require.NoError(t, repo.CreateBulk(ctx, batch))

	turns, err := repo.FindRecentByUserId(ctx, owner.Id, 4)
	require.NoError(t, err)
	require.Len(t, turns, 4)

	// The two oldest turns fall outside the window.
	assert.True(t, turns[0].Timestamp.Equal(base.Add(2*time.Minute)))
	assert.True(t, turns[3].Timestamp.Equal(base.Add(5*time.Minute)))
	for i := 1; i < len(turns); i++ {
		assert.True(t, turns[i-1].Timestamp.Before(turns[i].Timestamp))
	}
}

func TestDeleteAllByUserIdIsScopedToOwner(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewChatTurnRepository(db)

	alice := seedUser(t, users)
	bob := seedUser(t, users)
	now := time.Now().UTC()

	for _, owner := range []*entity.User{alice, alice, bob} {
		turn, err := entity.NewChatTurn(owner.Id, entity.ChatRoleUser, "hello", now)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, turn))
	}

	deleted, err := repo.DeleteAllByUserId(ctx, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.Count(ctx, specification.ByUserID{UserID: alice.Id})
	require.NoError(t, err)
	assert.Zero(t, remaining)

	bobCount, err := repo.Count(ctx, specification.ByUserID{UserID: bob.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), bobCount)
}

func TestFindAllByRole(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewChatTurnRepository(db)
	owner := seedUser(t, NewUserRepository(db))
	now := time.Now().UTC()

	for _, role := range []entity.ChatRole{entity.ChatRoleUser, entity.ChatRoleAssistant, entity.ChatRoleUser} {
		turn, err := entity.NewChatTurn(owner.Id, role, "text", now)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, turn))
	}

	userTurns, err := repo.FindAll(ctx,
		specification.ByUserID{UserID: owner.Id},
		specification.ByRole{Role: string(entity.ChatRoleUser)},
	)
	require.NoError(t, err)
	assert.Len(t, userTurns, 2)
}
