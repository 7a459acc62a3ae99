package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulverma-dev/finassist/backend/internal/model/chat"
	"github.com/rahulverma-dev/finassist/backend/internal/model/goal"
)

func TestMemoryStoreConversationRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	messages := []chat.Message{
		chat.UserMessage("hello"),
		chat.AssistantMessage("hi, how can I help with your finances?"),
	}

	require.NoError(t, s.SetConversation(ctx, "user-1", messages))

	got, err := s.GetConversation(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, messages, got)

	// Unknown users read back as empty conversations.
	empty, err := s.GetConversation(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStoreSetConversationOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SetConversation(ctx, "user-1", []chat.Message{chat.UserMessage("first")}))
	require.NoError(t, s.SetConversation(ctx, "user-1", []chat.Message{chat.UserMessage("second")}))

	got, err := s.GetConversation(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Content)
}

func TestMemoryStoreGoalLifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.CreateGoal(ctx, &goal.FinancialGoal{Name: "Travel Fund", Target: 50000, DurationMonths: 12})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	created, err := s.GetGoal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Travel Fund", created.Name)
	assert.Zero(t, created.Saved)

	require.NoError(t, s.UpdateGoalSaved(ctx, id, 12500))

	updated, err := s.GetGoal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 12500.0, updated.Saved)
}

func TestMemoryStoreUpdateLeavesOtherGoalsUntouched(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	firstID, err := s.CreateGoal(ctx, &goal.FinancialGoal{Name: "Emergency", Target: 100000, DurationMonths: 24})
	require.NoError(t, err)
	secondID, err := s.CreateGoal(ctx, &goal.FinancialGoal{Name: "Laptop", Target: 80000, DurationMonths: 6})
	require.NoError(t, err)

	require.NoError(t, s.UpdateGoalSaved(ctx, firstID, 40000))

	other, err := s.GetGoal(ctx, secondID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", other.Name)
	assert.Equal(t, 80000.0, other.Target)
	assert.Zero(t, other.Saved)

	goals, err := s.ListGoals(ctx)
	require.NoError(t, err)
	assert.Len(t, goals, 2)
}

func TestMemoryStoreGoalNotFound(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.GetGoal(ctx, "missing")
	assert.ErrorIs(t, err, ErrGoalNotFound)

	err = s.UpdateGoalSaved(ctx, "missing", 10)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestMemoryStoreCopiesOnRead(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.CreateGoal(ctx, &goal.FinancialGoal{Name: "Bike", Target: 90000, DurationMonths: 18})
	require.NoError(t, err)

	g, err := s.GetGoal(ctx, id)
	require.NoError(t, err)
	g.Saved = 99999 // mutate the copy only

	fresh, err := s.GetGoal(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, fresh.Saved)
}
