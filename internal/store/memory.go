package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rahulverma-dev/finassist/backend/internal/model/chat"
	"github.com/rahulverma-dev/finassist/backend/internal/model/goal"
)

// MemoryStore implements Store with mutex-guarded maps, suitable for local
// development (USE_MEMORY_STORE=true) and tests.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string][]chat.Message
	goals         map[string]*goal.FinancialGoal
}

// NewMemoryStore bootstraps an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string][]chat.Message),
		goals:         make(map[string]*goal.FinancialGoal),
	}
}

// SetConversation overwrites the mirrored conversation for a user.
func (s *MemoryStore) SetConversation(_ context.Context, userID string, messages []chat.Message) error {
	copied := make([]chat.Message, len(messages))
	copy(copied, messages)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[userID] = copied
	return nil
}

// GetConversation returns the mirrored conversation, empty when absent.
func (s *MemoryStore) GetConversation(_ context.Context, userID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := s.conversations[userID]
	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}

// CreateGoal stores a goal under a freshly assigned ID.
func (s *MemoryStore) CreateGoal(_ context.Context, g *goal.FinancialGoal) (string, error) {
	id := uuid.NewString()

	stored := *g
	stored.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[id] = &stored
	return id, nil
}

// GetGoal retrieves a goal by ID.
func (s *MemoryStore) GetGoal(_ context.Context, goalID string) (*goal.FinancialGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.goals[goalID]
	if !ok {
		return nil, ErrGoalNotFound
	}
	copied := *g
	return &copied, nil
}

// UpdateGoalSaved overwrites the Saved field of the identified goal.
func (s *MemoryStore) UpdateGoalSaved(_ context.Context, goalID string, saved float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[goalID]
	if !ok {
		return ErrGoalNotFound
	}
	g.Saved = saved
	return nil
}

// ListGoals returns all goals in map order.
func (s *MemoryStore) ListGoals(_ context.Context) ([]*goal.FinancialGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]*goal.FinancialGoal, 0, len(s.goals))
	for _, g := range s.goals {
		copied := *g
		goals = append(goals, &copied)
	}
	return goals, nil
}
