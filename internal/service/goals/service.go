// Package goals implements the cloud-synced goal tracker on top of the
// remote document store.
package goals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rahulverma-dev/finassist/backend/internal/model/goal"
	"github.com/rahulverma-dev/finassist/backend/internal/store"
)

var (
	ErrNameRequired   = errors.New("goal name is required")
	ErrInvalidTarget  = errors.New("goal target must be positive")
	ErrInvalidMonths  = errors.New("goal duration must be a positive number of months")
	ErrNegativeAmount = errors.New("saved amount must not be negative")
)

// Service holds the store client. The store owns goal lifetimes entirely;
// this process keeps no authoritative copy.
type Service struct {
	store   store.Store
	timeout time.Duration
}

// NewService wraps the given store, bounding every call with timeout.
func NewService(s store.Store, timeout time.Duration) *Service {
	return &Service{store: s, timeout: timeout}
}

// Add creates a goal with Saved starting at zero. The store assigns the ID.
func (s *Service) Add(ctx context.Context, name string, target float64, durationMonths int) (*goal.FinancialGoal, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if target <= 0 {
		return nil, ErrInvalidTarget
	}
	if durationMonths <= 0 {
		return nil, ErrInvalidMonths
	}

	g := &goal.FinancialGoal{
		Name:           name,
		Target:         target,
		DurationMonths: durationMonths,
		Saved:          0,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	id, err := s.store.CreateGoal(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	g.ID = id
	return g, nil
}

// List returns every goal; ordering is whatever the store hands back.
func (s *Service) List(ctx context.Context) ([]*goal.FinancialGoal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	goals, err := s.store.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// UpdateSaved overwrites the saved amount of the identified goal. The value
// is not validated against the target; saving past the goal is allowed and
// only the displayed progress is capped.
func (s *Service) UpdateSaved(ctx context.Context, goalID string, saved float64) (*goal.FinancialGoal, error) {
	if saved < 0 {
		return nil, ErrNegativeAmount
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.UpdateGoalSaved(ctx, goalID, saved); err != nil {
		return nil, err
	}
	return s.store.GetGoal(ctx, goalID)
}
