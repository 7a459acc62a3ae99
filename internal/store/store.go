// Package store abstracts the remote document store holding mirrored
// conversations and financial goals. Two implementations exist: Firestore
// for deployment and an in-memory map store for local development and tests.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rahulverma-dev/finassist/backend/internal/model/chat"
	"github.com/rahulverma-dev/finassist/backend/internal/model/goal"
)

// ErrGoalNotFound is returned when a goal ID does not resolve to a document.
var ErrGoalNotFound = errors.New("goal not found")

// Store defines the document-store operations used by the service.
type Store interface {
	// Conversation mirror, one document per user.
	SetConversation(ctx context.Context, userID string, messages []chat.Message) error
	GetConversation(ctx context.Context, userID string) ([]chat.Message, error)

	// Goal collection. CreateGoal returns the store-assigned ID.
	CreateGoal(ctx context.Context, g *goal.FinancialGoal) (string, error)
	GetGoal(ctx context.Context, goalID string) (*goal.FinancialGoal, error)
	UpdateGoalSaved(ctx context.Context, goalID string, saved float64) error
	ListGoals(ctx context.Context) ([]*goal.FinancialGoal, error)
}

// RemoteSyncError marks a failed best-effort replication. Callers log it and
// carry on; it must never fail the local operation that triggered it.
type RemoteSyncError struct {
	Op  string
	Err error
}

func (e *RemoteSyncError) Error() string {
	return fmt.Sprintf("remote sync %s: %v", e.Op, e.Err)
}

func (e *RemoteSyncError) Unwrap() error {
	return e.Err
}
