package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rahulverma-dev/finassist/backend/internal/model/chat"
	"github.com/rahulverma-dev/finassist/backend/internal/model/goal"
)

const (
	conversationCollection = "conversations"
	goalCollection         = "goals"
)

// FirestoreStore implements Store on top of Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an existing Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// conversationDoc is the wire shape of a mirrored conversation document.
type conversationDoc struct {
	Messages []chat.Message `firestore:"messages"`
}

// SetConversation overwrites the whole mirrored conversation for a user.
func (s *FirestoreStore) SetConversation(ctx context.Context, userID string, messages []chat.Message) error {
	_, err := s.client.Collection(conversationCollection).Doc(userID).Set(ctx, conversationDoc{Messages: messages})
	if err != nil {
		return fmt.Errorf("failed to set conversation for %s: %w", userID, err)
	}
	return nil
}

// GetConversation reads the mirrored conversation for a user. A missing
// document is an empty conversation, not an error.
func (s *FirestoreStore) GetConversation(ctx context.Context, userID string) ([]chat.Message, error) {
	doc, err := s.client.Collection(conversationCollection).Doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation for %s: %w", userID, err)
	}

	var payload conversationDoc
	if err := doc.DataTo(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse conversation: %w", err)
	}
	return payload.Messages, nil
}

// CreateGoal stores a new goal under a Firestore-assigned document ID.
func (s *FirestoreStore) CreateGoal(ctx context.Context, g *goal.FinancialGoal) (string, error) {
	ref := s.client.Collection(goalCollection).NewDoc()
	if _, err := ref.Set(ctx, g); err != nil {
		return "", fmt.Errorf("failed to create goal: %w", err)
	}
	return ref.ID, nil
}

// GetGoal retrieves a goal by its document ID.
func (s *FirestoreStore) GetGoal(ctx context.Context, goalID string) (*goal.FinancialGoal, error) {
	doc, err := s.client.Collection(goalCollection).Doc(goalID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal %s: %w", goalID, err)
	}

	var g goal.FinancialGoal
	if err := doc.DataTo(&g); err != nil {
		return nil, fmt.Errorf("failed to parse goal: %w", err)
	}
	g.ID = doc.Ref.ID
	return &g, nil
}

// UpdateGoalSaved overwrites only the Saved field of a goal document.
// Last-write-wins; there is intentionally no guard against target.
func (s *FirestoreStore) UpdateGoalSaved(ctx context.Context, goalID string, saved float64) error {
	_, err := s.client.Collection(goalCollection).Doc(goalID).Update(ctx, []firestore.Update{
		{Path: "Saved", Value: saved},
	})
	if status.Code(err) == codes.NotFound {
		return ErrGoalNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", goalID, err)
	}
	return nil
}

// ListGoals returns every goal document. Ordering is store-determined and no
// pagination is applied; the collection is expected to stay small.
func (s *FirestoreStore) ListGoals(ctx context.Context) ([]*goal.FinancialGoal, error) {
	docs, err := s.client.Collection(goalCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	goals := make([]*goal.FinancialGoal, 0, len(docs))
	for _, doc := range docs {
		var g goal.FinancialGoal
		if err := doc.DataTo(&g); err != nil {
			return nil, fmt.Errorf("failed to parse goal: %w", err)
		}
		g.ID = doc.Ref.ID
		goals = append(goals, &g)
	}
	return goals, nil
}
