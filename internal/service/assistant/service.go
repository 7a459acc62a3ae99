// Package assistant orchestrates one chat turn: intent shortcut, model
// fallback, then persistence of the exchange.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rahulverma-dev/finassist/backend/internal/finance"
	"github.com/rahulverma-dev/finassist/backend/internal/intent"
	"github.com/rahulverma-dev/finassist/backend/internal/memory"
	"github.com/rahulverma-dev/finassist/backend/internal/model/chat"
	"github.com/rahulverma-dev/finassist/backend/internal/store"
)

// Turn sources, reported to the client for transparency.
const (
	SourceCalculator = "calculator"
	SourceModel      = "model"
)

// ErrEmptyInput rejects blank user input before any state changes.
var ErrEmptyInput = errors.New("input must not be empty")

// Responder produces a model-generated reply for unmatched input. Nil when
// no credential is configured, in which case turns are skipped.
type Responder interface {
	GenerateReply(ctx context.Context, history []chat.Message, query string) (string, error)
}

// Turn is the outcome of one processed user input.
type Turn struct {
	Reply   string `json:"reply,omitempty"`
	Source  string `json:"source,omitempty"`
	Skipped bool   `json:"skipped"`
}

// Service wires the intent matcher, the numeric engine and the model
// fallback into the memory store. One turn is fully processed before the
// next is accepted; there is no cross-turn state beyond the log itself.
type Service struct {
	memory    *memory.Store
	responder Responder
	matcher   *intent.Matcher
}

// NewService builds the orchestrator. responder may be nil (no credential).
func NewService(mem *memory.Store, responder Responder) *Service {
	return &Service{
		memory:    mem,
		responder: responder,
		matcher:   intent.NewMatcher(),
	}
}

// History returns the bounded conversation window.
func (s *Service) History() []chat.Message {
	messages := s.memory.Load()
	if messages == nil {
		messages = []chat.Message{}
	}
	return messages
}

// HandleTurn processes one user input end to end. Without a configured
// credential the turn is an explicit no-op: no reply, no append. Mirror
// failures are logged and never fail the turn.
func (s *Service) HandleTurn(ctx context.Context, userID, input string) (Turn, error) {
	if input == "" {
		return Turn{}, ErrEmptyInput
	}
	if s.responder == nil {
		return Turn{Skipped: true}, nil
	}

	history := s.memory.Load()

	var reply, source string
	if sip, ok := s.matcher.Match(input); ok {
		fv, err := finance.SIPFutureValue(float64(sip.Monthly), sip.Years, finance.DefaultAnnualReturn)
		if err != nil {
			return Turn{}, err
		}
		reply = fmt.Sprintf(
			"If you invest ₹%d/month for %d years, you'll have approximately ₹%.2f at 12%% annual return (compounded monthly).",
			sip.Monthly, sip.Years, fv,
		)
		source = SourceCalculator
	} else {
		generated, err := s.responder.GenerateReply(ctx, history, input)
		if err != nil {
			return Turn{}, fmt.Errorf("model reply failed: %w", err)
		}
		reply = generated
		source = SourceModel
	}

	history = append(history, chat.UserMessage(input), chat.AssistantMessage(reply))
	if err := s.memory.Save(history); err != nil {
		return Turn{}, fmt.Errorf("failed to persist conversation: %w", err)
	}

	if err := s.memory.Mirror(ctx, userID, history); err != nil {
		var syncErr *store.RemoteSyncError
		if errors.As(err, &syncErr) {
			log.Printf("[assistant] %v", syncErr)
		} else {
			log.Printf("[assistant] mirror failed: %v", err)
		}
	}

	return Turn{Reply: reply, Source: source}, nil
}
