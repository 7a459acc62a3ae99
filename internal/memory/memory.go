// Package memory persists the rolling conversation log: a human-readable
// JSON file locally, mirrored best-effort to the remote document store.
package memory

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rahulverma-dev/finassist/backend/internal/model/chat"
	"github.com/rahulverma-dev/finassist/backend/internal/store"
)

// MaxMessages bounds the active conversation window to the most recent four
// exchanges (eight messages). The bound is applied on load only, so history
// beyond the window stays in the file, hidden rather than destroyed.
const MaxMessages = 8

// Store owns the local conversation file and the remote mirror.
type Store struct {
	path          string
	remote        store.Store
	mirrorTimeout time.Duration
}

// NewStore builds a memory store writing to path and mirroring through
// remote. remote may be nil, which disables mirroring entirely.
func NewStore(path string, remote store.Store, mirrorTimeout time.Duration) *Store {
	return &Store{path: path, remote: remote, mirrorTimeout: mirrorTimeout}
}

// Load reads the conversation log and applies the window bound. A missing or
// malformed file is an empty conversation, never an error.
func (s *Store) Load() []chat.Message {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var messages []chat.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil
	}

	if len(messages) > MaxMessages {
		messages = messages[len(messages)-MaxMessages:]
	}
	return messages
}

// Save overwrites the file with the full log verbatim. No bounding is applied
// on save; that is a read-time policy.
func (s *Store) Save(messages []chat.Message) error {
	if messages == nil {
		messages = []chat.Message{}
	}

	raw, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// Mirror replicates the full log to the remote store under the user's ID.
// Failures come back as *store.RemoteSyncError for the caller to log; they
// must never fail the chat turn that triggered them.
func (s *Store) Mirror(ctx context.Context, userID string, messages []chat.Message) error {
	if s.remote == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.mirrorTimeout)
	defer cancel()

	if err := s.remote.SetConversation(ctx, userID, messages); err != nil {
		return &store.RemoteSyncError{Op: "mirror conversation", Err: err}
	}
	return nil
}
