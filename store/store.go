// Package store keeps the display view of the visible message window.
// The remote log is the single source of truth: every window replaces the previous one.
package store

import (
	"slices"
	"sync"

	"talker/domain/chat"
	"talker/errors"

	"github.com/samber/lo"
)

// ApplyWindow turns a newest-first window into the oldest-first display order.
// The input is never modified.
func ApplyWindow(raw []chat.Message) []chat.Message {
	display := slices.Clone(raw)
	slices.Reverse(display)
	return display
}

// Classify marks the messages written by currentUserID.
func Classify(display []chat.Message, currentUserID string) []chat.DisplayMessage {
	return lo.Map(display, func(m chat.Message, _ int) chat.DisplayMessage {
		return chat.DisplayMessage{Message: m, IsOwn: m.AuthorID == currentUserID}
	})
}

// MessageStore owns the last window delivered to a chat view.
type MessageStore struct {
	mu       sync.Mutex
	userID   string
	window   []chat.Message
	detached bool
}

// NewMessageStore binds a store to a session. Classification needs a user, so a
// store cannot exist without one.
func NewMessageStore(session chat.Session) (*MessageStore, error) {
	if session.UserID == "" {
		return nil, errors.ErrNoSession
	}
	return &MessageStore{userID: session.UserID}, nil
}

// Apply replaces the window and returns what should be rendered.
// It returns false once the store is detached; the window is then left untouched.
func (s *MessageStore) Apply(raw []chat.Message) ([]chat.DisplayMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached {
		return nil, false
	}
	s.window = slices.Clone(raw)
	return Classify(ApplyWindow(raw), s.userID), true
}

// Window returns the last window received, newest-first.
func (s *MessageStore) Window() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.window)
}

// Detach discards the window. Later deliveries are dropped.
func (s *MessageStore) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detached = true
	s.window = nil
}
