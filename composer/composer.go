// Package composer validates and submits new messages to the ordered log.
package composer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"talker/contract"
	"talker/domain/chat"
	"talker/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type State int

const (
	Idle State = iota
	Submitting
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	default:
		return "idle"
	}
}

// Composer owns the draft of the current chat view.
// Idle -> Submitting on Submit with a non-empty draft, back to Idle on completion.
type Composer struct {
	mu         sync.Mutex
	log        *slog.Logger
	orderedLog contract.OrderedLog
	gate       contract.SessionGate
	logID      string

	draft  string
	state  State
	scroll *chat.Ack // pending scroll intent
	closed bool
}

func NewComposer(log *slog.Logger, orderedLog contract.OrderedLog, gate contract.SessionGate, logID string) *Composer {
	return &Composer{log: log, orderedLog: orderedLog, gate: gate, logID: logID}
}

// UpdateDraft replaces the draft verbatim.
func (c *Composer) UpdateDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = text
}

func (c *Composer) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CanSubmit tells the UI whether the submit action must be enabled.
func (c *Composer) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft != "" && c.state == Idle && !c.closed
}

// Submit appends the draft to the ordered log.
// The draft is kept when the append fails so the user can retry by hand.
func (c *Composer) Submit(ctx context.Context) (chat.Ack, error) {
	record, err := c.begin()
	if err != nil {
		return chat.Ack{}, err
	}

	ack, err := c.orderedLog.Append(ctx, c.logID, record)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Idle
	if c.closed {
		c.log.Debug("Discarding submit completion after teardown", "log_id", c.logID)
		if err != nil {
			return chat.Ack{}, fmt.Errorf("%w: %v", errors.ErrWriteFailed, err)
		}
		return ack, nil
	}
	if err != nil {
		c.log.Warn("Append failed, draft kept", "log_id", c.logID, "error", err)
		return chat.Ack{}, fmt.Errorf("%w: %v", errors.ErrWriteFailed, err)
	}
	// Text typed while the write was in flight is not the one we sent.
	if c.draft == record.Text {
		c.draft = ""
	}
	c.scroll = &ack
	return ack, nil
}

// begin moves the composer to Submitting and builds the record to write.
func (c *Composer) begin() (chat.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.draft == "" {
		return chat.Record{}, errors.ErrEmptyDraft
	}
	if c.state == Submitting {
		return chat.Record{}, errors.ErrSubmitInFlight
	}
	if c.closed {
		return chat.Record{}, errors.ErrNoSession
	}
	session, ok := c.gate.Current()
	if !ok || session.UserID == "" {
		return chat.Record{}, errors.ErrNoSession
	}

	record := chat.Record{
		Text:            c.draft,
		AuthorID:        session.UserID,
		AuthorAvatarURL: session.AvatarURL,
	}
	if err := validate.Struct(record); err != nil {
		return chat.Record{}, fmt.Errorf("%w: %v", errors.ErrInvalidRecord, err)
	}
	c.state = Submitting
	return record, nil
}

// ScrollPending reports whether a scroll-to-latest was requested and not resolved yet.
func (c *Composer) ScrollPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scroll != nil
}

// ResolveScroll is called by the rendering layer after it rendered a window.
// It clears the intent and returns true once the acknowledged message is visible.
func (c *Composer) ResolveScroll(rendered []chat.DisplayMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scroll == nil {
		return false
	}
	for _, m := range rendered {
		if m.ID == c.scroll.ID || m.NewerThan(*c.scroll) {
			c.scroll = nil
			return true
		}
	}
	return false
}

// Close drops the pending intent; completions arriving later change nothing.
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.scroll = nil
}
