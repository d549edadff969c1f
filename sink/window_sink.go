package sink

import (
	"context"
	"slices"
	"sync"

	"talker/domain/chat"
)

// WindowSink holds the latest window of a log for one connection.
// A window the connection has not read yet is replaced by the newer one: a
// slow reader skips intermediate windows but always ends on the latest.
type WindowSink struct {
	mu      sync.Mutex
	windows chan []chat.Message
}

func NewWindowSink() *WindowSink {
	return &WindowSink{windows: make(chan []chat.Message, 1)}
}

// Windows is read by the transport handler owning the connection.
func (s *WindowSink) Windows() <-chan []chat.Message {
	return s.windows
}

// Consume is called by the fan-out worker.
func (s *WindowSink) Consume(ctx context.Context, window []chat.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	window = slices.Clone(window)

	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.windows:
	default:
	}
	s.windows <- window
	return nil
}
