// Package subscription keeps a push feed of window snapshots alive and hands
// every snapshot to its owner over a channel.
package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"talker/contract"
	"talker/domain/chat"
	"talker/errors"
)

type State int

const (
	Connecting State = iota
	Live
	Unavailable
)

func (s State) String() string {
	switch s {
	case Live:
		return "live"
	case Unavailable:
		return "unavailable"
	default:
		return "connecting"
	}
}

// Health is a liveness hint for the UI. A silent feed and an idle room look the
// same, so State only reflects the connection.
type Health struct {
	State        State
	LastDelivery time.Time
	Failures     int
}

// Channel opens subscriptions on an ordered log.
type Channel struct {
	log           *slog.Logger
	orderedLog    contract.OrderedLog
	retryInterval time.Duration
}

func NewChannel(log *slog.Logger, orderedLog contract.OrderedLog, retryInterval time.Duration) *Channel {
	return &Channel{log: log, orderedLog: orderedLog, retryInterval: retryInterval}
}

// Subscription delivers complete newest-first windows.
type Subscription struct {
	log        *slog.Logger
	logID      string
	windowSize int
	updates    chan []chat.Message
	cancel     context.CancelFunc
	done       chan struct{}

	mu     sync.Mutex
	closed bool
	health Health
}

// Open starts following the top windowSize entries of logID.
// It never fails: an unreachable log is retried in the background.
func (c *Channel) Open(ctx context.Context, logID string, orderKey chat.OrderKey, windowSize int) *Subscription {
	windowSize = max(1, min(windowSize, chat.WindowSize))
	subCtx, cancel := context.WithCancel(ctx)
	s := &Subscription{
		log:        c.log.With("log_id", logID),
		logID:      logID,
		windowSize: windowSize,
		updates:    make(chan []chat.Message, 1),
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	go s.follow(subCtx, c.orderedLog, orderKey, c.retryInterval)
	return s
}

// Updates yields windows in delivery order. It is closed by Close.
func (s *Subscription) Updates() <-chan []chat.Message {
	return s.updates
}

func (s *Subscription) Health() Health {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.health
}

// Close releases the feed. No window can be received once it returns.
// Calling it again is a no-op.
func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cancel()
	select {
	case <-s.updates:
	default:
	}
	close(s.updates)
	s.mu.Unlock()
	s.log.Debug("Subscription closed")
}

// Done is closed when the background loop has exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) follow(ctx context.Context, orderedLog contract.OrderedLog, orderKey chat.OrderKey, retryInterval time.Duration) {
	defer close(s.done)
	for {
		err := s.stream(ctx, orderedLog, orderKey)
		if ctx.Err() != nil {
			return
		}
		s.markUnavailable()
		s.log.Warn("Subscription lost, retrying",
			"error", fmt.Errorf("%w: %v", errors.ErrChannelUnavailable, err),
			"retry_in", retryInterval)
		select {
		case <-ctx.Done():
			return
		case <-time.After(retryInterval):
		}
	}
}

// stream runs one feed until it fails or ctx is canceled.
func (s *Subscription) stream(ctx context.Context, orderedLog contract.OrderedLog, orderKey chat.OrderKey) error {
	feed, err := orderedLog.SubscribeTopN(ctx, s.logID, orderKey, s.windowSize)
	if err != nil {
		return err
	}
	s.setState(Live)
	for {
		window, err := feed.Recv()
		if err != nil {
			return err
		}
		s.deliver(window)
	}
}

// deliver hands a window over, replacing one the owner has not read yet.
func (s *Subscription) deliver(window []chat.Message) {
	if len(window) > s.windowSize {
		window = window[:s.windowSize]
	}
	window = slices.Clone(window)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case <-s.updates:
	default:
	}
	s.updates <- window
	s.health.State = Live
	s.health.LastDelivery = time.Now()
}

func (s *Subscription) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health.State = state
}

func (s *Subscription) markUnavailable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health.State = Unavailable
	s.health.Failures++
}
