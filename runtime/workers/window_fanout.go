package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"talker/contract"
	"talker/repositories"
)

// Changes collects the logs whose window must be pushed again.
// Marking a log twice before the worker runs yields a single push.
type Changes struct {
	mu      sync.Mutex
	pending map[string]struct{}
	notify  chan struct{}
}

func NewChanges() *Changes {
	return &Changes{pending: make(map[string]struct{}), notify: make(chan struct{}, 1)}
}

func (c *Changes) Mark(logID string) {
	c.mu.Lock()
	c.pending[logID] = struct{}{}
	c.mu.Unlock()
	select {
	case c.notify <- struct{}{}:
	default:
	}
}

// Take empties the pending set.
func (c *Changes) Take() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	logIDs := make([]string, 0, len(c.pending))
	for logID := range c.pending {
		logIDs = append(logIDs, logID)
	}
	clear(c.pending)
	return logIDs
}

func (c *Changes) Notify() <-chan struct{} {
	return c.notify
}

// WindowFanout pushes the current window of a changed log to every subscriber.
// The top entries are loaded once per log, with the largest limit asked for,
// and cut down per subscriber. Windows are computed one log at a time so a
// subscriber never sees an older window after a newer one.
type WindowFanout struct {
	log         *slog.Logger
	changes     *Changes
	registry    contract.IRegistry
	repository  repositories.IMessageRepository
	sinkTimeout time.Duration
}

func NewWindowFanout(log *slog.Logger, changes *Changes, registry contract.IRegistry,
	repository repositories.IMessageRepository, sinkTimeout time.Duration) *WindowFanout {
	return &WindowFanout{
		log:         log,
		changes:     changes,
		registry:    registry,
		repository:  repository,
		sinkTimeout: sinkTimeout,
	}
}

func (w *WindowFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-w.changes.Notify():
			for _, logID := range w.changes.Take() {
				w.Fanout(ctx, logID)
			}
		case <-ctx.Done():
			w.log.Debug("Context done, stopping window fanout")
			return nil
		}
	}
}

// Fanout delivers the window of logID to its subscribers.
func (w *WindowFanout) Fanout(ctx context.Context, logID string) {
	subscribers := w.registry.GetSinksForLog(logID)
	if len(subscribers) == 0 {
		return
	}
	limit := 0
	for _, s := range subscribers {
		limit = max(limit, s.Limit)
	}
	window, err := w.repository.TopN(logID, limit)
	if err != nil {
		w.log.Error("Unable to load window", "log_id", logID, "error", err)
		return
	}
	for _, s := range subscribers {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err = s.Sink.Consume(sinkCtx, window[:min(s.Limit, len(window))]); err != nil {
			w.log.Warn("Window not delivered", "log_id", logID, "subscriber_id", s.ID, "error", err)
		}
		cancel()
	}
}
