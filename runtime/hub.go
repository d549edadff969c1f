// Package runtime wires the ordered log together: persistence, moderation and
// the push of windows to subscribers. It holds no business rule of its own.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"talker/contract"
	"talker/domain/chat"
	"talker/errors"
	"talker/moderation"
	"talker/repositories"
	"talker/runtime/workers"
)

type LogHub struct {
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   contract.IRegistry
	repository repositories.IMessageRepository
	moderator  *moderation.Moderator
	changes    *workers.Changes
	fanout     contract.Worker
	now        func() time.Time
	stopped    chan struct{}
	stopOnce   sync.Once
}

func NewLogHub(log *slog.Logger, supervisor contract.ISupervisor, registry contract.IRegistry,
	repository repositories.IMessageRepository, moderator *moderation.Moderator, sinkTimeout time.Duration) *LogHub {
	changes := workers.NewChanges()
	return &LogHub{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		repository: repository,
		moderator:  moderator,
		changes:    changes,
		fanout:     workers.NewWindowFanout(log, changes, registry, repository, sinkTimeout),
		now:        func() time.Time { return time.Now().UTC() },
		stopped:    make(chan struct{}),
	}
}

// Start runs the supervised fan-out worker in the background.
func (h *LogHub) Start(ctx context.Context) {
	h.supervisor.Add(h.fanout)
	h.log.Info("Starting log hub and all supervised workers")
	go h.supervisor.Run(ctx)
}

// Append moderates and persists a record, then schedules the push of the
// new window. The returned message carries the server timestamp.
func (h *LogHub) Append(logID string, record chat.Record) (chat.Message, error) {
	censored, words := h.moderator.Censor(record.Text)
	if len(words) > 0 {
		h.log.Info("Message censored", "log_id", logID, "author", record.AuthorID, "words", len(words))
	}
	record.Text = censored

	message, err := h.repository.Append(logID, record, h.now())
	if err != nil {
		return chat.Message{}, fmt.Errorf("%w: %v", errors.ErrWriteFailed, err)
	}
	h.log.Debug("Message appended",
		"log_id", logID,
		"id", message.ID,
		"seq", message.Seq,
		"lang", moderation.DetectLanguage(record.Text))
	h.changes.Mark(logID)
	return message, nil
}

// Subscribe registers a sink on a log. The current window is pushed right away,
// then again after every append.
func (h *LogHub) Subscribe(subscriberID, logID string, limit int, sink contract.WindowSink) {
	h.registry.Subscribe(subscriberID, logID, limit, sink)
	h.changes.Mark(logID)
}

func (h *LogHub) Unsubscribe(subscriberID, logID string) {
	h.registry.Unsubscribe(subscriberID, logID)
}

// Stop cancels the supervised workers and releases every open subscription
// stream through Done. Calling it again is a no-op.
func (h *LogHub) Stop() {
	h.stopOnce.Do(func() {
		h.log.Info("Requesting log hub shutdown")
		close(h.stopped)
		h.supervisor.Stop()
	})
}

// Done is closed once Stop was called.
func (h *LogHub) Done() <-chan struct{} {
	return h.stopped
}
