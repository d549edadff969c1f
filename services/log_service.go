package services

import (
	"fmt"

	"talker/contract"
	"talker/domain/chat"
	"talker/errors"
	"talker/runtime"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ILogService interface {
	Append(cmd chat.AppendCommand) (chat.Message, error)
	Subscribe(subscriberID string, cmd chat.SubscribeCommand, sink contract.WindowSink) error
	Unsubscribe(subscriberID, logID string)
	// Done is closed when the log stops serving subscriptions.
	Done() <-chan struct{}
}

type LogService struct {
	hub           *runtime.LogHub
	maxWindowSize int
}

func NewLogService(hub *runtime.LogHub, maxWindowSize int) *LogService {
	return &LogService{hub: hub, maxWindowSize: maxWindowSize}
}

// Append writes a record on behalf of the caller, who must be its author.
func (s *LogService) Append(cmd chat.AppendCommand) (chat.Message, error) {
	if err := validate.Struct(cmd); err != nil {
		return chat.Message{}, fmt.Errorf("%w: %v", errors.ErrInvalidRecord, err)
	}
	if cmd.Record.AuthorID != cmd.Caller {
		return chat.Message{}, errors.ErrAuthorMismatch
	}
	return s.hub.Append(cmd.LogID, cmd.Record)
}

// Subscribe follows the top entries of a log. A limit above the server maximum is lowered.
func (s *LogService) Subscribe(subscriberID string, cmd chat.SubscribeCommand, sink contract.WindowSink) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	if cmd.OrderKey != chat.OrderByCreatedAt {
		return fmt.Errorf("%w: %q", errors.ErrUnknownOrderKey, cmd.OrderKey)
	}
	s.hub.Subscribe(subscriberID, cmd.LogID, min(cmd.Limit, s.maxWindowSize), sink)
	return nil
}

func (s *LogService) Unsubscribe(subscriberID, logID string) {
	s.hub.Unsubscribe(subscriberID, logID)
}

func (s *LogService) Done() <-chan struct{} {
	return s.hub.Done()
}
