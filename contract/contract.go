//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"talker/domain/chat"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// OrderedLog is the remote append-only log as seen by a client.
type OrderedLog interface {
	Append(ctx context.Context, logID string, record chat.Record) (chat.Ack, error)
	SubscribeTopN(ctx context.Context, logID string, orderKey chat.OrderKey, n int) (WindowFeed, error)
}

// WindowFeed yields complete newest-first windows until it fails.
// It is released by canceling the context given to SubscribeTopN.
type WindowFeed interface {
	Recv() ([]chat.Message, error)
}

// SessionGate exposes the authenticated identity, if any.
type SessionGate interface {
	Current() (chat.Session, bool)
}

// Renderer is the UI surface.
type Renderer interface {
	ShowSignIn()
	ShowChat(messages []chat.DisplayMessage)
	ShowProfile(profile chat.Profile)
	ScrollToLatest()
}

// WindowSink receives the complete window of a log each time it changes.
type WindowSink interface {
	Consume(ctx context.Context, window []chat.Message) error
}

type IRegistry interface {
	GetSinksForLog(logID string) []Subscriber
	Subscribe(subscriberID string, logID string, limit int, sink WindowSink)
	Unsubscribe(subscriberID string, logID string)
}

// Subscriber is a registered sink with the window size it asked for.
type Subscriber struct {
	ID    string
	Limit int
	Sink  WindowSink
}
