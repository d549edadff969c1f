package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"talker/domain/chat"
	"talker/errors"
	"talker/mocks"
	"talker/moderation"
	"talker/repositories"
	"talker/runtime"
	"talker/runtime/workers"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLogService(t *testing.T) *LogService {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	repository := repositories.NewMessageRepository(db, log)
	moderator, err := moderation.NewModerator(nil, '*', log)
	require.NoError(t, err)
	hub := runtime.NewLogHub(log, workers.NewSupervisor(log, 10*time.Millisecond), runtime.NewRegistry(), repository, moderator, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	hub.Start(ctx)
	t.Cleanup(func() {
		cancel()
		repository.Close()
		_ = db.Close()
	})
	return NewLogService(hub, 10)
}

func TestLogService_Append(t *testing.T) {
	svc := newLogService(t)

	t.Run("should append a record written by the caller", func(t *testing.T) {
		req := require.New(t)

		message, err := svc.Append(chat.AppendCommand{
			LogID:  "messages",
			Record: chat.Record{Text: "hi", AuthorID: "u1"},
			Caller: "u1",
		})

		req.NoError(err)
		req.NotEmpty(message.ID)
		req.NotNil(message.CreatedAt)
	})

	t.Run("should refuse a record written for someone else", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.Append(chat.AppendCommand{
			LogID:  "messages",
			Record: chat.Record{Text: "hi", AuthorID: "u2"},
			Caller: "u1",
		})

		req.ErrorIs(err, errors.ErrAuthorMismatch)
	})

	t.Run("should refuse invalid records", func(t *testing.T) {
		cases := map[string]chat.AppendCommand{
			"empty text":   {LogID: "messages", Record: chat.Record{AuthorID: "u1"}, Caller: "u1"},
			"no log":       {Record: chat.Record{Text: "hi", AuthorID: "u1"}, Caller: "u1"},
			"colon in log": {LogID: "a:b", Record: chat.Record{Text: "hi", AuthorID: "u1"}, Caller: "u1"},
			"bad avatar":   {LogID: "messages", Record: chat.Record{Text: "hi", AuthorID: "u1", AuthorAvatarURL: "nope"}, Caller: "u1"},
			"no caller":    {LogID: "messages", Record: chat.Record{Text: "hi", AuthorID: "u1"}},
		}
		for name, cmd := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := svc.Append(cmd)
				require.ErrorIs(t, err, errors.ErrInvalidRecord)
			})
		}
	})
}

func TestLogService_Subscribe(t *testing.T) {
	svc := newLogService(t)
	ctrl := gomock.NewController(t)

	t.Run("should lower the limit to the server maximum", func(t *testing.T) {
		req := require.New(t)
		windowSink := mocks.NewMockWindowSink(ctrl)
		delivered := make(chan struct{})
		windowSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, []chat.Message) error {
				close(delivered)
				return nil
			}).Times(1)

		err := svc.Subscribe("s1", chat.SubscribeCommand{LogID: "messages", OrderKey: chat.OrderByCreatedAt, Limit: 100}, windowSink)
		req.NoError(err)

		select {
		case <-delivered:
		case <-time.After(time.Second):
			req.Fail("initial window never pushed")
		}
		svc.Unsubscribe("s1", "messages")
	})

	t.Run("should refuse an unknown order key", func(t *testing.T) {
		err := svc.Subscribe("s2", chat.SubscribeCommand{LogID: "messages", OrderKey: "text", Limit: 25}, mocks.NewMockWindowSink(ctrl))
		require.ErrorIs(t, err, errors.ErrUnknownOrderKey)
	})

	t.Run("should refuse a zero limit", func(t *testing.T) {
		err := svc.Subscribe("s3", chat.SubscribeCommand{LogID: "messages", OrderKey: chat.OrderByCreatedAt}, mocks.NewMockWindowSink(ctrl))
		require.ErrorIs(t, err, errors.ErrInvalidRequest)
	})
}
