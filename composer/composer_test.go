package composer

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"talker/domain/chat"
	"talker/errors"
	"talker/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const logID = "messages"

var session = chat.Session{UserID: "u1", AvatarURL: "https://example.com/u1.png"}

func newComposer(t *testing.T) (*Composer, *mocks.MockOrderedLog, *mocks.MockSessionGate) {
	ctrl := gomock.NewController(t)
	orderedLog := mocks.NewMockOrderedLog(ctrl)
	gate := mocks.NewMockSessionGate(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewComposer(log, orderedLog, gate, logID), orderedLog, gate
}

func TestComposer_Submit_EmptyDraft(t *testing.T) {
	req := require.New(t)
	c, orderedLog, _ := newComposer(t)

	// Given an empty draft, the log is never reached
	orderedLog.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := c.Submit(context.Background())

	req.ErrorIs(err, errors.ErrEmptyDraft)
	req.Equal("", c.Draft())
	req.Equal(Idle, c.State())
	req.False(c.ScrollPending())
	req.False(c.CanSubmit())
}

func TestComposer_Submit_Success(t *testing.T) {
	req := require.New(t)
	c, orderedLog, gate := newComposer(t)
	at := time.Now().UTC()
	ack := chat.Ack{ID: "m100", CreatedAt: at, Seq: 7}

	gate.EXPECT().Current().Return(session, true)
	orderedLog.EXPECT().
		Append(gomock.Any(), logID, chat.Record{
			Text:            "hello",
			AuthorID:        session.UserID,
			AuthorAvatarURL: session.AvatarURL,
		}).
		Return(ack, nil).
		Times(1)

	c.UpdateDraft("hello")
	req.True(c.CanSubmit())
	got, err := c.Submit(context.Background())

	req.NoError(err)
	req.Equal(ack, got)
	req.Equal("", c.Draft())
	req.Equal(Idle, c.State())
	req.True(c.ScrollPending())
}

func TestComposer_Submit_WriteFailedKeepsDraft(t *testing.T) {
	req := require.New(t)
	c, orderedLog, gate := newComposer(t)

	gate.EXPECT().Current().Return(session, true)
	orderedLog.EXPECT().
		Append(gomock.Any(), logID, gomock.Any()).
		Return(chat.Ack{}, fmt.Errorf("connection reset")).
		Times(1)

	c.UpdateDraft("hello")
	_, err := c.Submit(context.Background())

	req.ErrorIs(err, errors.ErrWriteFailed)
	req.Equal("hello", c.Draft())
	req.Equal(Idle, c.State())
	req.False(c.ScrollPending())
	req.True(c.CanSubmit())
}

func TestComposer_Submit_NoSession(t *testing.T) {
	req := require.New(t)
	c, orderedLog, gate := newComposer(t)

	gate.EXPECT().Current().Return(chat.Session{}, false)
	orderedLog.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	c.UpdateDraft("hello")
	_, err := c.Submit(context.Background())

	req.ErrorIs(err, errors.ErrNoSession)
	req.Equal("hello", c.Draft())
}

func TestComposer_Submit_RejectsDoubleSubmit(t *testing.T) {
	req := require.New(t)
	c, orderedLog, gate := newComposer(t)
	entered := make(chan struct{})
	release := make(chan struct{})

	gate.EXPECT().Current().Return(session, true)
	orderedLog.EXPECT().
		Append(gomock.Any(), logID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ chat.Record) (chat.Ack, error) {
			close(entered)
			<-release
			return chat.Ack{ID: "m1", CreatedAt: time.Now().UTC()}, nil
		}).
		Times(1)

	c.UpdateDraft("hello")
	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()
	<-entered

	// When a second submit happens while the first write is in flight
	req.Equal(Submitting, c.State())
	req.False(c.CanSubmit())
	_, err := c.Submit(context.Background())
	req.ErrorIs(err, errors.ErrSubmitInFlight)

	close(release)
	req.NoError(<-done)
	req.Equal(Idle, c.State())
}

func TestComposer_Submit_KeepsTextTypedDuringWrite(t *testing.T) {
	req := require.New(t)
	c, orderedLog, gate := newComposer(t)

	gate.EXPECT().Current().Return(session, true)
	orderedLog.EXPECT().
		Append(gomock.Any(), logID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ chat.Record) (chat.Ack, error) {
			c.UpdateDraft("hello again")
			return chat.Ack{ID: "m1", CreatedAt: time.Now().UTC()}, nil
		})

	c.UpdateDraft("hello")
	_, err := c.Submit(context.Background())

	req.NoError(err)
	req.Equal("hello again", c.Draft())
}

func TestComposer_ResolveScroll(t *testing.T) {
	req := require.New(t)
	c, orderedLog, gate := newComposer(t)
	at := time.Now().UTC()
	ack := chat.Ack{ID: "m100", CreatedAt: at, Seq: 3}

	gate.EXPECT().Current().Return(session, true)
	orderedLog.EXPECT().Append(gomock.Any(), logID, gomock.Any()).Return(ack, nil)

	c.UpdateDraft("hi")
	_, err := c.Submit(context.Background())
	req.NoError(err)

	// Given a window rendered before the message came back
	earlier := at.Add(-time.Minute)
	stale := []chat.DisplayMessage{{Message: chat.Message{ID: "m99", CreatedAt: &earlier}}}
	req.False(c.ResolveScroll(stale))
	req.True(c.ScrollPending())

	// Then the window holding the message resolves the intent once
	fresh := append(stale, chat.DisplayMessage{Message: chat.Message{ID: "m100", CreatedAt: &at, Seq: 3}, IsOwn: true})
	req.True(c.ResolveScroll(fresh))
	req.False(c.ScrollPending())
	req.False(c.ResolveScroll(fresh))
}

func TestComposer_Close_DiscardsLateCompletion(t *testing.T) {
	req := require.New(t)
	c, orderedLog, gate := newComposer(t)

	gate.EXPECT().Current().Return(session, true)
	orderedLog.EXPECT().
		Append(gomock.Any(), logID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ chat.Record) (chat.Ack, error) {
			c.Close()
			return chat.Ack{ID: "m1", CreatedAt: time.Now().UTC()}, nil
		})

	c.UpdateDraft("hello")
	_, err := c.Submit(context.Background())

	req.NoError(err)
	req.Equal("hello", c.Draft())
	req.False(c.ScrollPending())
	req.False(c.CanSubmit())
}

func TestComposer_Close_LateFailureIsWriteFailed(t *testing.T) {
	req := require.New(t)
	c, orderedLog, gate := newComposer(t)

	gate.EXPECT().Current().Return(session, true)
	orderedLog.EXPECT().
		Append(gomock.Any(), logID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ chat.Record) (chat.Ack, error) {
			c.Close()
			return chat.Ack{}, fmt.Errorf("connection reset")
		})

	c.UpdateDraft("hello")
	_, err := c.Submit(context.Background())

	req.ErrorIs(err, errors.ErrWriteFailed)
	req.ErrorContains(err, "connection reset")
	req.Equal(Idle, c.State())
	req.Equal("hello", c.Draft())
	req.False(c.ScrollPending())
}
