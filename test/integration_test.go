package test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"talker/domain/chat"
	"talker/subscription"
	"talker/view"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// channelRenderer forwards rendered windows to a channel.
type channelRenderer struct {
	windows chan []chat.DisplayMessage
}

func newChannelRenderer() *channelRenderer {
	return &channelRenderer{windows: make(chan []chat.DisplayMessage, 100)}
}

func (r *channelRenderer) ShowSignIn() {}
func (r *channelRenderer) ShowProfile(chat.Profile) {}
func (r *channelRenderer) ScrollToLatest() {}
func (r *channelRenderer) ShowChat(messages []chat.DisplayMessage) {
	r.windows <- messages
}

func (r *channelRenderer) waitFor(s *ChatSuite, match func([]chat.DisplayMessage) bool) []chat.DisplayMessage {
	timeout := time.After(2 * time.Second)
	for {
		select {
		case w := <-r.windows:
			if match(w) {
				return w
			}
		case <-timeout:
			s.Require().Fail("expected window never rendered")
			return nil
		}
	}
}

type ChatSuite struct {
	BaseSuite
}

func TestChatSuite(t *testing.T) {
	suite.Run(t, new(ChatSuite))
}

func (s *ChatSuite) TestTwoViewersSeeOwnership() {
	ctx := context.Background()
	renderers := map[string]*channelRenderer{}
	controllers := map[string]*view.Controller{}

	s.Step("u1 and u2 open the chat", func() {
		for _, userID := range []string{"u1", "u2"} {
			logClient, gate := s.SignIn(userID)
			renderers[userID] = newChannelRenderer()
			channel := subscription.NewChannel(s.log, logClient, 20*time.Millisecond)
			controllers[userID] = view.NewController(s.log, gate, channel, logClient, renderers[userID],
				view.Options{LogID: "messages"})
			controllers[userID].Start(ctx)
			s.T().Cleanup(controllers[userID].Close)
			renderers[userID].waitFor(s, func(w []chat.DisplayMessage) bool { return len(w) == 0 })
		}
	})

	s.Step("u1 says hi", func() {
		controllers["u1"].UpdateDraft("hi")
		_, err := controllers["u1"].Submit(ctx)
		s.Require().NoError(err)
		s.Require().Empty(controllers["u1"].Composer().Draft())
	})

	s.Step("both views show the message with the right owner", func() {
		own := renderers["u1"].waitFor(s, func(w []chat.DisplayMessage) bool { return len(w) == 1 })
		other := renderers["u2"].waitFor(s, func(w []chat.DisplayMessage) bool { return len(w) == 1 })
		s.Require().Equal("hi", own[0].Text)
		s.Require().True(own[0].IsOwn)
		s.Require().Equal("hi", other[0].Text)
		s.Require().False(other[0].IsOwn)
		s.Require().Equal(own[0].ID, other[0].ID)
	})
}

func (s *ChatSuite) TestWindowKeepsTheNewest() {
	ctx := context.Background()
	logClient, _ := s.SignIn("u1")

	s.Step("26 messages are written", func() {
		for i := 1; i <= chat.WindowSize+1; i++ {
			_, err := logClient.Append(ctx, "messages", chat.Record{Text: fmt.Sprintf("m%d", i), AuthorID: "u1"})
			s.Require().NoError(err)
		}
	})

	s.Step("a subscriber only sees the 25 newest", func() {
		sub := subscription.NewChannel(s.log, logClient, 20*time.Millisecond).
			Open(ctx, "messages", chat.OrderByCreatedAt, chat.WindowSize)
		defer sub.Close()

		select {
		case window := <-sub.Updates():
			s.Require().Len(window, chat.WindowSize)
			s.Require().Equal("m26", window[0].Text)
			s.Require().Equal("m2", window[len(window)-1].Text)
		case <-time.After(2 * time.Second):
			s.Require().Fail("no window delivered")
		}
	})
}

func (s *ChatSuite) TestAppendIsCensored() {
	ctx := context.Background()
	logClient, _ := s.SignIn("u1")
	sub := subscription.NewChannel(s.log, logClient, 20*time.Millisecond).
		Open(ctx, "messages", chat.OrderByCreatedAt, chat.WindowSize)
	defer sub.Close()

	_, err := logClient.Append(ctx, "messages", chat.Record{Text: "a badger here", AuthorID: "u1"})
	s.Require().NoError(err)

	s.Require().Eventually(func() bool {
		select {
		case w := <-sub.Updates():
			return len(w) == 1 && w[0].Text == "a ****** here"
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *ChatSuite) TestAppendRejections() {
	ctx := context.Background()

	s.Step("without session", func() {
		_, gate := s.SignIn("u1")
		gate.SignOut()
		anonymous := s.Connect(gate)
		_, err := anonymous.Append(ctx, "messages", chat.Record{Text: "hi", AuthorID: "u1"})
		s.Require().Equal(codes.Unauthenticated, status.Code(err))
	})

	s.Step("for another author", func() {
		logClient, _ := s.SignIn("u1")
		_, err := logClient.Append(ctx, "messages", chat.Record{Text: "hi", AuthorID: "u2"})
		s.Require().Equal(codes.PermissionDenied, status.Code(err))
	})

	s.Step("with an empty text", func() {
		logClient, _ := s.SignIn("u1")
		_, err := logClient.Append(ctx, "messages", chat.Record{AuthorID: "u1"})
		s.Require().Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Step("subscription on an unknown order key", func() {
		logClient, _ := s.SignIn("u1")
		feed, err := logClient.SubscribeTopN(ctx, "messages", "text", 25)
		s.Require().NoError(err)
		_, err = feed.Recv()
		s.Require().Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *ChatSuite) TestShutdownReleasesSubscribers() {
	ctx := context.Background()
	logClient, _ := s.SignIn("u1")
	feed, err := logClient.SubscribeTopN(ctx, "messages", chat.OrderByCreatedAt, chat.WindowSize)
	s.Require().NoError(err)

	s.Step("the subscriber holds an open stream", func() {
		window, err := feed.Recv()
		s.Require().NoError(err)
		s.Require().Empty(window)
	})

	s.Step("a graceful stop does not wait for the client", func() {
		stopped := make(chan struct{})
		go func() {
			s.hub.Stop()
			s.server.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(2 * time.Second):
			s.Require().Fail("graceful stop blocked on an open subscription")
		}
		_, err := feed.Recv()
		s.Require().Equal(codes.Unavailable, status.Code(err))
	})
}
