package server

import (
	"context"
	"fmt"
	"log/slog"

	"talker/auth"
	"talker/domain/chat"
	"talker/errors"
	pb "talker/proto/chatlog"
	"talker/services"
	"talker/sink"

	"github.com/google/uuid"
)

type LogServer struct {
	logService  services.ILogService
	authService services.IAuthService
	log         *slog.Logger
}

func NewLogServer(log *slog.Logger, logService services.ILogService, authService services.IAuthService) *LogServer {
	return &LogServer{logService: logService, authService: authService, log: log}
}

// Append writes a record on behalf of the authenticated user.
// The author does not receive the message through this call: it shows up in
// the next window pushed on its subscription, like for any other reader.
func (s *LogServer) Append(ctx context.Context, req *pb.AppendRequest) (*pb.AppendResponse, error) {
	caller, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrNoSession)
	}
	message, err := s.logService.Append(chat.AppendCommand{
		LogID: req.LogId,
		Record: chat.Record{
			Text:            req.Text,
			AuthorID:        req.AuthorId,
			AuthorAvatarURL: req.AuthorAvatarUrl,
		},
		Caller: caller,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AppendResponse{
		Id:        message.ID,
		CreatedAt: message.CreatedAt.UnixNano(),
		Seq:       message.Seq,
	}, nil
}

// SubscribeTopN pushes the complete window of a log each time it changes.
// It blocks until the client goes away or the log shuts down; the subscription
// is released on return.
func (s *LogServer) SubscribeTopN(req *pb.SubscribeRequest, stream pb.OrderedLog_SubscribeTopNServer) error {
	windowSink := sink.NewWindowSink()
	subscriberID := uuid.NewString()
	userID, _ := auth.UserIDFromContext(stream.Context())
	log := s.log.With("subscriber_id", subscriberID, "user_id", userID, "log_id", req.LogId)

	err := s.logService.Subscribe(subscriberID, chat.SubscribeCommand{
		LogID:    req.LogId,
		OrderKey: chat.OrderKey(req.OrderKey),
		Limit:    int(req.Limit),
	}, windowSink)
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	defer s.logService.Unsubscribe(subscriberID, req.LogId)
	log.Debug("Subscriber connected")

	for {
		select {
		case <-stream.Context().Done():
			log.Debug(fmt.Sprintf("Subscriber disconnected: %v", stream.Context().Err()))
			return nil
		case <-s.logService.Done():
			log.Debug("Subscriber released on shutdown")
			return errors.MapToGRPCError(errors.ErrShuttingDown)
		case window := <-windowSink.Windows():
			if err := stream.Send(pb.NewWindowEvent(req.LogId, window)); err != nil {
				log.Error("failed to push window to stream", "error", err)
				return err
			}
		}
	}
}

// SignIn issues a session token for an identity vouched by the provider.
func (s *LogServer) SignIn(_ context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	token, err := s.authService.SignIn(chat.SignInCommand{UserID: req.UserId, AvatarURL: req.AvatarUrl})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SignInResponse{Token: string(token)}, nil
}
