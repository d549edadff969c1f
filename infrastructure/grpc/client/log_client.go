package client

import (
	"context"

	"talker/contract"
	"talker/domain/chat"
	pb "talker/proto/chatlog"

	"google.golang.org/grpc"
)

// LogClient is the ordered log reached over gRPC.
// Call credentials are attached by the connection.
type LogClient struct {
	client pb.OrderedLogClient
}

func NewLogClient(conn grpc.ClientConnInterface) *LogClient {
	return &LogClient{client: pb.NewOrderedLogClient(conn)}
}

func (c *LogClient) Append(ctx context.Context, logID string, record chat.Record) (chat.Ack, error) {
	res, err := c.client.Append(ctx, &pb.AppendRequest{
		LogId:           logID,
		Text:            record.Text,
		AuthorId:        record.AuthorID,
		AuthorAvatarUrl: record.AuthorAvatarURL,
	})
	if err != nil {
		return chat.Ack{}, err
	}
	return res.ToAck(), nil
}

// SubscribeTopN opens a server stream. Canceling ctx releases it.
func (c *LogClient) SubscribeTopN(ctx context.Context, logID string, orderKey chat.OrderKey, n int) (contract.WindowFeed, error) {
	stream, err := c.client.SubscribeTopN(ctx, &pb.SubscribeRequest{
		LogId:    logID,
		OrderKey: string(orderKey),
		Limit:    uint32(n),
	})
	if err != nil {
		return nil, err
	}
	return windowFeed{stream: stream}, nil
}

// SignIn exchanges a provider identity for a session token.
func (c *LogClient) SignIn(ctx context.Context, userID, avatarURL string) (string, error) {
	res, err := c.client.SignIn(ctx, &pb.SignInRequest{UserId: userID, AvatarUrl: avatarURL})
	if err != nil {
		return "", err
	}
	return res.Token, nil
}

type windowFeed struct {
	stream pb.OrderedLog_SubscribeTopNClient
}

func (f windowFeed) Recv() ([]chat.Message, error) {
	event, err := f.stream.Recv()
	if err != nil {
		return nil, err
	}
	return event.ToMessages(), nil
}
