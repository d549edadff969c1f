package chatlog

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype carried by every call of the service.
const CodecName = "chatlog"

const (
	OrderedLog_Append_FullMethodName        = "/talker.chatlog.v1.OrderedLog/Append"
	OrderedLog_SubscribeTopN_FullMethodName = "/talker.chatlog.v1.OrderedLog/SubscribeTopN"
	OrderedLog_SignIn_FullMethodName        = "/talker.chatlog.v1.OrderedLog/SignIn"
)

func init() {
	encoding.RegisterCodec(codec{})
}

type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("chatlog codec: unsupported type %T", v)
	}
	return m.MarshalWire(), nil
}

func (codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("chatlog codec: unsupported type %T", v)
	}
	return m.UnmarshalWire(data)
}

func (codec) Name() string { return CodecName }

// OrderedLogServer is the server API of the ordered log service.
type OrderedLogServer interface {
	Append(context.Context, *AppendRequest) (*AppendResponse, error)
	SubscribeTopN(*SubscribeRequest, OrderedLog_SubscribeTopNServer) error
	SignIn(context.Context, *SignInRequest) (*SignInResponse, error)
}

type OrderedLog_SubscribeTopNServer interface {
	Send(*WindowEvent) error
	grpc.ServerStream
}

type subscribeTopNServer struct {
	grpc.ServerStream
}

func (x *subscribeTopNServer) Send(m *WindowEvent) error {
	return x.ServerStream.SendMsg(m)
}

func RegisterOrderedLogServer(s grpc.ServiceRegistrar, srv OrderedLogServer) {
	s.RegisterService(&OrderedLog_ServiceDesc, srv)
}

func appendHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AppendRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderedLogServer).Append(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OrderedLog_Append_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(OrderedLogServer).Append(ctx, req.(*AppendRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func signInHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SignInRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderedLogServer).SignIn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OrderedLog_SignIn_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(OrderedLogServer).SignIn(ctx, req.(*SignInRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func subscribeTopNHandler(srv any, stream grpc.ServerStream) error {
	in := new(SubscribeRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(OrderedLogServer).SubscribeTopN(in, &subscribeTopNServer{stream})
}

var OrderedLog_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "talker.chatlog.v1.OrderedLog",
	HandlerType: (*OrderedLogServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Append", Handler: appendHandler},
		{MethodName: "SignIn", Handler: signInHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "SubscribeTopN", Handler: subscribeTopNHandler, ServerStreams: true},
	},
	Metadata: "talker/chatlog/v1",
}

// OrderedLogClient is the client API of the ordered log service.
type OrderedLogClient interface {
	Append(ctx context.Context, in *AppendRequest, opts ...grpc.CallOption) (*AppendResponse, error)
	SubscribeTopN(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (OrderedLog_SubscribeTopNClient, error)
	SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error)
}

type OrderedLog_SubscribeTopNClient interface {
	Recv() (*WindowEvent, error)
	grpc.ClientStream
}

type orderedLogClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderedLogClient(cc grpc.ClientConnInterface) OrderedLogClient {
	return &orderedLogClient{cc}
}

// withCodec forces the chatlog codec on every call.
func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *orderedLogClient) Append(ctx context.Context, in *AppendRequest, opts ...grpc.CallOption) (*AppendResponse, error) {
	out := new(AppendResponse)
	if err := c.cc.Invoke(ctx, OrderedLog_Append_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedLogClient) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error) {
	out := new(SignInResponse)
	if err := c.cc.Invoke(ctx, OrderedLog_SignIn_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedLogClient) SubscribeTopN(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (OrderedLog_SubscribeTopNClient, error) {
	stream, err := c.cc.NewStream(ctx, &OrderedLog_ServiceDesc.Streams[0], OrderedLog_SubscribeTopN_FullMethodName, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	x := &subscribeTopNClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type subscribeTopNClient struct {
	grpc.ClientStream
}

func (x *subscribeTopNClient) Recv() (*WindowEvent, error) {
	m := new(WindowEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
