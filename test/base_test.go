package test

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"talker/auth"
	"talker/infrastructure/grpc/client"
	"talker/infrastructure/grpc/server"
	"talker/moderation"
	pb "talker/proto/chatlog"
	"talker/repositories"
	"talker/runtime"
	"talker/runtime/workers"
	"talker/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const secret = "integration_secret_long_enough_for_hs256"

type Config struct {
	// TALKER_E2E_COLOURS enables colorized step headers
	Colours bool `envconfig:"COLOURS" default:"false"`
	// TALKER_E2E_DEBUG logs every gRPC call
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// BaseSuite runs a complete server, backed by a temporary BadgerDB, on an
// in-memory listener.
type BaseSuite struct {
	suite.Suite
	Config   Config
	log      *slog.Logger
	listener *bufconn.Listener
	server   *grpc.Server
	hub      *runtime.LogHub
	cancel   context.CancelFunc
	cleanup  []func()
}

func (s *BaseSuite) SetupSuite() {
	s.Require().NoError(envconfig.Process("talker_e2e", &s.Config))
	level := slog.LevelWarn
	if s.Config.Debug {
		level = slog.LevelDebug
	}
	s.log = logs.GetLoggerFromLevel(level)
}

func (s *BaseSuite) SetupTest() {
	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	messageRepository := repositories.NewMessageRepository(db, s.log)
	moderator, err := moderation.NewModerator([]string{"badger"}, '*', s.log)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.hub = runtime.NewLogHub(s.log, workers.NewSupervisor(s.log, 10*time.Millisecond),
		runtime.NewRegistry(), messageRepository, moderator, time.Second)
	s.hub.Start(ctx)

	issuer := auth.NewIssuer(secret, time.Hour)
	s.server = grpc.NewServer(
		grpc.ChainUnaryInterceptor(issuer.UnaryInterceptor),
		grpc.ChainStreamInterceptor(issuer.StreamInterceptor),
	)
	pb.RegisterOrderedLogServer(s.server, server.NewLogServer(s.log,
		services.NewLogService(s.hub, 25),
		services.NewAuthService(repositories.NewUserRepository(db), issuer)))

	s.listener = bufconn.Listen(1 << 20)
	go func() { _ = s.server.Serve(s.listener) }()

	s.cleanup = []func(){
		func() { _ = db.Close() },
		messageRepository.Close,
		cancel,
		s.server.GracefulStop,
		s.hub.Stop,
	}
}

func (s *BaseSuite) TearDownTest() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
}

// Connect opens a connection carrying the session of gate.
func (s *BaseSuite) Connect(gate *auth.Gate) *client.LogClient {
	opts := []grpc.DialOption{
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return s.listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithPerRPCCredentials(gate),
	}
	if s.Config.Debug {
		opts = append(opts, grpc.WithUnaryInterceptor(s.logCall))
	}
	conn, err := grpc.NewClient("passthrough:///bufnet", opts...)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })
	return client.NewLogClient(conn)
}

// SignIn connects and signs userID in.
func (s *BaseSuite) SignIn(userID string) (*client.LogClient, *auth.Gate) {
	gate := auth.NewGate()
	logClient := s.Connect(gate)
	token, err := logClient.SignIn(context.Background(), userID, "")
	s.Require().NoError(err)
	_, err = gate.SignIn(token)
	s.Require().NoError(err)
	return logClient, gate
}

// Step prints a header before running one stage of a scenario.
func (s *BaseSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	fn()
}

func (s *BaseSuite) logCall(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	start := time.Now()
	err := invoker(ctx, method, req, reply, cc, opts...)
	s.T().Logf("GRPC %s in %v, error=%v", method, time.Since(start), err)
	return err
}
