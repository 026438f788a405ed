package transport

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/shrtyk/raft-replicator/api"
	"github.com/shrtyk/raft-replicator/pkg/logger"
	"google.golang.org/grpc"
)

// Handler is implemented by the consensus node hosting the inbound side of
// the replication protocol.
type Handler interface {
	// NewEntry receives a proposed operation. Accepting it means the member
	// took responsibility for feeding it into the consensus log, nothing
	// more.
	NewEntry(ctx context.Context, req *api.NewEntryRequest) (*NewEntryResponse, error)

	// Leader reports this member's current leadership view.
	Leader(ctx context.Context, req *LeaderRequest) (*LeaderResponse, error)
}

// serviceDesc describes the replication service by hand; the gob codec
// carries the payloads, so there is no generated service code.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*Handler)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "NewEntry",
			Handler:    newEntryHandler,
		},
		{
			MethodName: "Leader",
			Handler:    leaderHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

func newEntryHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(api.NewEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Handler).NewEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: newEntryMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(Handler).NewEntry(ctx, req.(*api.NewEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func leaderHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LeaderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Handler).Leader(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: leaderMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(Handler).Leader(ctx, req.(*LeaderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InboundServer hosts the replication service on a consensus node.
type InboundServer struct {
	addr    string
	handler Handler
	logger  *slog.Logger

	server *grpc.Server
	lis    net.Listener
}

func NewInboundServer(addr string, h Handler, log *slog.Logger) *InboundServer {
	return &InboundServer{
		addr:    addr,
		handler: h,
		logger:  log,
	}
}

// Start begins serving. It returns once the listener is bound, serving in a
// background goroutine.
func (s *InboundServer) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.lis = lis

	s.server = grpc.NewServer(grpc.ForceServerCodec(gobCodec{}))
	s.server.RegisterService(&serviceDesc, s.handler)

	go func() {
		if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			s.logger.Error("replication server failed", logger.ErrAttr(err))
		}
	}()
	return nil
}

// Addr returns the bound listen address.
func (s *InboundServer) Addr() string {
	if s.lis == nil {
		return s.addr
	}
	return s.lis.Addr().String()
}

func (s *InboundServer) Stop() {
	if s.server != nil {
		s.server.GracefulStop()
	}
}
