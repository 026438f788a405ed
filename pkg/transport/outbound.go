package transport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shrtyk/raft-replicator/api"
	"github.com/shrtyk/raft-replicator/pkg/logger"
	"google.golang.org/grpc"
)

var _ api.Outbound = (*GRPCOutbound)(nil)

// GRPCOutbound delivers replication messages to cluster members over gRPC.
type GRPCOutbound struct {
	requestTimeout time.Duration
	conns          map[api.MemberID]*grpc.ClientConn
	logger         *slog.Logger
}

func NewGRPCOutbound(
	cfg *api.ReplicationConfig,
	conns map[api.MemberID]*grpc.ClientConn,
	log *slog.Logger,
) *GRPCOutbound {
	return &GRPCOutbound{
		requestTimeout: cfg.Timings.RPCTimeout,
		conns:          conns,
		logger:         log,
	}
}

// Send proposes op to the target member. With block set it returns once the
// target acknowledged receipt; otherwise delivery happens in the background
// and errors are only logged.
func (o *GRPCOutbound) Send(ctx context.Context, to api.MemberID, req *api.NewEntryRequest, block bool) error {
	conn, ok := o.conns[to]
	if !ok {
		return fmt.Errorf("no connection for member %q", to)
	}

	if !block {
		go func() {
			tctx, tcancel := context.WithTimeout(context.Background(), o.requestTimeout)
			defer tcancel()
			if err := o.invokeNewEntry(tctx, conn, req); err != nil {
				o.logger.Warn("background send failed",
					slog.String("to", string(to)), logger.ErrAttr(err))
			}
		}()
		return nil
	}

	tctx, tcancel := context.WithTimeout(ctx, o.requestTimeout)
	defer tcancel()
	return o.invokeNewEntry(tctx, conn, req)
}

func (o *GRPCOutbound) invokeNewEntry(ctx context.Context, conn *grpc.ClientConn, req *api.NewEntryRequest) error {
	resp := &NewEntryResponse{}
	if err := conn.Invoke(ctx, newEntryMethod, req, resp, grpc.ForceCodec(gobCodec{})); err != nil {
		return err
	}
	if !resp.Accepted {
		return fmt.Errorf("member rejected operation %s", req.Operation.DedupKey())
	}
	return nil
}

// ProbeLeader asks one member for its leadership view. Used by the cluster
// locator.
func (o *GRPCOutbound) ProbeLeader(ctx context.Context, member api.MemberID) (*LeaderResponse, error) {
	conn, ok := o.conns[member]
	if !ok {
		return nil, fmt.Errorf("no connection for member %q", member)
	}

	tctx, tcancel := context.WithTimeout(ctx, o.requestTimeout)
	defer tcancel()

	resp := &LeaderResponse{}
	if err := conn.Invoke(tctx, leaderMethod, &LeaderRequest{}, resp, grpc.ForceCodec(gobCodec{})); err != nil {
		return nil, err
	}
	return resp, nil
}
