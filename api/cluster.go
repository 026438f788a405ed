package api

import (
	"context"
	"time"
)

// LeaderInfo describes the leadership view at some point in time.
type LeaderInfo struct {
	Leader MemberID
	Term   int64
}

// LeaderLocator resolves the member currently authorized to accept new
// operations.
type LeaderLocator interface {
	// Leader returns the current leader, or an error wrapping
	// ErrNoLeaderFound when none is resolvable.
	Leader() (MemberID, error)

	// RegisterListener subscribes to leader turnover. Listeners are invoked
	// from the locator's own goroutine and must not block.
	RegisterListener(LeaderListener)
}

// LeaderListener is notified about leader turnover.
type LeaderListener interface {
	OnLeaderSwitch(LeaderInfo)
}

// Outbound delivers replication messages to cluster members.
type Outbound interface {
	// Send delivers req to the target member. With block set it returns only
	// once the message has been handed to the target (transmitted, not yet
	// committed). A send error means the target is currently unreachable,
	// not that the operation failed.
	Send(ctx context.Context, to MemberID, req *NewEntryRequest, block bool) error
}

// AvailabilityGuard gates replication on local readiness.
type AvailabilityGuard interface {
	// Await blocks until the local member is ready to serve, for at most
	// timeout. Returns an error wrapping ErrUnavailable when the bound
	// elapses first, or ctx.Err() when cancelled.
	Await(ctx context.Context, timeout time.Duration) error
}

// ReplicationMonitor receives protocol observability events. Implementations
// must never fail in ways that affect protocol correctness.
type ReplicationMonitor interface {
	StartReplication()
	ReplicationAttempt()
	SuccessfulReplication(took time.Duration)
	FailedReplication(err error, took time.Duration)
}
