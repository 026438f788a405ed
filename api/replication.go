/*
Package api defines the public contracts of the replication client library.
It contains the interfaces a consensus layer must implement to plug into the
replicator, the shared operation/session types, and the sentinel errors the
library surfaces.

# Mandatory User Implementations

To use this library, you must provide implementations for the following
interfaces:

  - LeaderLocator: resolves the cluster member currently authorized to accept
    new operations and notifies registered listeners about leader turnover.
    A default polling implementation is provided in the
    `github.com/shrtyk/raft-replicator/cluster` package.

  - Outbound: delivers a wrapped operation to a specific cluster member.
    A default gRPC-based implementation is provided in the
    `github.com/shrtyk/raft-replicator/pkg/transport` package.

  - ContentApplier: the application state machine. Committed operation
    payloads are handed to it exactly once, in commit order.
*/
package api

import (
	"context"
	"errors"
)

var (
	ErrNoLeaderFound      = errors.New("replication: no leader found")
	ErrUnavailable        = errors.New("replication: local member is unavailable")
	ErrDuplicateOperation = errors.New("replication: operation already tracked")
	ErrAborted            = errors.New("replication: operation aborted")
)

// Replicator submits commands into the consensus cluster and drives them to
// completion despite leader changes, lost messages and timeouts.
type Replicator interface {
	// Replicate wraps content into a deduplicated operation, sends it to the
	// current leader and blocks until the operation has been observed
	// committed, retrying as needed.
	//
	// The returned future is fulfilled with the application's result for the
	// operation. With trackResult set the session backing the operation is
	// held until the result resolves; without it the session is released as
	// soon as the operation is observed committed and the caller is expected
	// to discard the future.
	//
	// A retried send of the same operation is a no-op at the consensus state
	// machine, so retries can never apply a command twice.
	//
	// Only two conditions are surfaced as errors: the availability guard
	// timing out and ctx being cancelled. Everything else is retried
	// internally.
	Replicate(ctx context.Context, content ReplicatedContent, trackResult bool) (Future, error)
}

// Future is a one-shot result handle fulfilled when the replicated operation
// has been applied by the state machine.
type Future interface {
	// Done is closed once the result is available.
	Done() <-chan struct{}

	// Result blocks until the result is available or ctx is cancelled.
	Result(ctx context.Context) (any, error)
}

// ContentApplier is implemented by the application state machine. Apply is
// invoked exactly once per logical operation, in commit order.
type ContentApplier interface {
	Apply(content ReplicatedContent) (any, error)
}
