package api

import (
	"log/slog"

	"github.com/shrtyk/raft-replicator/pkg/timeout"
)

// ReplicatorBuilder is an interface for constructing a Replicator.
type ReplicatorBuilder interface {
	// Build constructs and returns a new Replicator based on the
	// configurations provided to the builder. It returns an error if any
	// required collaborators are missing.
	Build() (Replicator, error)

	// WithConfig sets the replication configuration.
	// If not provided, a DefaultConfig will be used.
	WithConfig(*ReplicationConfig) ReplicatorBuilder

	// WithLogger sets a custom slog.Logger.
	// If not provided, a default logger based on the config's Log.Env
	// will be used.
	WithLogger(*slog.Logger) ReplicatorBuilder

	// WithMonitor sets a custom ReplicationMonitor.
	// If not provided, a no-op monitor will be used.
	WithMonitor(ReplicationMonitor) ReplicatorBuilder

	// WithAvailabilityGuard sets a custom AvailabilityGuard.
	// If not provided, an always-available guard will be used.
	WithAvailabilityGuard(AvailabilityGuard) ReplicatorBuilder

	// WithProgressStrategy sets the backoff policy for commit-progress waits.
	// If not provided, a capped exponential strategy derived from the config
	// timings will be used.
	WithProgressStrategy(timeout.Strategy) ReplicatorBuilder

	// WithLeaderStrategy sets the backoff policy for leader-resolution
	// retries. If not provided, a capped exponential strategy derived from
	// the config timings will be used.
	WithLeaderStrategy(timeout.Strategy) ReplicatorBuilder
}
