package replication

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shrtyk/raft-replicator/api"
	"github.com/shrtyk/raft-replicator/pkg/availability"
	"github.com/shrtyk/raft-replicator/pkg/logger"
	"github.com/shrtyk/raft-replicator/pkg/monitoring"
	"github.com/shrtyk/raft-replicator/pkg/timeout"
)

//go:generate mockgen -destination=mocks_test.go -package=replication github.com/shrtyk/raft-replicator/api LeaderLocator,Outbound,AvailabilityGuard,ReplicationMonitor

var (
	_ api.Replicator     = (*Replicator)(nil)
	_ api.LeaderListener = (*Replicator)(nil)
)

// leaderInvalidator is implemented by locators that cache leadership, such
// as cluster.Locator. A failed send marks the cached leader stale so the
// next resolution discovers anew instead of serving a dead member forever.
type leaderInvalidator interface {
	Invalidate(api.MemberID)
}

// Replicator drives the submit/retry/timeout state machine. Each call to
// Replicate runs its own instance of the loop to completion; retries of one
// operation are strictly sequential, so at most one send is in flight per
// dedup key.
type Replicator struct {
	me       api.MemberID
	outbound api.Outbound
	tracker  ProgressTracker
	sessions *LocalSessionPool

	locator api.LeaderLocator
	guard   api.AvailabilityGuard
	monitor api.ReplicationMonitor

	progressStrategy    timeout.Strategy
	leaderStrategy      timeout.Strategy
	availabilityTimeout time.Duration

	events *leadershipEvents
	logger *slog.Logger
}

// NewReplicator wires a replicator and registers it as a leader-switch
// listener with the locator. Most users should go through
// NewReplicatorBuilder instead.
func NewReplicator(
	cfg *api.ReplicationConfig,
	me api.MemberID,
	locator api.LeaderLocator,
	outbound api.Outbound,
	guard api.AvailabilityGuard,
	monitor api.ReplicationMonitor,
	log *slog.Logger,
) *Replicator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logger.NewLogger(cfg.Log.Env, false).With(slog.String("me", string(me)))
	}
	if guard == nil {
		guard = availability.NewGuard()
	}
	if monitor == nil {
		monitor = monitoring.NewNop()
	}

	tracker := NewProgressTracker(log)
	r := &Replicator{
		me:                  me,
		outbound:            outbound,
		tracker:             tracker,
		sessions:            NewLocalSessionPool(me),
		locator:             locator,
		guard:               guard,
		monitor:             monitor,
		progressStrategy:    timeout.Exponential(cfg.Timings.ProgressTimeoutBase, cfg.Timings.ProgressTimeoutCap),
		leaderStrategy:      timeout.Exponential(cfg.Timings.LeaderTimeoutBase, cfg.Timings.LeaderTimeoutCap),
		availabilityTimeout: cfg.Timings.AvailabilityTimeout,
		events:              newLeadershipEvents(tracker, log),
		logger:              log,
	}

	locator.RegisterListener(r)
	return r
}

// Tracker exposes the progress tracker so the commit-notification side (see
// CommitApplier) can resolve operations.
func (r *Replicator) Tracker() ProgressTracker {
	return r.tracker
}

// SessionPool exposes the session pool, mainly for leak checks in tests and
// metrics.
func (r *Replicator) SessionPool() *LocalSessionPool {
	return r.sessions
}

// Close stops the leadership event dispatcher. In-flight Replicate calls
// are not interrupted; cancel their contexts instead.
func (r *Replicator) Close() {
	r.events.Close()
}

// OnLeaderSwitch implements api.LeaderListener. Its only effect is waking
// blocked waiters so retries react promptly to topology changes.
func (r *Replicator) OnLeaderSwitch(info api.LeaderInfo) {
	r.events.Submit(info)
}

// Replicate submits content to the cluster and blocks until it has been
// observed committed. See api.Replicator for the full contract.
func (r *Replicator) Replicate(ctx context.Context, content api.ReplicatedContent, trackResult bool) (api.Future, error) {
	// A resolution failure before any session was acquired fails the whole
	// call; inside the retry loop the same failure is retried.
	leader, err := r.locator.Leader()
	if err != nil {
		return nil, fmt.Errorf("replication aborted since no leader was available: %w", err)
	}
	return r.replicate(ctx, content, trackResult, leader)
}

func (r *Replicator) replicate(
	ctx context.Context,
	content api.ReplicatedContent,
	trackResult bool,
	leader api.MemberID,
) (future api.Future, err error) {
	r.monitor.StartReplication()
	start := time.Now()
	defer func() {
		if err != nil {
			r.monitor.FailedReplication(err, time.Since(start))
		}
	}()

	octx := r.sessions.AcquireSession()
	op := api.DistributedOperation{
		Content:     content,
		Session:     octx.GlobalSession(),
		OperationID: octx.NextOperationID(),
	}

	progress, err := r.tracker.Start(op)
	if err != nil {
		r.sessions.ReleaseSession(octx)
		return nil, err
	}

	progressTimeout := r.progressStrategy.NewTimeout()
	leaderTimeout := r.leaderStrategy.NewTimeout()
	attempts := 0
	for {
		if cerr := ctx.Err(); cerr != nil {
			r.abort(op, octx)
			return nil, fmt.Errorf("interrupted while replicating: %w", cerr)
		}

		attempts++
		if attempts > 1 {
			r.logger.Info("retrying replication",
				slog.Int("attempt", attempts),
				slog.String("operation", op.String()))
		}
		r.monitor.ReplicationAttempt()

		if err := r.assertAvailable(ctx); err != nil {
			r.abort(op, octx)
			return nil, err
		}

		sendErr := r.outbound.Send(ctx, leader, &api.NewEntryRequest{Origin: r.me, Operation: op}, true)
		if sendErr == nil {
			if err := progress.AwaitReplication(ctx, progressTimeout.Duration()); err != nil {
				r.abort(op, octx)
				return nil, fmt.Errorf("interrupted while replicating: %w", err)
			}
			if progress.IsReplicated() {
				break
			}
			progressTimeout.Increment()
		} else {
			// The leader is currently unreachable. Drop it from the locator
			// cache and back off before re-resolving, same as a failed
			// resolution.
			r.logger.Warn("failed to send operation to leader",
				slog.String("leader", string(leader)),
				logger.ErrAttr(sendErr))
			if inv, ok := r.locator.(leaderInvalidator); ok {
				inv.Invalidate(leader)
			}
			if serr := r.sleep(ctx, leaderTimeout.Duration()); serr != nil {
				r.abort(op, octx)
				return nil, fmt.Errorf("interrupted while replicating: %w", serr)
			}
			leaderTimeout.Increment()
		}

		newLeader, leaderErr := r.locator.Leader()
		if leaderErr != nil {
			r.logger.Debug("could not replicate because no leader was found, retrying",
				slog.String("operation", op.String()),
				logger.ErrAttr(leaderErr))
			if err := r.sleep(ctx, leaderTimeout.Duration()); err != nil {
				r.abort(op, octx)
				return nil, fmt.Errorf("interrupted while replicating: %w", err)
			}
			leaderTimeout.Increment()
			continue
		}
		leader = newLeader
	}

	// The session is released exactly once whether or not the caller wants
	// the result tracked. With tracking on, release waits for the result so
	// the dedup key stays reserved until the operation fully resolves.
	if trackResult {
		done := progress.Result().Done()
		go func() {
			<-done
			r.sessions.ReleaseSession(octx)
		}()
	} else {
		r.sessions.ReleaseSession(octx)
	}

	r.monitor.SuccessfulReplication(time.Since(start))
	return progress.Result(), nil
}

func (r *Replicator) abort(op api.DistributedOperation, octx *OperationContext) {
	r.tracker.Abort(op)
	r.sessions.ReleaseSession(octx)
}

func (r *Replicator) assertAvailable(ctx context.Context) error {
	if err := r.guard.Await(ctx, r.availabilityTimeout); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("interrupted while replicating: %w", err)
		}
		return fmt.Errorf("local member is not available, operation cannot be replicated: %w", err)
	}
	return nil
}

func (r *Replicator) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
