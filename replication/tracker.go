package replication

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/shrtyk/raft-replicator/api"
)

// ProgressTracker tracks outstanding operations keyed by their dedup keys.
// It is driven from two sides: callers registering and awaiting operations,
// and the consensus layer's asynchronous commit notifications.
type ProgressTracker interface {
	// Start registers a new tracking entry for op. Fails with
	// api.ErrDuplicateOperation if the dedup key is already tracked, which
	// indicates broken session/sequence discipline.
	Start(op api.DistributedOperation) (*Progress, error)

	// TrackReplicated is the commit notification hook: it marks the keyed
	// operation replicated and wakes its waiter. Unknown keys are ignored
	// since commit notifications are delivered at least once.
	TrackReplicated(key api.DedupKey)

	// TrackResult fulfills the keyed operation's result and removes the
	// entry.
	TrackResult(key api.DedupKey, value any, err error)

	// Abort removes the entry for op and fails its result with
	// api.ErrAborted.
	Abort(op api.DistributedOperation)

	// TriggerReplicationEvent wakes all blocked waiters without marking
	// them replicated, so retries can react to leader turnover without
	// waiting out a stale timeout.
	TriggerReplicationEvent()

	// InProgressCount returns the number of tracked entries.
	InProgressCount() int
}

var _ ProgressTracker = (*progressTracker)(nil)

type progressTracker struct {
	mu      sync.Mutex
	entries map[api.DedupKey]*Progress
	logger  *slog.Logger
}

func NewProgressTracker(logger *slog.Logger) ProgressTracker {
	return &progressTracker{
		entries: make(map[api.DedupKey]*Progress),
		logger:  logger,
	}
}

func (t *progressTracker) Start(op api.DistributedOperation) (*Progress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := op.DedupKey()
	if _, ok := t.entries[key]; ok {
		return nil, fmt.Errorf("cannot track %s: %w", key, api.ErrDuplicateOperation)
	}

	p := newProgress(op)
	t.entries[key] = p
	return p, nil
}

func (t *progressTracker) TrackReplicated(key api.DedupKey) {
	t.mu.Lock()
	p, ok := t.entries[key]
	t.mu.Unlock()

	if !ok {
		// Late or repeated notification for an operation already resolved.
		t.logger.Debug("ignoring commit notification for untracked operation",
			slog.String("key", key.String()))
		return
	}
	p.markReplicated()
}

func (t *progressTracker) TrackResult(key api.DedupKey, value any, err error) {
	t.mu.Lock()
	p, ok := t.entries[key]
	if ok {
		delete(t.entries, key)
	}
	t.mu.Unlock()

	if !ok {
		return
	}
	p.result.Complete(value, err)
}

func (t *progressTracker) Abort(op api.DistributedOperation) {
	key := op.DedupKey()

	t.mu.Lock()
	p, ok := t.entries[key]
	if ok {
		delete(t.entries, key)
	}
	t.mu.Unlock()

	if !ok {
		return
	}
	p.result.Complete(nil, fmt.Errorf("%s: %w", key, api.ErrAborted))
	p.wake()
}

func (t *progressTracker) TriggerReplicationEvent() {
	t.mu.Lock()
	waiters := make([]*Progress, 0, len(t.entries))
	for _, p := range t.entries {
		waiters = append(waiters, p)
	}
	t.mu.Unlock()

	for _, p := range waiters {
		p.wake()
	}
}

func (t *progressTracker) InProgressCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
