package replication

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shrtyk/raft-replicator/api"
	"github.com/shrtyk/raft-replicator/pkg/logger"
)

// SessionTracker is the state-machine side of the dedup protocol: it
// remembers the last accepted sequence number per session and rejects
// anything that is not the immediate successor. Retried sends therefore
// collapse into exactly one accepted application.
type SessionTracker struct {
	mu           sync.Mutex
	lastSequence map[api.GlobalSession]api.LocalOperationID
}

func NewSessionTracker() *SessionTracker {
	return &SessionTracker{
		lastSequence: make(map[api.GlobalSession]api.LocalOperationID),
	}
}

// Accept validates key against the session's sequence discipline and, when
// valid, records it. The first operation of a session must carry sequence 0;
// every following one exactly the previous plus one. Anything else is a
// duplicate or a gap and is rejected.
func (st *SessionTracker) Accept(key api.DedupKey) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	last, seen := st.lastSequence[key.Session]
	if !seen {
		if key.OperationID != 0 {
			return false
		}
	} else if key.OperationID != last+1 {
		return false
	}

	st.lastSequence[key.Session] = key.OperationID
	return true
}

// SessionCount returns the number of sessions observed so far.
func (st *SessionTracker) SessionCount() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.lastSequence)
}

// CommitApplier consumes committed operations from the consensus layer,
// filters duplicates through a SessionTracker, applies payloads to the
// application state machine and resolves the matching progress entries.
type CommitApplier struct {
	commits  <-chan api.DistributedOperation
	sessions *SessionTracker
	applier  api.ContentApplier
	tracker  ProgressTracker
	logger   *slog.Logger

	ctx    context.Context
	cancel func()
	wg     sync.WaitGroup
}

func NewCommitApplier(
	commits <-chan api.DistributedOperation,
	applier api.ContentApplier,
	tracker ProgressTracker,
	log *slog.Logger,
) *CommitApplier {
	ctx, cancel := context.WithCancel(context.Background())
	return &CommitApplier{
		commits:  commits,
		sessions: NewSessionTracker(),
		applier:  applier,
		tracker:  tracker,
		logger:   log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the background apply loop.
func (a *CommitApplier) Start() {
	a.wg.Add(1)
	go a.run()
}

// Stop terminates the apply loop and waits for it to drain.
func (a *CommitApplier) Stop() {
	a.cancel()
	a.wg.Wait()
}

func (a *CommitApplier) run() {
	defer a.wg.Done()

	for {
		select {
		case <-a.ctx.Done():
			return
		case op, ok := <-a.commits:
			if !ok {
				return
			}
			a.apply(op)
		}
	}
}

func (a *CommitApplier) apply(op api.DistributedOperation) {
	key := op.DedupKey()

	// Commit notifications are at-least-once: the key is marked replicated
	// even when the application itself turns out to be a duplicate.
	a.tracker.TrackReplicated(key)

	if !a.sessions.Accept(key) {
		a.logger.Debug("skipping duplicate or out-of-order operation",
			slog.String("key", key.String()))
		return
	}

	result, err := a.applier.Apply(op.Content)
	if err != nil {
		a.logger.Warn("content applier failed", logger.ErrAttr(err))
	}
	a.tracker.TrackResult(key, result, err)
}
