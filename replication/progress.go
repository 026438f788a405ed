package replication

import (
	"context"
	"sync"
	"time"

	"github.com/shrtyk/raft-replicator/api"
)

var _ api.Future = (*Future)(nil)

// Future is a one-shot completion cell. The first Complete wins; later
// completions are dropped.
type Future struct {
	mu    sync.Mutex
	done  chan struct{}
	value any
	err   error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Complete fulfills the future. Returns false if it was already fulfilled.
func (f *Future) Complete(value any, err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	select {
	case <-f.done:
		return false
	default:
	}

	f.value = value
	f.err = err
	close(f.done)
	return true
}

func (f *Future) Done() <-chan struct{} {
	return f.done
}

func (f *Future) Result(ctx context.Context) (any, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err
	}
}

// Progress tracks one in-flight operation: whether it has been observed
// committed and, separately, the result of its application.
type Progress struct {
	op     api.DistributedOperation
	result *Future

	mu         sync.Mutex
	replicated bool
	// signal is closed to wake the waiter, then replaced. Closed both when
	// the operation is marked replicated and on leader-switch events.
	signal chan struct{}
}

func newProgress(op api.DistributedOperation) *Progress {
	return &Progress{
		op:     op,
		result: newFuture(),
		signal: make(chan struct{}),
	}
}

func (p *Progress) Operation() api.DistributedOperation {
	return p.op
}

// Result returns the future fulfilled with the applied operation's result.
func (p *Progress) Result() *Future {
	return p.result
}

func (p *Progress) IsReplicated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.replicated
}

// AwaitReplication blocks until the operation is marked replicated, a wake
// event fires, the timeout elapses or ctx is cancelled. Only cancellation
// is an error; the caller must re-check IsReplicated afterwards.
func (p *Progress) AwaitReplication(ctx context.Context, timeout time.Duration) error {
	p.mu.Lock()
	if p.replicated {
		p.mu.Unlock()
		return nil
	}
	signal := p.signal
	p.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-signal:
		return nil
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// markReplicated records the commit observation and wakes the waiter.
func (p *Progress) markReplicated() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.replicated {
		return
	}
	p.replicated = true
	close(p.signal)
}

// wake wakes a blocked waiter without marking the operation replicated, so
// the replicator can reassess whether a resend is needed.
func (p *Progress) wake() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.replicated {
		return
	}
	close(p.signal)
	p.signal = make(chan struct{})
}
