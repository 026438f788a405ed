package replication

import (
	"log/slog"
	"sync"

	"github.com/eapache/queue"
	"github.com/shrtyk/raft-replicator/api"
)

// leadershipEvents decouples the leader locator's callback goroutine from
// the tracker wake-all: callbacks only enqueue, a dispatcher goroutine
// drains the queue and triggers the replication event. The locator is never
// blocked by waiters.
type leadershipEvents struct {
	tracker ProgressTracker
	logger  *slog.Logger

	mu     sync.Mutex
	queue  *queue.Queue
	signal chan struct{}

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func newLeadershipEvents(tracker ProgressTracker, logger *slog.Logger) *leadershipEvents {
	e := &leadershipEvents{
		tracker: tracker,
		logger:  logger,
		queue:   queue.New(),
		signal:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	e.wg.Add(1)
	go e.dispatch()
	return e
}

// Submit enqueues a leadership event. Never blocks.
func (e *leadershipEvents) Submit(info api.LeaderInfo) {
	e.mu.Lock()
	e.queue.Add(info)
	e.mu.Unlock()

	select {
	case e.signal <- struct{}{}:
	default:
	}
}

func (e *leadershipEvents) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
	})
	e.wg.Wait()
}

func (e *leadershipEvents) dispatch() {
	defer e.wg.Done()

	for {
		select {
		case <-e.done:
			return
		case <-e.signal:
			for {
				e.mu.Lock()
				if e.queue.Length() == 0 {
					e.mu.Unlock()
					break
				}
				info := e.queue.Remove().(api.LeaderInfo)
				e.mu.Unlock()

				e.logger.Debug("leader switch observed, waking blocked replications",
					slog.String("leader", string(info.Leader)),
					slog.Int64("term", info.Term))
				e.tracker.TriggerReplicationEvent()
			}
		}
	}
}
