// Package cluster provides the default leader locator: it probes cluster
// members for their leadership view, caches the answer and notifies
// registered listeners about leader turnover.
package cluster

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shrtyk/raft-replicator/api"
	"github.com/shrtyk/raft-replicator/internal/cbreaker"
	"github.com/shrtyk/raft-replicator/internal/retry"
	"github.com/shrtyk/raft-replicator/pkg/logger"
	"github.com/shrtyk/raft-replicator/pkg/transport"
)

const noLeader = api.MemberID("")

var _ api.LeaderLocator = (*Locator)(nil)

// MemberProber asks one member for its leadership view. Implemented by
// transport.GRPCOutbound.
type MemberProber interface {
	ProbeLeader(ctx context.Context, member api.MemberID) (*transport.LeaderResponse, error)
}

// Locator is a thread-safe leader resolver. The cached leader is used until
// it is invalidated by a failed send or a contradicting probe; discovery
// probes all members concurrently and takes the first self-reported leader.
type Locator struct {
	prober       MemberProber
	members      []api.MemberID
	probeTimeout time.Duration
	logger       *slog.Logger

	mu        sync.RWMutex
	leader    api.MemberID
	term      int64
	listeners []api.LeaderListener

	breakers map[api.MemberID]*cbreaker.CircuitBreaker
}

func NewLocator(
	members []api.MemberID,
	prober MemberProber,
	probeTimeout time.Duration,
	log *slog.Logger,
) *Locator {
	l := &Locator{
		prober:       prober,
		members:      members,
		probeTimeout: probeTimeout,
		logger:       log,
		leader:       noLeader,
		breakers:     make(map[api.MemberID]*cbreaker.CircuitBreaker, len(members)),
	}
	for _, m := range members {
		l.breakers[m] = cbreaker.NewCircuitBreaker(3, 1, 2*time.Second)
	}
	return l
}

// Leader returns the cached leader, discovering one if necessary.
func (l *Locator) Leader() (api.MemberID, error) {
	l.mu.RLock()
	leader := l.leader
	l.mu.RUnlock()
	if leader != noLeader {
		return leader, nil
	}

	var resp *transport.LeaderResponse
	err := retry.Do(context.Background(), func(ctx context.Context) error {
		var derr error
		resp, derr = l.discover(ctx)
		return derr
	}, retry.WithMaxAttempts(2), retry.WithBaseDelay(l.probeTimeout/2))
	if err != nil {
		return noLeader, fmt.Errorf("leader discovery failed: %w", api.ErrNoLeaderFound)
	}

	l.setLeader(resp.Leader, resp.Term)
	return resp.Leader, nil
}

// RegisterListener subscribes to leader turnover notifications.
func (l *Locator) RegisterListener(listener api.LeaderListener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, listener)
}

// Invalidate drops the cached leader if it still matches the given member.
// Callers invoke it after a failed send so the next resolution probes anew.
func (l *Locator) Invalidate(member api.MemberID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.leader == member {
		l.leader = noLeader
	}
}

// Report installs an externally observed leadership view, e.g. from a
// response that named a different leader. Listeners are notified when the
// view changed.
func (l *Locator) Report(info api.LeaderInfo) {
	l.setLeader(info.Leader, info.Term)
}

func (l *Locator) setLeader(leader api.MemberID, term int64) {
	l.mu.Lock()
	changed := l.leader != leader && leader != noLeader
	if changed || term > l.term {
		l.leader = leader
		l.term = term
	}
	listeners := append([]api.LeaderListener(nil), l.listeners...)
	l.mu.Unlock()

	if !changed {
		return
	}
	l.logger.Info("leader changed",
		slog.String("leader", string(leader)), slog.Int64("term", term))
	for _, listener := range listeners {
		listener.OnLeaderSwitch(api.LeaderInfo{Leader: leader, Term: term})
	}
}

// discover probes all members concurrently and returns the first view whose
// member claims leadership.
func (l *Locator) discover(ctx context.Context) (*transport.LeaderResponse, error) {
	var wg sync.WaitGroup
	respChan := make(chan *transport.LeaderResponse, 1)

	tctx, tcancel := context.WithTimeout(ctx, l.probeTimeout)
	defer tcancel()

	for _, member := range l.members {
		wg.Add(1)
		go func(m api.MemberID) {
			defer wg.Done()
			r, err := cbreaker.Do(tctx, l.breakers[m], func(ctx context.Context) (*transport.LeaderResponse, error) {
				return l.prober.ProbeLeader(ctx, m)
			})
			if err != nil {
				if ctx.Err() == nil {
					l.logger.Debug("leadership probe failed",
						slog.String("member", string(m)), logger.ErrAttr(err))
				}
				return
			}

			if r.IsLeader {
				select {
				case respChan <- r:
				default:
				}
			}
		}(member)
	}

	go func() {
		wg.Wait()
		close(respChan)
	}()

	select {
	case <-tctx.Done():
		return nil, tctx.Err()
	case r, ok := <-respChan:
		if !ok {
			return nil, fmt.Errorf("no member claims leadership")
		}
		return r, nil
	}
}
