// Package availability provides the default availability guard: a
// requirement counter that callers block on until the local member is ready
// to serve.
package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shrtyk/raft-replicator/api"
)

var _ api.AvailabilityGuard = (*Guard)(nil)

// Guard is available while no requirements are outstanding. Subsystems
// register requirements during startup or degradation (Require) and clear
// them when ready again (Fulfill). Shutdown makes the guard fail
// permanently.
type Guard struct {
	mu           sync.Mutex
	requirements map[string]struct{}
	// available is closed while no requirements are outstanding and
	// replaced with an open channel when one appears.
	available chan struct{}
	shutdown  bool
}

func NewGuard() *Guard {
	available := make(chan struct{})
	close(available)
	return &Guard{
		requirements: make(map[string]struct{}),
		available:    available,
	}
}

// Require marks the member unavailable until the reason is fulfilled.
func (g *Guard) Require(reason string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.requirements[reason]; ok {
		return
	}
	if len(g.requirements) == 0 {
		g.available = make(chan struct{})
	}
	g.requirements[reason] = struct{}{}
}

// Fulfill clears a requirement. When the last one is cleared, all waiters
// are released.
func (g *Guard) Fulfill(reason string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.requirements[reason]; !ok {
		return
	}
	delete(g.requirements, reason)
	if len(g.requirements) == 0 && !g.shutdown {
		close(g.available)
	}
}

// Shutdown makes every current and future Await fail immediately.
func (g *Guard) Shutdown() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.shutdown {
		return
	}
	g.shutdown = true
	if len(g.requirements) == 0 {
		// Waiters block on the requirements channel only when requirements
		// exist; replace the closed channel so they observe the shutdown.
		g.available = make(chan struct{})
	}
}

// Await blocks until the guard is available, for at most timeout.
func (g *Guard) Await(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for {
		g.mu.Lock()
		if g.shutdown {
			g.mu.Unlock()
			return fmt.Errorf("guard is shut down: %w", api.ErrUnavailable)
		}
		if len(g.requirements) == 0 {
			g.mu.Unlock()
			return nil
		}
		available := g.available
		reasons := len(g.requirements)
		g.mu.Unlock()

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return fmt.Errorf("%d outstanding requirements after %v: %w",
				reasons, timeout, api.ErrUnavailable)
		}

		timer := time.NewTimer(remaining)
		select {
		case <-available:
			timer.Stop()
			// Loop to re-check: a new requirement may have appeared.
		case <-timer.C:
			return fmt.Errorf("%d outstanding requirements after %v: %w",
				reasons, timeout, api.ErrUnavailable)
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}
