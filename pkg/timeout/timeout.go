// Package timeout provides pluggable backoff policies for the replication
// retry loops. A Strategy is pure policy with no shared state: every call to
// NewTimeout returns an independent Timeout whose value never decreases and
// never exceeds the strategy's bound.
package timeout

import "time"

// Timeout is one independent, monotonically non-decreasing timeout value.
type Timeout interface {
	// Duration returns the current timeout value.
	Duration() time.Duration

	// Increment grows the timeout according to the strategy's curve.
	Increment()
}

// Strategy creates fresh Timeout instances.
type Strategy interface {
	NewTimeout() Timeout
}

type constantStrategy struct {
	d time.Duration
}

// Constant returns a strategy whose timeouts never grow.
func Constant(d time.Duration) Strategy {
	return constantStrategy{d: d}
}

func (s constantStrategy) NewTimeout() Timeout {
	return &constantTimeout{d: s.d}
}

type constantTimeout struct {
	d time.Duration
}

func (t *constantTimeout) Duration() time.Duration { return t.d }

func (t *constantTimeout) Increment() {}

type exponentialStrategy struct {
	base time.Duration
	cap  time.Duration
}

// Exponential returns a strategy whose timeouts double on every increment,
// bounded by cap.
func Exponential(base, cap time.Duration) Strategy {
	if cap < base {
		cap = base
	}
	return exponentialStrategy{base: base, cap: cap}
}

func (s exponentialStrategy) NewTimeout() Timeout {
	return &exponentialTimeout{cur: s.base, cap: s.cap}
}

type exponentialTimeout struct {
	cur time.Duration
	cap time.Duration
}

func (t *exponentialTimeout) Duration() time.Duration { return t.cur }

func (t *exponentialTimeout) Increment() {
	t.cur = min(t.cur*2, t.cap)
}
