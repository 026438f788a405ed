// Package replication implements the client-facing replication protocol:
// it wraps commands into deduplicated operations, submits them to the
// current consensus leader and retries through timeouts and leader turnover
// until the operation has been observed committed.
package replication

import (
	"fmt"
	"sync"

	"github.com/shrtyk/raft-replicator/api"
)

// localSession is a reusable session identity with its sequence counter.
// Sequence numbers keep increasing across reacquisitions of the same
// session, which is what keeps (session, sequence) pairs unique.
type localSession struct {
	id      uint64
	nextSeq api.LocalOperationID
}

func (s *localSession) nextOperationID() api.LocalOperationID {
	id := s.nextSeq
	s.nextSeq++
	return id
}

// OperationContext is the live binding of one acquired session. It is owned
// exclusively by the caller replicating through it until released.
type OperationContext struct {
	session  api.GlobalSession
	local    *localSession
	released bool
}

func (c *OperationContext) GlobalSession() api.GlobalSession {
	return c.session
}

// NextOperationID allocates the next sequence number for this context's
// session. IDs strictly increase across calls.
func (c *OperationContext) NextOperationID() api.LocalOperationID {
	return c.local.nextOperationID()
}

// LocalSessionPool issues session handles for deduplicated operations. Each
// outstanding acquisition holds a session no other acquisition holds;
// sessions are created lazily and reused after release.
type LocalSessionPool struct {
	mu            sync.Mutex
	owner         api.MemberID
	free          []*localSession
	nextSessionID uint64
	open          int
}

func NewLocalSessionPool(owner api.MemberID) *LocalSessionPool {
	return &LocalSessionPool{owner: owner}
}

// AcquireSession returns a context bound to a session that is not held by
// any other outstanding acquisition.
func (p *LocalSessionPool) AcquireSession() *OperationContext {
	p.mu.Lock()
	defer p.mu.Unlock()

	var ls *localSession
	if n := len(p.free); n > 0 {
		ls = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		ls = &localSession{id: p.nextSessionID}
		p.nextSessionID++
	}

	p.open++
	return &OperationContext{
		session: api.GlobalSession{ID: ls.id, Owner: p.owner},
		local:   ls,
	}
}

// ReleaseSession returns the context's session to the pool. It must be
// called exactly once per acquisition; a second release would allow the
// same dedup key to be issued twice, so it panics instead.
func (p *LocalSessionPool) ReleaseSession(c *OperationContext) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c.released {
		panic(fmt.Sprintf("session %d/%s released twice", c.session.ID, c.session.Owner))
	}
	c.released = true

	p.free = append(p.free, c.local)
	p.open--
}

// OpenSessionCount returns the number of outstanding acquisitions.
func (p *LocalSessionPool) OpenSessionCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}
