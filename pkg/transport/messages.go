// Package transport provides the default gRPC wiring for the replication
// protocol: an Outbound implementation for proposing operations to the
// leader, a leadership probe used by the cluster locator, and the inbound
// server a consensus node hosts to receive both.
package transport

import "github.com/shrtyk/raft-replicator/api"

const (
	serviceName = "replication.Replication"

	newEntryMethod = "/replication.Replication/NewEntry"
	leaderMethod   = "/replication.Replication/Leader"
)

// NewEntryResponse acknowledges that a proposed operation was received by
// the target member. It says nothing about the commit outcome; that arrives
// through the consensus layer's apply stream.
type NewEntryResponse struct {
	Accepted bool
}

// LeaderRequest asks a member for its current leadership view.
type LeaderRequest struct{}

// LeaderResponse carries one member's leadership view.
type LeaderResponse struct {
	IsLeader bool
	Leader   api.MemberID
	Term     int64
}
