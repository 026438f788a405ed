package api

import "fmt"

// MemberID identifies a single member of the consensus cluster.
type MemberID string

// ReplicatedContent is an opaque, serializable command payload. The
// replication layer never inspects it.
type ReplicatedContent []byte

// GlobalSession identifies one logical session of operations. A session is
// held by at most one in-flight operation context at a time.
type GlobalSession struct {
	ID    uint64
	Owner MemberID
}

// LocalOperationID is a sequence number scoped to one GlobalSession. It
// strictly increases per session and is never reused while the session is
// held.
type LocalOperationID int64

// DedupKey is the (session, sequence) pair the consensus state machine uses
// to detect and ignore duplicate applications caused by retries.
type DedupKey struct {
	Session     GlobalSession
	OperationID LocalOperationID
}

func (k DedupKey) String() string {
	return fmt.Sprintf("session %d/%s op %d", k.Session.ID, k.Session.Owner, k.OperationID)
}

// DistributedOperation is the unit handed to the consensus layer: a command
// payload bound to its deduplication identity. Immutable once created.
type DistributedOperation struct {
	Content     ReplicatedContent
	Session     GlobalSession
	OperationID LocalOperationID
}

func (op DistributedOperation) DedupKey() DedupKey {
	return DedupKey{Session: op.Session, OperationID: op.OperationID}
}

func (op DistributedOperation) String() string {
	return fmt.Sprintf("DistributedOperation{%s, %d bytes}", op.DedupKey(), len(op.Content))
}

// NewEntryRequest is the message shape handed to the outbound transport when
// proposing a new operation to the leader.
type NewEntryRequest struct {
	Origin    MemberID
	Operation DistributedOperation
}
