package api

import (
	"time"

	"github.com/shrtyk/raft-replicator/pkg/logger"
)

type ReplicationConfig struct {
	Log     LoggerCfg
	Timings ReplicationTimings
}

type LoggerCfg struct {
	Env logger.Enviroment
}

type ReplicationTimings struct {
	// ProgressTimeoutBase is the first wait bound on commit progress before
	// a resend; it grows up to ProgressTimeoutCap on repeated timeouts.
	ProgressTimeoutBase time.Duration
	ProgressTimeoutCap  time.Duration

	// LeaderTimeoutBase is the first sleep after a failed leader resolution;
	// it grows up to LeaderTimeoutCap on repeated failures.
	LeaderTimeoutBase time.Duration
	LeaderTimeoutCap  time.Duration

	// AvailabilityTimeout bounds the availability guard wait before a send.
	AvailabilityTimeout time.Duration

	// RPCTimeout bounds a single outbound RPC.
	RPCTimeout time.Duration
}
