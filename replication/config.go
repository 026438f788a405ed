package replication

import (
	"time"

	"github.com/shrtyk/raft-replicator/api"
	"github.com/shrtyk/raft-replicator/pkg/logger"
)

func DefaultConfig() *api.ReplicationConfig {
	return &api.ReplicationConfig{
		Log: api.LoggerCfg{
			Env: logger.Prod,
		},
		Timings: api.ReplicationTimings{
			ProgressTimeoutBase: 1 * time.Second,
			ProgressTimeoutCap:  30 * time.Second,
			LeaderTimeoutBase:   500 * time.Millisecond,
			LeaderTimeoutCap:    10 * time.Second,
			AvailabilityTimeout: 5 * time.Second,
			RPCTimeout:          1 * time.Second,
		},
	}
}

func TestsConfig() *api.ReplicationConfig {
	return &api.ReplicationConfig{
		Log: api.LoggerCfg{
			Env: logger.Dev,
		},
		Timings: api.ReplicationTimings{
			ProgressTimeoutBase: 20 * time.Millisecond,
			ProgressTimeoutCap:  100 * time.Millisecond,
			LeaderTimeoutBase:   10 * time.Millisecond,
			LeaderTimeoutCap:    50 * time.Millisecond,
			AvailabilityTimeout: 100 * time.Millisecond,
			RPCTimeout:          100 * time.Millisecond,
		},
	}
}
