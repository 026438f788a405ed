package replication

import (
	"errors"
	"log/slog"

	"github.com/shrtyk/raft-replicator/api"
	"github.com/shrtyk/raft-replicator/pkg/timeout"
)

type replicatorBuilder struct {
	// required
	me       api.MemberID
	locator  api.LeaderLocator
	outbound api.Outbound

	// optional with defaults
	cfg              *api.ReplicationConfig
	logger           *slog.Logger
	monitor          api.ReplicationMonitor
	guard            api.AvailabilityGuard
	progressStrategy timeout.Strategy
	leaderStrategy   timeout.Strategy
}

func NewReplicatorBuilder(
	me api.MemberID,
	locator api.LeaderLocator,
	outbound api.Outbound,
) api.ReplicatorBuilder {
	return &replicatorBuilder{
		me:       me,
		locator:  locator,
		outbound: outbound,
		cfg:      DefaultConfig(),
	}
}

func (b *replicatorBuilder) Build() (api.Replicator, error) {
	if b.locator == nil {
		return nil, errors.New("builder: leader locator is required")
	}
	if b.outbound == nil {
		return nil, errors.New("builder: outbound transport is required")
	}

	r := NewReplicator(b.cfg, b.me, b.locator, b.outbound, b.guard, b.monitor, b.logger)
	if b.progressStrategy != nil {
		r.progressStrategy = b.progressStrategy
	}
	if b.leaderStrategy != nil {
		r.leaderStrategy = b.leaderStrategy
	}
	return r, nil
}

func (b *replicatorBuilder) WithConfig(cfg *api.ReplicationConfig) api.ReplicatorBuilder {
	b.cfg = cfg
	return b
}

func (b *replicatorBuilder) WithLogger(l *slog.Logger) api.ReplicatorBuilder {
	b.logger = l
	return b
}

func (b *replicatorBuilder) WithMonitor(m api.ReplicationMonitor) api.ReplicatorBuilder {
	b.monitor = m
	return b
}

func (b *replicatorBuilder) WithAvailabilityGuard(g api.AvailabilityGuard) api.ReplicatorBuilder {
	b.guard = g
	return b
}

func (b *replicatorBuilder) WithProgressStrategy(s timeout.Strategy) api.ReplicatorBuilder {
	b.progressStrategy = s
	return b
}

func (b *replicatorBuilder) WithLeaderStrategy(s timeout.Strategy) api.ReplicatorBuilder {
	b.leaderStrategy = s
	return b
}
