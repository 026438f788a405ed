package cluster

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shrtyk/raft-replicator/api"
	"github.com/shrtyk/raft-replicator/pkg/logger"
	"github.com/shrtyk/raft-replicator/pkg/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProber serves scripted leadership views per member.
type fakeProber struct {
	mu     sync.Mutex
	views  map[api.MemberID]*transport.LeaderResponse
	errs   map[api.MemberID]error
	probes int
}

func (p *fakeProber) ProbeLeader(_ context.Context, member api.MemberID) (*transport.LeaderResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probes++
	if err, ok := p.errs[member]; ok {
		return nil, err
	}
	if v, ok := p.views[member]; ok {
		return v, nil
	}
	return &transport.LeaderResponse{IsLeader: false}, nil
}

func (p *fakeProber) setLeader(member api.MemberID, term int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.views = map[api.MemberID]*transport.LeaderResponse{
		member: {IsLeader: true, Leader: member, Term: term},
	}
	p.errs = nil
}

type recordingListener struct {
	mu       sync.Mutex
	switches []api.LeaderInfo
}

func (r *recordingListener) OnLeaderSwitch(info api.LeaderInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.switches = append(r.switches, info)
}

func (r *recordingListener) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.switches)
}

func newTestLocator(p MemberProber) *Locator {
	_, log := logger.NewTestLogger()
	return NewLocator([]api.MemberID{"m0", "m1", "m2"}, p, 50*time.Millisecond, log)
}

func TestLocatorDiscoversLeader(t *testing.T) {
	prober := &fakeProber{}
	prober.setLeader("m1", 2)
	l := newTestLocator(prober)

	leader, err := l.Leader()
	require.NoError(t, err)
	assert.Equal(t, api.MemberID("m1"), leader)
}

func TestLocatorCachesLeader(t *testing.T) {
	prober := &fakeProber{}
	prober.setLeader("m1", 2)
	l := newTestLocator(prober)

	_, err := l.Leader()
	require.NoError(t, err)

	prober.mu.Lock()
	probesAfterDiscovery := prober.probes
	prober.mu.Unlock()

	for range 5 {
		leader, err := l.Leader()
		require.NoError(t, err)
		assert.Equal(t, api.MemberID("m1"), leader)
	}

	prober.mu.Lock()
	assert.Equal(t, probesAfterDiscovery, prober.probes, "cached resolution must not probe")
	prober.mu.Unlock()
}

func TestLocatorInvalidateForcesRediscovery(t *testing.T) {
	prober := &fakeProber{}
	prober.setLeader("m1", 2)
	l := newTestLocator(prober)

	leader, err := l.Leader()
	require.NoError(t, err)
	require.Equal(t, api.MemberID("m1"), leader)

	prober.setLeader("m2", 3)
	l.Invalidate("m1")

	leader, err = l.Leader()
	require.NoError(t, err)
	assert.Equal(t, api.MemberID("m2"), leader)
}

func TestLocatorInvalidateIgnoresStaleMember(t *testing.T) {
	prober := &fakeProber{}
	prober.setLeader("m1", 2)
	l := newTestLocator(prober)

	_, err := l.Leader()
	require.NoError(t, err)

	l.Invalidate("m0")

	leader, err := l.Leader()
	require.NoError(t, err)
	assert.Equal(t, api.MemberID("m1"), leader)
}

func TestLocatorNoLeaderFound(t *testing.T) {
	prober := &fakeProber{
		errs: map[api.MemberID]error{
			"m0": errors.New("down"),
			"m1": errors.New("down"),
			"m2": errors.New("down"),
		},
	}
	l := newTestLocator(prober)

	_, err := l.Leader()
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrNoLeaderFound)
}

func TestLocatorNotifiesListenersOnSwitch(t *testing.T) {
	prober := &fakeProber{}
	prober.setLeader("m1", 2)
	l := newTestLocator(prober)

	listener := &recordingListener{}
	l.RegisterListener(listener)

	_, err := l.Leader()
	require.NoError(t, err)
	require.Equal(t, 1, listener.count())

	prober.setLeader("m2", 3)
	l.Invalidate("m1")
	_, err = l.Leader()
	require.NoError(t, err)

	require.Equal(t, 2, listener.count())
	listener.mu.Lock()
	defer listener.mu.Unlock()
	assert.Equal(t, api.LeaderInfo{Leader: "m2", Term: 3}, listener.switches[1])
}

func TestLocatorReportInstallsView(t *testing.T) {
	prober := &fakeProber{}
	prober.setLeader("m1", 2)
	l := newTestLocator(prober)

	listener := &recordingListener{}
	l.RegisterListener(listener)

	l.Report(api.LeaderInfo{Leader: "m0", Term: 9})

	leader, err := l.Leader()
	require.NoError(t, err)
	assert.Equal(t, api.MemberID("m0"), leader)
	assert.Equal(t, 1, listener.count())
}
