package phase

import (
	"testing"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockersFor_FiltersByTaggedPhase(t *testing.T) {
	snap := snapshotAtPhase(domain.PhaseInstall)
	snap.Blockers = []domain.ProjectBlocker{
		{ID: "b-1", Phases: []domain.Phase{domain.PhaseInstall}, Reason: "adhesive delivery delayed", Source: domain.BlockerFromDelivery},
		{ID: "b-2", Phases: []domain.Phase{domain.PhasePunch}, Reason: "critical punch item open", Source: domain.BlockerFromPunch},
	}

	got := BlockersFor(snap, domain.PhaseInstall)
	require.Len(t, got, 1)
	assert.Equal(t, "b-1", got[0].ID)

	got = BlockersFor(snap, domain.PhasePunch)
	require.Len(t, got, 1)
	assert.Equal(t, "b-2", got[0].ID)

	assert.Empty(t, BlockersFor(snap, domain.PhaseCure))
}

func TestBlockersFor_AnyPhaseBlockerFollowsCurrentPhase(t *testing.T) {
	snap := snapshotAtPhase(domain.PhaseInstall)
	snap.Blockers = []domain.ProjectBlocker{
		{ID: "b-1", Reason: "site flooded", Source: domain.BlockerManual},
	}

	require.Len(t, BlockersFor(snap, domain.PhaseInstall), 1, "untagged blocker lands on the current phase")
	assert.Empty(t, BlockersFor(snap, domain.PhaseDemo))
	assert.Empty(t, BlockersFor(snap, domain.PhasePunch))
}

func TestBlockersFor_ResolvedBlockersExcluded(t *testing.T) {
	snap := snapshotAtPhase(domain.PhaseInstall)
	resolved := testNow
	snap.Blockers = []domain.ProjectBlocker{
		{ID: "b-1", Phases: []domain.Phase{domain.PhaseInstall}, Reason: "flooring delayed", ResolvedAt: &resolved},
		{ID: "b-2", Phases: []domain.Phase{domain.PhaseInstall}, Reason: "underlayment delayed"},
	}

	got := BlockersFor(snap, domain.PhaseInstall)
	require.Len(t, got, 1)
	assert.Equal(t, "b-2", got[0].ID)
}

func TestBlockersFor_PreservesInsertionOrder(t *testing.T) {
	snap := snapshotAtPhase(domain.PhaseInstall)
	snap.Blockers = []domain.ProjectBlocker{
		{ID: "b-3", Phases: []domain.Phase{domain.PhaseInstall}},
		{ID: "b-1", Phases: []domain.Phase{domain.PhaseInstall}},
		{ID: "b-2", Phases: []domain.Phase{domain.PhaseInstall}},
	}

	got := BlockersFor(snap, domain.PhaseInstall)
	require.Len(t, got, 3)
	assert.Equal(t, "b-3", got[0].ID)
	assert.Equal(t, "b-1", got[1].ID)
	assert.Equal(t, "b-2", got[2].ID)
}

func TestBlockersFor_ReturnsSubsetOfInput(t *testing.T) {
	snap := snapshotAtPhase(domain.PhasePunch)
	snap.Blockers = []domain.ProjectBlocker{
		{ID: "b-1", Phases: []domain.Phase{domain.PhasePunch}},
		{ID: "b-2"},
		{ID: "b-3", Phases: []domain.Phase{domain.PhaseDemo, domain.PhasePunch}},
	}

	inputIDs := map[string]bool{}
	for _, b := range snap.Blockers {
		inputIDs[b.ID] = true
	}
	for _, p := range domain.PhaseOrder {
		for _, b := range BlockersFor(snap, p) {
			assert.True(t, inputIDs[b.ID], "returned blocker %s not in input", b.ID)
		}
	}
}
