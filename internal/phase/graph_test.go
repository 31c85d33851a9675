package phase

import (
	"testing"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sched(id string, startDay, endDay int, deps ...string) domain.SchedulePhase {
	return domain.SchedulePhase{
		ID:           id,
		Phase:        domain.PhaseInstall,
		StartDate:    day(startDay),
		EndDate:      day(endDay),
		Dependencies: deps,
	}
}

func TestBuildGraph_ResolvesDependencies(t *testing.T) {
	phases := []domain.SchedulePhase{
		sched("a", 1, 3),
		sched("b", 3, 5, "a"),
		sched("c", 5, 6, "a", "b"),
	}

	g, warnings := BuildGraph(phases)
	assert.Empty(t, warnings)

	deps := g.Dependencies("c")
	require.Len(t, deps, 2)
	assert.Equal(t, "a", deps[0].ID)
	assert.Equal(t, "b", deps[1].ID)
	assert.Empty(t, g.Dependencies("a"))
}

func TestBuildGraph_DanglingReferenceDroppedAndWarned(t *testing.T) {
	phases := []domain.SchedulePhase{
		sched("a", 1, 3),
		sched("b", 3, 5, "a", "ghost"),
	}

	g, warnings := BuildGraph(phases)
	require.Len(t, warnings, 1)
	assert.Equal(t, "b", warnings[0].PhaseID)
	assert.Equal(t, "ghost", warnings[0].MissingDep)

	deps := g.Dependencies("b")
	require.Len(t, deps, 1)
	assert.Equal(t, "a", deps[0].ID)
}

func TestBuildGraph_SelfDependencyDropped(t *testing.T) {
	phases := []domain.SchedulePhase{sched("a", 1, 3, "a")}

	g, warnings := BuildGraph(phases)
	require.Len(t, warnings, 1)
	assert.Empty(t, g.Dependencies("a"))

	// Still schedulable: the node participates in the topo order.
	res := CriticalPath(g)
	assert.True(t, res.Critical["a"])
}

func TestBuildGraph_TopoOrderRespectsDependencies(t *testing.T) {
	phases := []domain.SchedulePhase{
		sched("c", 5, 6, "b"),
		sched("b", 3, 5, "a"),
		sched("a", 1, 3),
	}

	g, _ := BuildGraph(phases)
	pos := map[string]int{}
	for i, id := range g.order {
		pos[id] = i
	}
	require.Len(t, g.order, 3)
	assert.Less(t, pos["a"], pos["b"])
	assert.Less(t, pos["b"], pos["c"])
}

func TestBuildGraph_CycleNodesExcludedFromOrder(t *testing.T) {
	phases := []domain.SchedulePhase{
		sched("a", 1, 3, "b"),
		sched("b", 3, 5, "a"),
		sched("c", 5, 6),
	}

	g, _ := BuildGraph(phases)
	require.Len(t, g.order, 1, "only the acyclic node is orderable")
	assert.Equal(t, "c", g.order[0])

	res := CriticalPath(g)
	assert.False(t, res.Critical["a"])
	assert.False(t, res.Critical["b"])
	assert.True(t, res.Critical["c"])
}
