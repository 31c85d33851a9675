package phase

import "github.com/dmoreno/groundwork/internal/domain"

// Warning flags a data-quality problem found while building the dependency
// graph. Dangling references are dropped rather than treated as errors, but
// they can silently distort critical-path results, so callers should log
// them.
type Warning struct {
	PhaseID    string
	MissingDep string
}

// Graph is the resolved dependency structure over a job's schedule phases.
type Graph struct {
	nodes map[string]domain.SchedulePhase
	deps  map[string][]string // phase id -> resolved dependency ids
	succs map[string][]string // phase id -> dependent phase ids
	// order is a topological ordering of the acyclic portion of the graph.
	// Phases caught in a dependency cycle are excluded.
	order []string
}

// BuildGraph resolves each schedule phase's dependency id list against the
// full collection. Dependency ids that resolve to no phase are dropped and
// reported as warnings.
func BuildGraph(phases []domain.SchedulePhase) (*Graph, []Warning) {
	g := &Graph{
		nodes: make(map[string]domain.SchedulePhase, len(phases)),
		deps:  make(map[string][]string, len(phases)),
		succs: make(map[string][]string, len(phases)),
	}
	var warnings []Warning

	for _, sp := range phases {
		g.nodes[sp.ID] = sp
	}
	for _, sp := range phases {
		for _, dep := range sp.Dependencies {
			if _, ok := g.nodes[dep]; !ok {
				warnings = append(warnings, Warning{PhaseID: sp.ID, MissingDep: dep})
				continue
			}
			if dep == sp.ID {
				// Self-dependency can never be satisfied; drop it.
				warnings = append(warnings, Warning{PhaseID: sp.ID, MissingDep: dep})
				continue
			}
			g.deps[sp.ID] = append(g.deps[sp.ID], dep)
			g.succs[dep] = append(g.succs[dep], sp.ID)
		}
	}

	g.order = topoOrder(phases, g.deps)
	return g, warnings
}

// Dependencies returns the resolved direct dependencies of a phase, in the
// authored order with dangling ids removed.
func (g *Graph) Dependencies(id string) []domain.SchedulePhase {
	var out []domain.SchedulePhase
	for _, dep := range g.deps[id] {
		out = append(out, g.nodes[dep])
	}
	return out
}

// topoOrder runs Kahn's algorithm over the input order, so ties resolve
// deterministically by authored position. Nodes on a cycle never reach
// in-degree zero and are left out of the ordering.
func topoOrder(phases []domain.SchedulePhase, deps map[string][]string) []string {
	indegree := make(map[string]int, len(phases))
	succs := make(map[string][]string, len(phases))
	for _, sp := range phases {
		indegree[sp.ID] = len(deps[sp.ID])
		for _, dep := range deps[sp.ID] {
			succs[dep] = append(succs[dep], sp.ID)
		}
	}

	var queue []string
	for _, sp := range phases {
		if indegree[sp.ID] == 0 {
			queue = append(queue, sp.ID)
		}
	}

	order := make([]string, 0, len(phases))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, succ := range succs[id] {
			indegree[succ]--
			if indegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}
	return order
}
