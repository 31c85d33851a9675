package phase

// PathResult holds per-phase slack from the longest-path computation.
type PathResult struct {
	// SlackDays maps phase id to total float: how many days the phase can
	// slip without delaying the job's final phase.
	SlackDays map[string]int
	// Critical maps phase id to critical-path membership (zero slack).
	Critical map[string]bool
	// FinishDays is the length of the longest dependency chain in days.
	FinishDays int
}

// CriticalPath derives critical-path membership over the graph using the
// standard longest-path-in-a-DAG computation: a forward pass in topological
// order accumulates each phase's earliest finish, a backward pass computes
// its latest finish against the overall project finish, and zero slack marks
// the phase critical.
//
// Phases excluded from the topological order (dependency cycles) get no
// slack entry and are never flagged critical.
func CriticalPath(g *Graph) PathResult {
	res := PathResult{
		SlackDays: make(map[string]int, len(g.order)),
		Critical:  make(map[string]bool, len(g.order)),
	}
	if len(g.order) == 0 {
		return res
	}

	dur := func(id string) int {
		sp := g.nodes[id]
		return sp.DurationDays()
	}

	// Forward pass: earliest finish.
	earliest := make(map[string]int, len(g.order))
	for _, id := range g.order {
		start := 0
		for _, dep := range g.deps[id] {
			if ef, ok := earliest[dep]; ok && ef > start {
				start = ef
			}
		}
		earliest[id] = start + dur(id)
		if earliest[id] > res.FinishDays {
			res.FinishDays = earliest[id]
		}
	}

	// Backward pass: latest finish without delaying the project.
	latest := make(map[string]int, len(g.order))
	for i := len(g.order) - 1; i >= 0; i-- {
		id := g.order[i]
		lf := res.FinishDays
		for _, succ := range g.succs[id] {
			sl, ok := latest[succ]
			if !ok {
				continue // successor on a cycle, excluded
			}
			if v := sl - dur(succ); v < lf {
				lf = v
			}
		}
		latest[id] = lf
	}

	for _, id := range g.order {
		slack := latest[id] - earliest[id]
		res.SlackDays[id] = slack
		res.Critical[id] = slack == 0
	}
	return res
}
