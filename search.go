package gsearch

import (
	"github.com/pdrpinto/gsearch/frontier"
)

// entry is an uninformed frontier entry: a reached state plus the actions
// that reached it from the start.
type entry[S comparable, A any] struct {
	state S
	path  []A
}

// costedEntry adds the accumulated path cost for the cost-ordered searches.
type costedEntry[S comparable, A any] struct {
	state S
	path  []A
	cost  float64
}

// uninformedFrontier is the slice of the frontier API the uninformed loop
// needs; *frontier.Stack and *frontier.Queue both satisfy it.
type uninformedFrontier[S comparable, A any] interface {
	Push(entry[S, A])
	Pop() (entry[S, A], bool)
	Len() int
}

// DepthFirst searches the deepest frontier entries first and returns the
// first action sequence that reaches a goal state. The returned path is
// valid but carries no length or cost guarantee.
//
// An empty sequence means either that the start state is already a goal or
// that no goal is reachable; callers that need to tell the two apart must
// check IsGoalState(StartState()) themselves.
func DepthFirst[S comparable, A any](problem Problem[S, A], opts ...Option) []A {
	var open frontier.Stack[entry[S, A]]
	return uninformed(problem, &open, "dfs", buildOptions(opts))
}

// BreadthFirst searches the shallowest frontier entries first. The
// returned path has the fewest actions of any path to a goal; step costs
// play no part in the ordering. Empty results read as in DepthFirst.
func BreadthFirst[S comparable, A any](problem Problem[S, A], opts ...Option) []A {
	var open frontier.Queue[entry[S, A]]
	return uninformed(problem, &open, "bfs", buildOptions(opts))
}

// UniformCost expands frontier entries in order of accumulated path cost
// and returns a minimum-total-cost action sequence, provided every step
// cost is non-negative. Negative step costs are not validated; they
// silently void the optimality guarantee. Empty results read as in
// DepthFirst.
func UniformCost[S comparable, A any](problem Problem[S, A], opts ...Option) []A {
	return costOrdered(problem, ZeroHeuristic[S, A], "ucs", buildOptions(opts))
}

// AStar orders the frontier by accumulated path cost plus the heuristic
// estimate of the remaining cost. With an admissible, consistent heuristic
// the returned path has minimum total cost; with the zero heuristic AStar
// is UniformCost exactly. A nil heuristic means ZeroHeuristic. Empty
// results read as in DepthFirst.
func AStar[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A], opts ...Option) []A {
	if heuristic == nil {
		heuristic = ZeroHeuristic[S, A]
	}
	return costOrdered(problem, heuristic, "astar", buildOptions(opts))
}

// uninformed is the expansion loop shared by DepthFirst and BreadthFirst:
// pop per the frontier's discipline, goal-test, expand unless the state
// was expanded before. The goal test on pop is the sole success exit.
func uninformed[S comparable, A any](problem Problem[S, A], open uninformedFrontier[S, A], algorithm string, options Options) []A {
	open.Push(entry[S, A]{state: problem.StartState()})
	visited := make(map[S]bool)

	stats := Stats{Generated: 1, MaxFrontier: 1}
	found := false
	defer func() { finishRun(options, algorithm, found, &stats) }()

	for open.Len() > 0 {
		current, _ := open.Pop()

		if problem.IsGoalState(current.state) {
			found = true
			return current.path
		}
		if visited[current.state] {
			stats.Skipped++
			continue
		}
		visited[current.state] = true
		stats.Expanded++
		options.Logger.Trace().
			Str("algorithm", algorithm).
			Interface("state", current.state).
			Int("depth", len(current.path)).
			Msg("expand")

		for _, successor := range problem.Successors(current.state) {
			open.Push(entry[S, A]{
				state: successor.State,
				path:  extendPath(current.path, successor.Action),
			})
			stats.Generated++
		}
		if open.Len() > stats.MaxFrontier {
			stats.MaxFrontier = open.Len()
		}
	}
	return nil
}

// costOrdered is the expansion loop shared by UniformCost and AStar. The
// frontier key of an entry is its accumulated cost plus the heuristic
// estimate for its state; UniformCost supplies the zero heuristic.
func costOrdered[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A], algorithm string, options Options) []A {
	var open frontier.PriorityQueue[costedEntry[S, A]]
	start := problem.StartState()
	open.Push(costedEntry[S, A]{state: start}, heuristic(start, problem))

	// bestCost records the accumulated cost each state was last expanded
	// at. A cheaper rediscovery is pushed as a duplicate entry rather than
	// reprioritized in place; the stale sibling surfaces later and dies on
	// the <= check below.
	bestCost := make(map[S]float64)

	stats := Stats{Generated: 1, MaxFrontier: 1}
	found := false
	defer func() { finishRun(options, algorithm, found, &stats) }()

	for open.Len() > 0 {
		current, _ := open.Pop()

		if problem.IsGoalState(current.state) {
			found = true
			return current.path
		}
		if expandedAt, ok := bestCost[current.state]; ok && expandedAt <= current.cost {
			stats.Skipped++
			continue
		}
		bestCost[current.state] = current.cost
		stats.Expanded++
		options.Logger.Trace().
			Str("algorithm", algorithm).
			Interface("state", current.state).
			Float64("cost", current.cost).
			Msg("expand")

		for _, successor := range problem.Successors(current.state) {
			accumulated := current.cost + successor.StepCost
			open.Push(costedEntry[S, A]{
				state: successor.State,
				path:  extendPath(current.path, successor.Action),
				cost:  accumulated,
			}, accumulated+heuristic(successor.State, problem))
			stats.Generated++
		}
		if open.Len() > stats.MaxFrontier {
			stats.MaxFrontier = open.Len()
		}
	}
	return nil
}

// extendPath returns path plus one action. The copy keeps every frontier
// entry's path independent of its siblings'.
func extendPath[A any](path []A, action A) []A {
	extended := make([]A, len(path)+1)
	copy(extended, path)
	extended[len(path)] = action
	return extended
}

// finishRun emits the per-invocation summary and copies the counters out.
func finishRun(options Options, algorithm string, found bool, stats *Stats) {
	options.Logger.Debug().
		Str("algorithm", algorithm).
		Bool("found", found).
		Int("expanded", stats.Expanded).
		Int("generated", stats.Generated).
		Int("skipped", stats.Skipped).
		Int("max_frontier", stats.MaxFrontier).
		Msg("search finished")
	if options.Stats != nil {
		*options.Stats = *stats
	}
}
