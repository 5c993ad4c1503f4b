package gsearch

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdrpinto/gsearch/frontier"
)

// Strategy selects the frontier discipline a Stepper drives.
type Strategy string

const (
	StrategyDepthFirst   Strategy = "dfs"
	StrategyBreadthFirst Strategy = "bfs"
	StrategyUniformCost  Strategy = "ucs"
	StrategyAStar        Strategy = "astar"
)

// ParseStrategy maps a strategy name to its constant. The names are the
// constant values: "dfs", "bfs", "ucs" and "astar".
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case StrategyDepthFirst, StrategyBreadthFirst, StrategyUniformCost, StrategyAStar:
		return Strategy(name), nil
	}
	return "", fmt.Errorf("gsearch: unknown strategy %q", name)
}

// StepSnapshot exposes the per-expansion state of a stepped search. The
// Frontier and Visited sets are copies and stay valid after further steps.
type StepSnapshot[S comparable, A any] struct {
	Current   S
	Frontier  map[S]bool
	Visited   map[S]bool
	Done      bool
	Found     bool
	Path      []A
	StepIndex int
}

// Stepper drives one search strategy a single expansion at a time, for
// visualizers and debugging tools. It is synchronous and not safe for
// concurrent use. A finished Stepper keeps returning its terminal
// snapshot; there is nothing to close.
type Stepper[S comparable, A any] struct {
	problem   Problem[S, A]
	heuristic Heuristic[S, A]
	strategy  Strategy
	costAware bool
	logger    zerolog.Logger

	open     stepFrontier[S, A]
	onOpen   map[S]int
	visited  map[S]bool
	bestCost map[S]float64

	stepCount int
	done      bool
	found     bool
	goalState S
	plan      []A
	planCost  float64
}

// NewStepper prepares a step-wise search over problem. The heuristic is
// consulted only by StrategyAStar; nil means the zero heuristic. A
// strategy outside the four constants panics, so parse untrusted names
// with ParseStrategy first. Of the options only WithLogger applies; the
// rest concern the complete-run entry points.
func NewStepper[S comparable, A any](
	problem Problem[S, A],
	strategy Strategy,
	heuristic Heuristic[S, A],
	opts ...Option,
) *Stepper[S, A] {
	if heuristic == nil {
		heuristic = ZeroHeuristic[S, A]
	}
	options := buildOptions(opts)
	s := &Stepper[S, A]{
		problem:   problem,
		heuristic: heuristic,
		strategy:  strategy,
		logger:    options.Logger,
		onOpen:    make(map[S]int),
	}
	switch strategy {
	case StrategyDepthFirst:
		s.open = &lifoFrontier[S, A]{}
		s.visited = make(map[S]bool)
	case StrategyBreadthFirst:
		s.open = &fifoFrontier[S, A]{}
		s.visited = make(map[S]bool)
	case StrategyUniformCost:
		s.heuristic = ZeroHeuristic[S, A]
		fallthrough
	case StrategyAStar:
		s.open = &rankedFrontier[S, A]{}
		s.bestCost = make(map[S]float64)
		s.costAware = true
	default:
		panic("gsearch: unknown strategy " + string(strategy))
	}
	s.push(stepEntry[S, A]{state: problem.StartState()})
	return s
}

// Step performs one expansion and reports the state of the search after
// it. Stale frontier entries are drained within the call, so every
// non-terminal snapshot reflects exactly one new expanded state.
func (s *Stepper[S, A]) Step() StepSnapshot[S, A] {
	if s.done {
		return s.terminal()
	}
	for {
		current, ok := s.pop()
		if !ok {
			s.done = true
			return s.terminal()
		}
		if s.problem.IsGoalState(current.state) {
			s.done = true
			s.found = true
			s.goalState = current.state
			s.plan = current.path
			s.planCost = current.cost
			return s.terminal()
		}
		if s.expandedBefore(current) {
			continue
		}
		s.markExpanded(current)
		s.stepCount++
		s.logger.Trace().
			Str("strategy", string(s.strategy)).
			Interface("state", current.state).
			Float64("cost", current.cost).
			Msg("expand")

		for _, successor := range s.problem.Successors(current.state) {
			s.push(stepEntry[S, A]{
				state: successor.State,
				path:  extendPath(current.path, successor.Action),
				cost:  current.cost + successor.StepCost,
			})
		}
		return s.snapshot(current.state, false, false, nil)
	}
}

// PlanCost reports the accumulated cost of the found plan. It is zero
// until a goal state has been popped.
func (s *Stepper[S, A]) PlanCost() float64 {
	return s.planCost
}

func (s *Stepper[S, A]) push(e stepEntry[S, A]) {
	rank := 0.0
	if s.costAware {
		rank = e.cost + s.heuristic(e.state, s.problem)
	}
	s.open.push(e, rank)
	s.onOpen[e.state]++
}

func (s *Stepper[S, A]) pop() (stepEntry[S, A], bool) {
	e, ok := s.open.pop()
	if !ok {
		return e, false
	}
	if s.onOpen[e.state] <= 1 {
		delete(s.onOpen, e.state)
	} else {
		s.onOpen[e.state]--
	}
	return e, true
}

func (s *Stepper[S, A]) expandedBefore(e stepEntry[S, A]) bool {
	if s.costAware {
		expandedAt, ok := s.bestCost[e.state]
		return ok && expandedAt <= e.cost
	}
	return s.visited[e.state]
}

func (s *Stepper[S, A]) markExpanded(e stepEntry[S, A]) {
	if s.costAware {
		s.bestCost[e.state] = e.cost
		return
	}
	s.visited[e.state] = true
}

func (s *Stepper[S, A]) terminal() StepSnapshot[S, A] {
	return s.snapshot(s.goalState, true, s.found, s.plan)
}

func (s *Stepper[S, A]) snapshot(current S, done, found bool, path []A) StepSnapshot[S, A] {
	open := make(map[S]bool, len(s.onOpen))
	for state := range s.onOpen {
		open[state] = true
	}
	var visited map[S]bool
	if s.costAware {
		visited = make(map[S]bool, len(s.bestCost))
		for state := range s.bestCost {
			visited[state] = true
		}
	} else {
		visited = make(map[S]bool, len(s.visited))
		for state := range s.visited {
			visited[state] = true
		}
	}
	return StepSnapshot[S, A]{
		Current:   current,
		Frontier:  open,
		Visited:   visited,
		Done:      done,
		Found:     found,
		Path:      path,
		StepIndex: s.stepCount,
	}
}

// --- frontier adapters ---

type stepEntry[S comparable, A any] struct {
	state S
	path  []A
	cost  float64
}

// stepFrontier erases the difference between the three frontier types so
// the Stepper holds one field regardless of strategy.
type stepFrontier[S comparable, A any] interface {
	push(e stepEntry[S, A], rank float64)
	pop() (stepEntry[S, A], bool)
}

type lifoFrontier[S comparable, A any] struct {
	stack frontier.Stack[stepEntry[S, A]]
}

func (f *lifoFrontier[S, A]) push(e stepEntry[S, A], _ float64) { f.stack.Push(e) }
func (f *lifoFrontier[S, A]) pop() (stepEntry[S, A], bool)      { return f.stack.Pop() }

type fifoFrontier[S comparable, A any] struct {
	queue frontier.Queue[stepEntry[S, A]]
}

func (f *fifoFrontier[S, A]) push(e stepEntry[S, A], _ float64) { f.queue.Push(e) }
func (f *fifoFrontier[S, A]) pop() (stepEntry[S, A], bool)      { return f.queue.Pop() }

type rankedFrontier[S comparable, A any] struct {
	queue frontier.PriorityQueue[stepEntry[S, A]]
}

func (f *rankedFrontier[S, A]) push(e stepEntry[S, A], rank float64) { f.queue.Push(e, rank) }
func (f *rankedFrontier[S, A]) pop() (stepEntry[S, A], bool)         { return f.queue.Pop() }
