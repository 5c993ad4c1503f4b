package gsearch

import (
	"errors"
	"runtime"

	"github.com/rs/zerolog"
)

// Problem is generic over state type S and action type A.
// S must be comparable so it can be used in maps; A is opaque to the
// engine and only ever accumulated into the returned plan.

type Problem[S comparable, A any] interface {
	// StartState returns the state the search begins from.
	StartState() S

	// IsGoalState reports whether state satisfies the goal.
	IsGoalState(state S) bool

	// Successors returns every transition available from state as
	// (state, action, step cost) triples. Step costs must be
	// non-negative for the cost-ordered searches to stay optimal.
	Successors(state S) []Successor[S, A]

	// CostOfActions returns the total cost of a sequence of legal
	// actions applied from the start state. The search loops never call
	// it; callers use it to score a returned plan.
	CostOfActions(actions []A) float64
}

// Successor is a single transition out of a state: the state reached, the
// action that reaches it, and the incremental cost of taking that action.
type Successor[S comparable, A any] struct {
	State    S
	Action   A
	StepCost float64
}

// Heuristic estimates the remaining cost from a state to the nearest goal
// of the problem. Estimates must be non-negative; estimating zero at goal
// states is assumed for correctness but not enforced.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// ZeroHeuristic estimates zero everywhere. AStar with ZeroHeuristic
// reduces to UniformCost exactly.
func ZeroHeuristic[S comparable, A any](S, Problem[S, A]) float64 { return 0 }

// Result contains the outcome of a search that reports failure through an
// error instead of an empty plan.
type Result[A any] struct {
	Actions   []A
	TotalCost float64
	Expanded  int
	Found     bool
}

// ErrNoPath is returned by AStarParallel when the frontier empties without
// reaching a goal state.
var ErrNoPath = errors.New("gsearch: no path found")

// Stats captures counters from a single search invocation. Pass one in via
// WithStats; the search fills it before returning.
type Stats struct {
	Expanded    int // states whose successors were generated
	Generated   int // frontier entries created, the start entry included
	Skipped     int // pops discarded by the visited or best-cost check
	MaxFrontier int // peak frontier length observed
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Logger          zerolog.Logger
	Stats           *Stats
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many worker goroutines AStarParallel uses to
// score successors. The synchronous entry points ignore it.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithLogger attaches a logger to the search: one trace event per
// expansion and one debug summary per invocation. The default logger
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithStats points the search at a Stats to fill in.
func WithStats(stats *Stats) Option {
	return func(options *Options) { options.Stats = stats }
}

func buildOptions(opts []Option) Options {
	options := Options{
		NumberOfWorkers: runtime.NumCPU(),
		Logger:          zerolog.Nop(),
	}
	for _, option := range opts {
		option(&options)
	}
	return options
}
