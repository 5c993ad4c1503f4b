package gsearch

import (
	"container/heap"
	"context"

	"github.com/pdrpinto/gsearch/internal"
)

// AStarParallel is the concurrent variant of AStar. The orchestrator owns
// the open set, the closed set and the predecessor map; a pool of workers
// evaluates the heuristic for freshly generated successors. Each state
// holds at most one open entry, reprioritized in place when a cheaper
// path to it is found.
//
// With an admissible, consistent heuristic the returned cost is minimal.
// Proposals within one expansion arrive in arbitrary order, so ties among
// equal-cost plans may resolve differently between runs.
//
// The error is ErrNoPath when the reachable space is exhausted without
// meeting a goal state, or ctx.Err() when ctx ends first. A start state
// that is already a goal yields an empty plan at cost zero.
func AStarParallel[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	heuristic Heuristic[S, A],
	opts ...Option,
) (Result[A], error) {
	if heuristic == nil {
		heuristic = ZeroHeuristic[S, A]
	}
	options := buildOptions(opts)
	workers := options.NumberOfWorkers
	if workers < 1 {
		workers = 1
	}

	// Cancellation is the only shutdown signal. The task channel is never
	// closed: a feeder may still be blocked on it when the search returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan ExpandTask[S, A])
	proposals := make(chan RelaxProposal[S, A])
	for i := 0; i < workers; i++ {
		go runExpandWorker(ctx, problem, heuristic, tasks, proposals)
	}

	start := problem.StartState()
	startItem := &openItem[S]{State: start, GScore: 0, FCost: heuristic(start, problem)}

	open := &openHeap[S]{}
	heap.Init(open)
	heap.Push(open, startItem)

	inOpen := map[S]*openItem[S]{start: startItem}
	cameFrom := make(map[S]internal.Edge[S, A])
	closed := make(map[S]bool)

	stats := Stats{Generated: 1, MaxFrontier: 1}
	found := false
	defer func() { finishRun(options, "astar-parallel", found, &stats) }()

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Result[A]{}, err
		}

		current := heap.Pop(open).(*openItem[S])
		delete(inOpen, current.State)

		if problem.IsGoalState(current.State) {
			found = true
			return Result[A]{
				Actions:   internal.ReconstructActions(cameFrom, current.State, start),
				TotalCost: current.GScore,
				Expanded:  stats.Expanded,
				Found:     true,
			}, nil
		}
		closed[current.State] = true
		stats.Expanded++
		options.Logger.Trace().
			Str("algorithm", "astar-parallel").
			Interface("state", current.State).
			Float64("cost", current.GScore).
			Msg("expand")

		batch := make([]ExpandTask[S, A], 0, 4)
		for _, successor := range problem.Successors(current.State) {
			if closed[successor.State] {
				stats.Skipped++
				continue
			}
			batch = append(batch, ExpandTask[S, A]{
				FromState: current.State,
				Successor: successor,
				BaseCost:  current.GScore,
			})
		}
		if len(batch) == 0 {
			continue
		}

		// Feed from a separate goroutine so dispatch and collection
		// overlap; a batch larger than the pool would otherwise wedge
		// with every worker blocked on the proposal channel.
		go func(batch []ExpandTask[S, A]) {
			for _, task := range batch {
				select {
				case <-ctx.Done():
					return
				case tasks <- task:
				}
			}
		}(batch)

		for pending := len(batch); pending > 0; pending-- {
			var proposal RelaxProposal[S, A]
			select {
			case <-ctx.Done():
				return Result[A]{}, ctx.Err()
			case proposal = <-proposals:
			}

			switch existing, ok := inOpen[proposal.ToState]; {
			case ok && proposal.GScore < existing.GScore:
				existing.GScore = proposal.GScore
				existing.FCost = proposal.FCost
				heap.Fix(open, existing.IndexInQueue)
				cameFrom[proposal.ToState] = internal.Edge[S, A]{From: proposal.FromState, Action: proposal.Action}
			case ok:
				stats.Skipped++
			case closed[proposal.ToState]:
				stats.Skipped++
			default:
				item := &openItem[S]{
					State:  proposal.ToState,
					GScore: proposal.GScore,
					FCost:  proposal.FCost,
				}
				heap.Push(open, item)
				inOpen[proposal.ToState] = item
				cameFrom[proposal.ToState] = internal.Edge[S, A]{From: proposal.FromState, Action: proposal.Action}
				stats.Generated++
			}
		}
		if open.Len() > stats.MaxFrontier {
			stats.MaxFrontier = open.Len()
		}
	}
	return Result[A]{}, ErrNoPath
}
