package gsearch

import "context"

// ExpandTask represents a request from the orchestrator to the workers:
// score one successor of a state expanded at cost BaseCost.
type ExpandTask[S comparable, A any] struct {
	FromState S
	Successor Successor[S, A]
	BaseCost  float64
}

// RelaxProposal is the worker's suggestion for updating a path.
type RelaxProposal[S comparable, A any] struct {
	FromState S
	Action    A
	ToState   S
	GScore    float64
	FCost     float64
}

// runExpandWorker scores tasks until tasks closes or ctx is cancelled.
// The heuristic runs here, off the orchestrator goroutine.
func runExpandWorker[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	heuristic Heuristic[S, A],
	tasks <-chan ExpandTask[S, A],
	proposals chan<- RelaxProposal[S, A],
) {
	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-tasks:
			if !ok {
				return
			}
			gScore := task.BaseCost + task.Successor.StepCost
			proposal := RelaxProposal[S, A]{
				FromState: task.FromState,
				Action:    task.Successor.Action,
				ToState:   task.Successor.State,
				GScore:    gScore,
				FCost:     gScore + heuristic(task.Successor.State, problem),
			}
			select {
			case <-ctx.Done():
				return
			case proposals <- proposal:
			}
		}
	}
}
