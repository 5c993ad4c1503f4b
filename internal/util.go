package internal

// Edge records how a state was reached: the predecessor and the action
// taken from it. One Edge per settled state is enough to rebuild a plan.
type Edge[S comparable, A any] struct {
	From   S
	Action A
}

// ReconstructActions walks cameFrom backwards from goal to start and
// returns the actions along the way in start-to-goal order. When goal
// equals start the result is empty.
func ReconstructActions[S comparable, A any](
	cameFrom map[S]Edge[S, A],
	goal S,
	start S,
) []A {
	var actions []A
	current := goal
	for current != start {
		edge, ok := cameFrom[current]
		if !ok {
			break
		}
		actions = append(actions, edge.Action)
		current = edge.From
	}
	// reverse actions
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}
