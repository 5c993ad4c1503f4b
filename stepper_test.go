package gsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStepper advances s until Done, failing the test if the search does
// not terminate within limit calls.
func runStepper[S comparable, A any](t *testing.T, s *Stepper[S, A], limit int) StepSnapshot[S, A] {
	t.Helper()
	for i := 0; i < limit; i++ {
		snapshot := s.Step()
		if snapshot.Done {
			return snapshot
		}
	}
	t.Fatalf("stepper still running after %d steps", limit)
	return StepSnapshot[S, A]{}
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{
		"dfs":   StrategyDepthFirst,
		"bfs":   StrategyBreadthFirst,
		"ucs":   StrategyUniformCost,
		"astar": StrategyAStar,
	} {
		got, err := ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseStrategy("dijkstra")
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestNewStepperRejectsUnknownStrategy(t *testing.T) {
	assert.Panics(t, func() {
		NewStepper[string, string](branchingProblem(), Strategy("nonsense"), nil)
	})
}

func TestStepperMatchesSearchResults(t *testing.T) {
	for strategy, want := range map[Strategy][]string{
		StrategyDepthFirst:   {"to-b", "b-to-goal"},
		StrategyBreadthFirst: {"to-a", "a-to-goal"},
		StrategyUniformCost:  {"to-b", "b-to-goal"},
		StrategyAStar:        {"to-b", "b-to-goal"},
	} {
		s := NewStepper[string, string](branchingProblem(), strategy, nil)
		final := runStepper(t, s, 100)
		assert.True(t, final.Found, "strategy %s", strategy)
		assert.Equal(t, want, final.Path, "strategy %s", strategy)
	}
}

func TestStepperSnapshotsExposeProgress(t *testing.T) {
	s := NewStepper[string, string](branchingProblem(), StrategyUniformCost, nil)

	first := s.Step()
	require.False(t, first.Done)
	assert.Equal(t, "start", first.Current)
	assert.Equal(t, map[string]bool{"a": true, "b": true}, first.Frontier)
	assert.Equal(t, map[string]bool{"start": true}, first.Visited)
	assert.Equal(t, 1, first.StepIndex)

	second := s.Step()
	require.False(t, second.Done)
	assert.Equal(t, "a", second.Current)
	assert.Equal(t, map[string]bool{"b": true, "goal": true}, second.Frontier)

	third := s.Step()
	require.False(t, third.Done)
	assert.Equal(t, "b", third.Current)

	final := s.Step()
	require.True(t, final.Done)
	assert.True(t, final.Found)
	assert.Equal(t, "goal", final.Current)
	assert.Equal(t, []string{"to-b", "b-to-goal"}, final.Path)
	assert.Equal(t, 3.0, s.PlanCost())
	assert.Equal(t, 3, final.StepIndex)

	// Earlier snapshots are unaffected by later steps.
	assert.Equal(t, map[string]bool{"a": true, "b": true}, first.Frontier)
}

func TestStepperTerminalSnapshotRepeats(t *testing.T) {
	s := NewStepper[string, string](branchingProblem(), StrategyAStar, nil)
	final := runStepper(t, s, 100)

	again := s.Step()
	assert.Equal(t, final, again)
	assert.Equal(t, final, s.Step())
}

func TestStepperExhaustsWithoutGoal(t *testing.T) {
	p := &graphProblem{
		start: "start",
		goals: map[string]bool{"island": true},
		edges: map[string][]Successor[string, string]{
			"start": {{State: "cul-de-sac", Action: "wander", StepCost: 1}},
		},
		cost: map[string]float64{"wander": 1},
	}

	s := NewStepper[string, string](p, StrategyBreadthFirst, nil)
	final := runStepper(t, s, 100)
	assert.False(t, final.Found)
	assert.Empty(t, final.Path)
	assert.Equal(t, map[string]bool{}, final.Frontier)
	assert.Equal(t, map[string]bool{"start": true, "cul-de-sac": true}, final.Visited)
}

func TestStepperUniformCostIgnoresHeuristic(t *testing.T) {
	misleading := func(state string, _ Problem[string, string]) float64 {
		if state == "b" {
			return 1000
		}
		return 0
	}

	s := NewStepper[string, string](branchingProblem(), StrategyUniformCost, misleading)
	final := runStepper(t, s, 100)
	assert.Equal(t, []string{"to-b", "b-to-goal"}, final.Path)
	assert.Equal(t, 3.0, s.PlanCost())
}

func TestStepperDrainsStalePopsWithinOneCall(t *testing.T) {
	graph, h := rediscoveryProblem()
	s := NewStepper[string, string](graph, StrategyAStar, h)

	var expanded []string
	for {
		snapshot := s.Step()
		if snapshot.Done {
			require.True(t, snapshot.Found)
			assert.Equal(t, []string{"sd", "dx", "xg"}, snapshot.Path)
			assert.Equal(t, 5, snapshot.StepIndex)
			break
		}
		expanded = append(expanded, snapshot.Current)
		require.Less(t, len(expanded), 20, "stepper failed to terminate")
	}

	// x is expanded twice, once per strict cost improvement; the final
	// call drains the equal-cost duplicate before popping the goal.
	assert.Equal(t, []string{"start", "x", "d", "x", "e"}, expanded)
}

func TestStepperGridRun(t *testing.T) {
	p := barrierGrid()
	s := NewStepper[cell, string](p, StrategyAStar, manhattanToGoal(p))

	final := runStepper(t, s, 200)
	require.True(t, final.Found)
	assert.Equal(t, 12.0, s.PlanCost())
	assert.Equal(t, p.goal, replayGridPath(t, p, final.Path))
	assert.Equal(t, p.goal, final.Current)
}
