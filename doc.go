// Package gsearch provides generic search over implicit state graphs.
//
// A graph is described by a Problem: a start state, a goal test, and a
// successor relation that yields (state, action, step cost) triples on
// demand. Nothing is ever materialized up front, so the reachable space
// may be far too large to enumerate.
//
// It exposes three kinds of entry points:
//
//   - DepthFirst, BreadthFirst, UniformCost, AStar: run one strategy to
//     completion and get the action sequence that reaches a goal.
//   - Stepper: iterate any strategy one expansion at a time to drive UIs
//     or debugging tools.
//   - AStarParallel: the A* variant that evaluates heuristics on a worker
//     pool while a single orchestrator owns the frontier.
//
// The library is generic over the state and action types. States must be
// comparable; actions pass through the engine untouched.
package gsearch
