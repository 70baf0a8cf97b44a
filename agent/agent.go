// Package agent puts every kind of player behind one interface so the engine
// and the experiments can pit them against each other.
package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// FindMove returns the move to play in state, game.Pass when nothing is legal
	FindMove(state game.State) (game.Move, error)
	// Acknowledge is told every committed move, including the agent's own
	Acknowledge(move game.Move)
}

// Measured agents report figures about their last decision.
type Measured interface {
	Metrics() metrics.SearchMetric
}
