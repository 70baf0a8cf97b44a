package engine

import "othello/experiments/metrics"

// MaxMoves bounds a game; Othello needs at most 60 placements plus passes.
const MaxMoves = 128

type Result struct {
	Outcome     int // game.BlackWins, game.WhiteWins or game.Draw
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

type Engine interface {
	// Run plays a game to the end
	Run() (Result, error)
}
