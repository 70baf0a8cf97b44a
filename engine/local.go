package engine

import (
	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State  game.State
	Agents [2]agent.Agent // Indexed by game.Color
}

// NewLocalEngine sets up a game from the opening with black to move.
func NewLocalEngine(black, white agent.Agent) *LocalEngine {
	if black == nil || white == nil {
		panic("need two agents")
	}
	return &LocalEngine{
		State:  game.NewState(nil),
		Agents: [2]agent.Agent{black, white},
	}
}

// Run asks the side to move for a move, checks it against the legal set,
// commits it and tells both agents, until the game is over.
func (e *LocalEngine) Run() (Result, error) {
	log.Info().Msgf("player %v is starting", e.State.Player())

	start := time.Now()
	var moveMetrics []metrics.MoveMetric
	step := 0
	for !e.State.GameOver() {
		if step >= MaxMoves {
			return Result{}, errors.Errorf("game did not end after %d moves", MaxMoves)
		}
		step++

		player := e.State.Player()
		current := e.Agents[player]
		move, err := current.FindMove(e.State)
		if err != nil {
			return Result{}, errors.WithMessagef(err, "%v failed to move at step %d", player, step)
		}

		legal := e.State.LegalMoves()
		if move.IsPass() && legal != 0 || !move.IsPass() && !legal.Has(move) {
			return Result{}, errors.Wrapf(game.ErrIllegalMove, "%v played %v at step %d", player, move, step)
		}

		e.State.Play(move)
		for _, a := range e.Agents {
			a.Acknowledge(move)
		}

		board := e.State.Board()
		mm := metrics.MoveMetric{
			Step:   step,
			Player: player,
			Move:   move,
			Black:  board.Occupancy(game.Black),
			White:  board.Occupancy(game.White),
		}
		if measured, ok := current.(agent.Measured); ok {
			mm.SearchMetric = measured.Metrics()
		}
		moveMetrics = append(moveMetrics, mm)

		log.Debug().Msgf("step %d: %v played %v", step, player, move)
	}

	board := e.State.Board()
	end := time.Now()
	result := Result{
		Outcome: e.State.Outcome(),
		GameMetric: metrics.GameMetric{
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
			TotalMoves: step,
			Outcome:    e.State.Outcome(),
			BlackCount: board.Count(game.Black),
			WhiteCount: board.Count(game.White),
		},
		MoveMetrics: moveMetrics,
	}
	log.Info().Msgf("game over after %d moves: black %d, white %d", step, result.GameMetric.BlackCount, result.GameMetric.WhiteCount)
	return result, nil
}
