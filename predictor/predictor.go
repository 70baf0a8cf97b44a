// Package predictor is the contract with an external move-scoring model.
//
// The model sees the mover's and the opponent's occupancy plus the legal
// move mask and answers with one score per square. Illegal squares are
// masked before the arg-max, and an answer outside the legal set is a fatal
// consistency error for the caller.
package predictor

import (
	"context"
	"othello/game"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// ErrIllegalPrediction marks a predicted square that is not a legal move.
var ErrIllegalPrediction = errors.New("predicted move is not legal")

type Request struct {
	Mover    game.Bitboard
	Opponent game.Bitboard
	Legal    game.Bitboard
}

// NewRequest describes the position from the side to move.
func NewRequest(state *game.State) Request {
	board := state.Board()
	player := state.Player()
	return Request{
		Mover:    board.Occupancy(player),
		Opponent: board.Occupancy(player.Opponent()),
		Legal:    state.LegalMoves(),
	}
}

// Model scores every square of a position.
type Model interface {
	Scores(ctx context.Context, req Request) ([]float32, error)
}

// Predictor answers with a single square.
type Predictor interface {
	Predict(ctx context.Context, req Request) (game.Move, error)
}

// Picker turns a Model into a Predictor by masking illegal squares.
type Picker struct {
	Model Model
}

func (p Picker) Predict(ctx context.Context, req Request) (game.Move, error) {
	scores, err := p.Model.Scores(ctx, req)
	if err != nil {
		return game.Pass, errors.WithMessage(err, "scoring position")
	}
	return Pick(req, scores)
}

// Pick returns the legal square with the highest score, or game.Pass when
// nothing is legal. NaN scores never win.
func Pick(req Request, scores []float32) (game.Move, error) {
	if len(scores) != 64 {
		return game.Pass, errors.Errorf("expected 64 scores, got %d", len(scores))
	}
	if req.Legal == 0 {
		return game.Pass, nil
	}

	best := game.Pass
	bestScore := math32.Inf(-1)
	for _, sq := range req.Legal.Squares() {
		score := scores[sq]
		if math32.IsNaN(score) {
			continue
		}
		if best == game.Pass || score > bestScore {
			best, bestScore = sq, score
		}
	}
	if best == game.Pass {
		// every legal score was NaN
		best = req.Legal.Squares()[0]
	}
	return best, nil
}

// Check returns ErrIllegalPrediction when move is not in the legal set.
func Check(req Request, move game.Move) error {
	if move.IsPass() {
		if req.Legal == 0 {
			return nil
		}
	} else if req.Legal.Has(move) {
		return nil
	}
	return errors.Wrapf(ErrIllegalPrediction, "%v not in %v", move, req.Legal.Squares())
}
