package searcher

import (
	"context"
	"othello/game"
	"othello/predictor"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const (
	corners  game.Bitboard = 0x8100000000000081 // a1 h1 a8 h8
	xSquares game.Bitboard = 0x0042000000004200 // b2 g2 b7 g7
)

// Rollout plays state to the end of the game in place.
type Rollout interface {
	Rollout(state *game.State, rng *rand.Rand) error
}

// UniformRollout picks every move uniformly among the legal ones.
type UniformRollout struct{}

func (UniformRollout) Rollout(state *game.State, rng *rand.Rand) error {
	return playOut(state, func(legal game.Bitboard) game.Bitboard { return legal }, rng)
}

// BiasedRollout takes a corner when it can and otherwise stays off the
// X-squares unless nothing else is legal.
type BiasedRollout struct{}

func (BiasedRollout) Rollout(state *game.State, rng *rand.Rand) error {
	return playOut(state, preferred, rng)
}

func preferred(legal game.Bitboard) game.Bitboard {
	if c := legal & corners; c != 0 {
		return c
	}
	if safe := legal &^ xSquares; safe != 0 {
		return safe
	}
	return legal
}

func playOut(state *game.State, filter func(game.Bitboard) game.Bitboard, rng *rand.Rand) error {
	for !state.GameOver() {
		legal := state.LegalMoves()
		if legal == 0 {
			state.Pass()
			continue
		}
		options := filter(legal).Squares()
		state.Play(options[rng.Intn(len(options))])
	}
	return nil
}

// ScoredRollout asks an external predictor for every move. An answer outside
// the legal set aborts the rollout with predictor.ErrIllegalPrediction.
type ScoredRollout struct {
	Predictor predictor.Predictor
}

func (r ScoredRollout) Rollout(state *game.State, _ *rand.Rand) error {
	ctx := context.Background()
	for !state.GameOver() {
		req := predictor.NewRequest(state)
		if req.Legal == 0 {
			state.Pass()
			continue
		}
		move, err := r.Predictor.Predict(ctx, req)
		if err != nil {
			return errors.WithMessage(err, "rollout prediction")
		}
		if err := predictor.Check(req, move); err != nil {
			return err
		}
		state.Play(move)
	}
	return nil
}
