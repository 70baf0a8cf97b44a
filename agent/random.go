package agent

import (
	"othello/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays a uniformly random legal move.
func NewRandomAgent(rng *rand.Rand) Agent {
	return &randomAgent{rng: rng}
}

func (a *randomAgent) FindMove(state game.State) (game.Move, error) {
	legal := state.LegalMoves()
	if legal == 0 {
		return game.Pass, nil
	}
	moves := legal.Squares()
	return moves[a.rng.Intn(len(moves))], nil
}

func (a *randomAgent) Acknowledge(game.Move) {}
