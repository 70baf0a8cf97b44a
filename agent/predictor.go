package agent

import (
	"context"
	"othello/game"
	"othello/predictor"
	"time"

	"github.com/pkg/errors"
)

type predictorAgent struct {
	predictor predictor.Predictor
	timeout   time.Duration
}

// NewPredictorAgent asks p once per turn and plays its answer without search.
func NewPredictorAgent(p predictor.Predictor, timeout time.Duration) Agent {
	return &predictorAgent{predictor: p, timeout: timeout}
}

func (a *predictorAgent) FindMove(state game.State) (game.Move, error) {
	req := predictor.NewRequest(&state)
	if req.Legal == 0 {
		return game.Pass, nil
	}

	ctx := context.Background()
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	move, err := a.predictor.Predict(ctx, req)
	if err != nil {
		return game.Pass, errors.WithMessage(err, "predictor agent")
	}
	if err := predictor.Check(req, move); err != nil {
		return game.Pass, err
	}
	return move, nil
}

func (a *predictorAgent) Acknowledge(game.Move) {}
