package agent

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"sort"

	"golang.org/x/exp/rand"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent plays the most visited move of every search.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state game.State) (game.Move, error) {
	return a.mcts.FindNextMove(state)
}

func (a evaluationAgent) Acknowledge(move game.Move) {
	a.mcts.Acknowledge(move)
}

func (a evaluationAgent) Metrics() metrics.SearchMetric {
	return a.mcts.Metrics()
}

type samplingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewSamplingAgent searches like NewEvaluationAgent but samples the move from
// the root visit counts raised to 1/temperature, for more varied games.
func NewSamplingAgent(mcts *searcher.MCTS, temperature float64, rng *rand.Rand) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &samplingAgent{mcts: mcts, temperature: temperature, rng: rng}
}

func (a *samplingAgent) FindMove(state game.State) (game.Move, error) {
	best, err := a.mcts.FindNextMove(state)
	if err != nil || best.IsPass() {
		return best, err
	}
	policy := adjustTemperature(a.mcts.Policy(), a.temperature)
	return sample(policy, a.rng.Float64()), nil
}

func (a *samplingAgent) Acknowledge(move game.Move) {
	a.mcts.Acknowledge(move)
}

func (a *samplingAgent) Metrics() metrics.SearchMetric {
	return a.mcts.Metrics()
}

type weightedMove struct {
	move game.Move
	prob float64
}

func adjustTemperature(visits map[game.Move]int, temperature float64) []weightedMove {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]weightedMove, 0, len(visits))
	for move, visit := range visits {
		prob := math.Pow(float64(visit), exponent)
		sum += prob
		policy = append(policy, weightedMove{move: move, prob: prob})
	}
	sort.Slice(policy, func(i, j int) bool { return policy[i].move < policy[j].move })
	// Normalize
	for i := range policy {
		policy[i].prob /= sum
	}
	return policy
}

func sample(policy []weightedMove, sampled float64) game.Move {
	cumulative := 0.0
	for _, wm := range policy {
		cumulative += wm.prob
		if sampled < cumulative {
			return wm.move
		}
	}
	return policy[len(policy)-1].move // Fallback in case of rounding errors
}
