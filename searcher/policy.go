package searcher

import (
	"math"
	"othello/game"
)

type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// selectChild returns the first unvisited child, otherwise the child with the
// best UCB1 score for player. Rewards are negated for white, so maximising
// -mean + explore is the same as white minimising mean - explore.
func (n *node) selectChild(player game.Color) *node {
	sign := 1.0
	if player == game.White {
		sign = -1.0
	}

	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		if child.chosen == 0 {
			return child
		}
		// base >= 1 here: the caller bumps every child's base before selecting
		policy := newUCT(CSquared, float64(child.base))
		score := policy.evaluate(sign*float64(child.rewards), float64(child.chosen))
		if score > bestScore {
			best, bestScore = child, score
		}
	}
	return best
}

// robustChild returns the most visited child; ties go to the earliest.
func (n *node) robustChild() *node {
	var best *node
	for _, child := range n.children {
		if best == nil || child.chosen > best.chosen {
			best = child
		}
	}
	return best
}
