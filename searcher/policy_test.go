package searcher

import (
	"math"
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(2.0, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(2.0, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(2.0*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("exploration term shrinks with child visits", func(t *testing.T) {
		policy := newUCT(2.0, 100)
		require.Greater(t, policy.evaluate(5.0, 10), policy.evaluate(10.0, 20))
	})

	t.Run("single parent visit gives no exploration bonus", func(t *testing.T) {
		policy := newUCT(2.0, 1)
		require.InDelta(t, 0.5, policy.evaluate(1, 2), 1e-9)
	})
}

func parentOf(children ...*node) *node {
	return &node{children: children}
}

func TestSelectChild(t *testing.T) {
	t.Run("unvisited children come first", func(t *testing.T) {
		visited := &node{move: 1, rewards: 10, base: 10, chosen: 10}
		fresh := &node{move: 2}
		n := parentOf(visited, fresh)
		require.Same(t, fresh, n.selectChild(game.Black))
		require.Same(t, fresh, n.selectChild(game.White))
	})

	t.Run("black maximises mean reward", func(t *testing.T) {
		good := &node{move: 1, rewards: 8, base: 20, chosen: 10}
		bad := &node{move: 2, rewards: -8, base: 20, chosen: 10}
		n := parentOf(bad, good)
		require.Same(t, good, n.selectChild(game.Black))
	})

	t.Run("white minimises mean reward", func(t *testing.T) {
		good := &node{move: 1, rewards: 8, base: 20, chosen: 10}
		bad := &node{move: 2, rewards: -8, base: 20, chosen: 10}
		n := parentOf(good, bad)
		require.Same(t, bad, n.selectChild(game.White))
	})

	t.Run("exploration favours the less visited child", func(t *testing.T) {
		often := &node{move: 1, rewards: 0, base: 1000, chosen: 900}
		rarely := &node{move: 2, rewards: 0, base: 1000, chosen: 5}
		n := parentOf(often, rarely)
		require.Same(t, rarely, n.selectChild(game.Black))
		require.Same(t, rarely, n.selectChild(game.White))
	})
}

func TestRobustChild(t *testing.T) {
	t.Run("most visited wins over best mean", func(t *testing.T) {
		popular := &node{move: 1, rewards: 2, chosen: 50}
		lucky := &node{move: 2, rewards: 3, chosen: 3}
		require.Same(t, popular, parentOf(lucky, popular).robustChild())
	})

	t.Run("ties go to the earliest child", func(t *testing.T) {
		first := &node{move: 1, chosen: 7}
		second := &node{move: 2, chosen: 7}
		require.Same(t, first, parentOf(first, second).robustChild())
	})
}
