package searcher

import (
	"context"
	"othello/game"
	"othello/predictor"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// singleMoveState has black on a1 and white on b1, so c1 is black's only move.
func singleMoveState() game.State {
	board := game.BoardFromBitboards(nil, 0x1, 0x2)
	return game.StateFromBoard(board, game.Black)
}

func checkInvariants(t *testing.T, n *node) {
	t.Helper()
	sum := 0
	for _, child := range n.children {
		sum += child.chosen
		checkInvariants(t, child)
	}
	require.LessOrEqual(t, sum, n.chosen)
	require.LessOrEqual(t, abs(n.rewards), n.chosen)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func collect(n *node, into map[*node]bool) {
	into[n] = true
	for _, child := range n.children {
		collect(child, into)
	}
}

func TestNewMCTS(t *testing.T) {
	t.Run("panics without iterations", func(t *testing.T) {
		require.Panics(t, func() { NewMCTS() })
		require.Panics(t, func() { NewMCTS(WithIterations(0)) })
	})
}

func TestFindNextMove(t *testing.T) {
	t.Run("single legal move is always chosen", func(t *testing.T) {
		state := singleMoveState()
		require.Equal(t, game.Bitboard(0x4), state.LegalMoves())
		for _, n := range []int{1, 2, 5, 50} {
			m := NewMCTS(WithIterations(n), WithSeed(1))
			move, err := m.FindNextMove(state)
			require.NoError(t, err)
			require.Equal(t, game.Move(2), move, "iterations %d", n)
		}
	})

	t.Run("no legal move means pass", func(t *testing.T) {
		board := game.BoardFromBitboards(nil, 0x1, 0x2)
		state := game.StateFromBoard(board, game.White)
		m := NewMCTS(WithIterations(10))
		move, err := m.FindNextMove(state)
		require.NoError(t, err)
		require.Equal(t, game.Pass, move)
	})

	t.Run("opening search keeps statistics consistent", func(t *testing.T) {
		state := game.NewState(nil)
		m := NewMCTS(WithIterations(300), WithSeed(2), WithMetrics())
		move, err := m.FindNextMove(state)
		require.NoError(t, err)
		require.True(t, state.LegalMoves().Has(move))

		total := 0
		for _, visits := range m.Policy() {
			total += visits
		}
		require.Equal(t, 300, total)
		require.Len(t, m.Policy(), 4)
		checkInvariants(t, m.root)

		metric := m.Metrics()
		require.Equal(t, 300, metric.Iterations)
		require.Equal(t, m.root.size(), metric.Nodes)
		require.True(t, metric.IsTreeReset)
	})

	t.Run("same seed gives the same search", func(t *testing.T) {
		state := game.NewState(nil)
		a := NewMCTS(WithIterations(200), WithSeed(9), WithRollout(BiasedRollout{}))
		b := NewMCTS(WithIterations(200), WithSeed(9), WithRollout(BiasedRollout{}))
		moveA, err := a.FindNextMove(state)
		require.NoError(t, err)
		moveB, err := b.FindNextMove(state)
		require.NoError(t, err)
		require.Equal(t, moveA, moveB)
		require.Equal(t, a.Policy(), b.Policy())
	})
}

func TestTreeReuse(t *testing.T) {
	t.Run("pruning keeps only the played subtree", func(t *testing.T) {
		state := game.NewState(nil)
		m := NewMCTS(WithIterations(400), WithSeed(3))
		move, err := m.FindNextMove(state)
		require.NoError(t, err)

		kept := m.root.find(move)
		require.NotNil(t, kept)
		wantSize := kept.size()
		dropped := map[*node]bool{}
		for _, child := range m.root.children {
			if child != kept {
				collect(child, dropped)
			}
		}
		require.NotEmpty(t, dropped)

		m.Acknowledge(move)
		require.Same(t, kept, m.root)
		require.Equal(t, wantSize, m.root.size())

		reachable := map[*node]bool{}
		collect(m.root, reachable)
		for n := range dropped {
			require.False(t, reachable[n], "discarded node still reachable")
		}
	})

	t.Run("retained tree is reused on the next turn", func(t *testing.T) {
		state := game.NewState(nil)
		m := NewMCTS(WithIterations(400), WithSeed(4), WithMetrics())
		move, err := m.FindNextMove(state)
		require.NoError(t, err)
		state.Play(move)
		m.Acknowledge(move)

		reply := state.LegalMoves().Squares()[0]
		state.Play(reply)
		m.Acknowledge(reply)
		if m.root == nil {
			t.Skip("reply was never expanded")
		}
		visits := m.root.chosen

		_, err = m.FindNextMove(state)
		require.NoError(t, err)
		require.False(t, m.Metrics().IsTreeReset)
		require.Equal(t, visits+400, m.root.chosen)
	})

	t.Run("unknown move discards the tree", func(t *testing.T) {
		m := NewMCTS(WithIterations(50), WithSeed(5))
		_, err := m.FindNextMove(game.NewState(nil))
		require.NoError(t, err)
		m.Acknowledge(game.Move(0))
		require.Nil(t, m.root)
		require.Empty(t, m.Policy())
	})

	t.Run("mismatched position starts a new tree", func(t *testing.T) {
		m := NewMCTS(WithIterations(50), WithSeed(6), WithMetrics())
		state := game.NewState(nil)
		_, err := m.FindNextMove(state)
		require.NoError(t, err)

		other := game.NewState(nil)
		other.Play(other.LegalMoves().Squares()[0])
		_, err = m.FindNextMove(other)
		require.NoError(t, err)
		require.True(t, m.Metrics().IsTreeReset)
		require.Equal(t, 50, m.root.chosen)
	})
}

type fixedPredictor struct {
	move game.Move
}

func (p fixedPredictor) Predict(context.Context, predictor.Request) (game.Move, error) {
	return p.move, nil
}

func TestScoredSearch(t *testing.T) {
	t.Run("illegal prediction aborts the search", func(t *testing.T) {
		m := NewMCTS(WithIterations(10), WithRollout(ScoredRollout{Predictor: fixedPredictor{move: 0}}))
		_, err := m.FindNextMove(game.NewState(nil))
		require.Error(t, err)
		require.True(t, errors.Is(err, predictor.ErrIllegalPrediction))
		require.Nil(t, m.root)
	})
}
