package searcher

import (
	"othello/game"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDot(t *testing.T) {
	t.Run("empty tree", func(t *testing.T) {
		m := NewMCTS(WithIterations(1))
		require.Contains(t, m.ToDot(3), "digraph G")
	})

	t.Run("depth limit", func(t *testing.T) {
		m := NewMCTS(WithIterations(100), WithSeed(12))
		_, err := m.FindNextMove(game.NewState(nil))
		require.NoError(t, err)

		dot := m.ToDot(1)
		require.Contains(t, dot, "digraph G")
		require.Equal(t, 1+len(m.root.children), strings.Count(dot, "Node ID"))
		require.Contains(t, dot, "d3")
	})
}
