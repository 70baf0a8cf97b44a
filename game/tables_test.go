package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineMasks(t *testing.T) {
	t.Run("moves bracket enemy runs", func(t *testing.T) {
		// self on bit 0, enemy on 1-2: move on 3
		require.Equal(t, uint8(0b1000), computeMoves(0b1, 0b110))
		// no self piece, no move
		require.Zero(t, computeMoves(0, 0b110))
		// both ends
		require.Equal(t, uint8(0b1000_0001), computeMoves(0b0001_0000, 0b0110_1110))
	})

	t.Run("captures need a closing piece", func(t *testing.T) {
		require.Equal(t, uint8(0b0110), computeCaptures(0b1, 0b0110, 3))
		require.Zero(t, computeCaptures(0, 0b0110, 3))
		require.Zero(t, computeCaptures(0b1, 0b0110, 2), "occupied square")
		require.Equal(t, uint8(0b0111_1110), computeCaptures(0b1000_0000, 0b0111_1110, 0))
	})

	t.Run("white tables mirror black", func(t *testing.T) {
		tables := DefaultTables()
		require.Equal(t, tables.Moves[0b1][0b110][Black], tables.Moves[0b110][0b1][White])
		require.Equal(t, tables.Captures[0b1][0b110][Black][3], tables.Captures[0b110][0b1][White][3])
	})
}

func TestSegments(t *testing.T) {
	tables := DefaultTables()

	for o := Orientation(0); o < numOrientations; o++ {
		var covered uint64
		for _, seg := range tables.Segments(o) {
			bits := seg.mask() << seg.Offset
			require.Zero(t, covered&bits, "orientation %d overlaps at %d", o, seg.Offset)
			require.Equal(t, int(seg.Offset)/8, int(seg.Offset+seg.Length-1)/8, "segment crosses a byte")
			covered |= bits
		}
		require.Equal(t, ^uint64(0), covered, "orientation %d", o)
	}

	t.Run("diagonal lengths", func(t *testing.T) {
		require.Len(t, tables.Segments(Upright), 8)
		require.Len(t, tables.Segments(Pseudo45CW), 15)
		require.Len(t, tables.Segments(Pseudo45CCW), 15)
		// a1 and h8 share the long diagonal
		require.Equal(t, tables.spans[Pseudo45CW][0].offset, tables.spans[Pseudo45CW][63].offset)
		require.Equal(t, uint8(8), tables.spans[Pseudo45CW][0].length)
		require.Equal(t, uint8(1), tables.spans[Pseudo45CW][7].length, "h1 is alone on its diagonal")
	})
}
