// Package game holds the Othello rules: bitboards, the precomputed line tables,
// the board with its four orientation views and the turn-keeping game state.
package game

import "fmt"

// Color is one of the two sides. It doubles as an index into per-colour arrays.
type Color int

const (
	Black Color = iota
	White

	numColors = 2
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Outcome values, always from black's point of view.
const (
	BlackWins = 1
	Draw      = 0
	WhiteWins = -1
)
