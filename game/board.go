package game

import "strings"

const (
	openingBlack Bitboard = 0x0000000810000000 // d5 e4
	openingWhite Bitboard = 0x0000001008000000 // d4 e5
)

// Board is the occupancy of both colours in all four orientation frames.
// The upright frame is canonical; the other three are recomputed from it
// after every mutation. Board is a plain value and copies by assignment.
type Board struct {
	tables *Tables
	views  [numOrientations][numColors]uint64
}

// NewBoard returns the standard opening position. A nil t uses DefaultTables.
func NewBoard(t *Tables) Board {
	return BoardFromBitboards(t, openingBlack, openingWhite)
}

// BoardFromBitboards builds a board from arbitrary upright occupancies.
// The two sets must not overlap.
func BoardFromBitboards(t *Tables, black, white Bitboard) Board {
	if t == nil {
		t = DefaultTables()
	}
	b := Board{tables: t}
	b.views[Upright][Black] = uint64(black)
	b.views[Upright][White] = uint64(white)
	b.derive()
	return b
}

func (b *Board) derive() {
	for o := Rotated90; o < numOrientations; o++ {
		for c := Black; c < numColors; c++ {
			b.views[o][c] = toFrame(o, b.views[Upright][c])
		}
	}
}

// Tables returns the lookup tables the board reads from.
func (b *Board) Tables() *Tables {
	return b.tables
}

// Occupancy returns the squares held by c.
func (b *Board) Occupancy(c Color) Bitboard {
	return Bitboard(b.views[Upright][c])
}

// Empty returns the unoccupied squares.
func (b *Board) Empty() Bitboard {
	return ^Bitboard(b.views[Upright][Black] | b.views[Upright][White])
}

// Count returns the number of pieces of c.
func (b *Board) Count(c Color) int {
	return b.Occupancy(c).Count()
}

// GenerateMoves returns every square where c may legally play, or 0.
func (b *Board) GenerateMoves(c Color) Bitboard {
	var moves uint64
	for o := Orientation(0); o < numOrientations; o++ {
		black, white := b.views[o][Black], b.views[o][White]
		var frame uint64
		for _, seg := range b.tables.Segments(o) {
			mask := seg.mask()
			bl := (black >> seg.Offset) & mask
			wl := (white >> seg.Offset) & mask
			frame |= (uint64(b.tables.Moves[bl][wl][c]) & mask) << seg.Offset
		}
		moves |= fromFrame(o, frame)
	}
	return Bitboard(moves)
}

// Captures returns the pieces flipped if c places a piece on m.
func (b *Board) Captures(m Move, c Color) Bitboard {
	var captures uint64
	for o := Orientation(0); o < numOrientations; o++ {
		sp := b.tables.spans[o][m]
		mask := uint64(1)<<sp.length - 1
		bl := (b.views[o][Black] >> sp.offset) & mask
		wl := (b.views[o][White] >> sp.offset) & mask
		line := uint64(b.tables.Captures[bl][wl][c][sp.index]) & mask
		captures |= fromFrame(o, line<<sp.offset)
	}
	return Bitboard(captures)
}

// Apply places a piece of c on m and flips the captured pieces. The move is
// not checked: m must be empty and legal for c.
func (b *Board) Apply(m Move, c Color) {
	flipped := uint64(b.Captures(m, c))
	b.views[Upright][c] |= flipped | uint64(m.Bitboard())
	b.views[Upright][c.Opponent()] &^= flipped
	b.derive()
}

// String draws the board with X for black and O for white, rank 8 on top.
func (b *Board) String() string {
	var sb strings.Builder
	black, white := b.Occupancy(Black), b.Occupancy(White)
	sb.WriteString("  a b c d e f g h\n")
	for row := 7; row >= 0; row-- {
		sb.WriteByte(byte('1' + row))
		for col := 0; col < 8; col++ {
			sq := Move(8*row + col)
			switch {
			case black.Has(sq):
				sb.WriteString(" X")
			case white.Has(sq):
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
