package game

import (
	"math/bits"
	"sort"
	"sync"
)

// span locates one square inside its packed line for a given orientation.
type span struct {
	offset uint8 // lowest bit of the line in the orientation frame
	length uint8 // squares on the line, 1-8
	index  uint8 // position of the square within the line
}

// Segment is one packed line of an orientation frame.
type Segment struct {
	Offset uint8
	Length uint8
}

func (s Segment) mask() uint64 {
	return (1 << s.Length) - 1
}

// Tables holds the per-line move and capture masks and the square spans of
// every orientation. It is immutable once built and safe to share.
type Tables struct {
	// Moves[black][white][color] is the move mask of an isolated 8-square line.
	Moves [256][256][numColors]uint8
	// Captures[black][white][color][index] is the mask flipped by a piece
	// placed at index of an isolated 8-square line.
	Captures [256][256][numColors][8]uint8

	spans    [numOrientations][64]span
	segments [numOrientations][]Segment
}

var defaultTables = sync.OnceValue(NewTables)

// DefaultTables returns a process-wide instance built on first use.
func DefaultTables() *Tables {
	return defaultTables()
}

// NewTables computes every table from scratch.
func NewTables() *Tables {
	t := &Tables{}
	for black := 0; black < 256; black++ {
		for white := 0; white < 256; white++ {
			b, w := uint8(black), uint8(white)
			t.Moves[b][w][Black] = computeMoves(b, w)
			t.Moves[b][w][White] = computeMoves(w, b)
			for loc := uint8(0); loc < 8; loc++ {
				t.Captures[b][w][Black][loc] = computeCaptures(b, w, loc)
				t.Captures[b][w][White][loc] = computeCaptures(w, b, loc)
			}
		}
	}
	for o := Orientation(0); o < numOrientations; o++ {
		t.buildSpans(o)
	}
	return t
}

// Segments lists the packed lines of orientation o ordered by offset.
func (t *Tables) Segments(o Orientation) []Segment {
	return t.segments[o]
}

func (t *Tables) buildSpans(o Orientation) {
	for _, line := range lines(o) {
		frame := make([]int, len(line))
		low := 64
		for i, sq := range line {
			frame[i] = bitIndex(toFrame(o, 1<<uint(sq)))
			low = min(low, frame[i])
		}
		for i, sq := range line {
			t.spans[o][sq] = span{
				offset: uint8(low),
				length: uint8(len(line)),
				index:  uint8(frame[i] - low),
			}
		}
		t.segments[o] = append(t.segments[o], Segment{Offset: uint8(low), Length: uint8(len(line))})
	}
	sort.Slice(t.segments[o], func(i, j int) bool {
		return t.segments[o][i].Offset < t.segments[o][j].Offset
	})
}

// lines returns the geometric lines packed by orientation o, as square lists.
func lines(o Orientation) [][]int {
	var out [][]int
	switch o {
	case Upright:
		for r := 0; r < 8; r++ {
			var line []int
			for c := 0; c < 8; c++ {
				line = append(line, 8*r+c)
			}
			out = append(out, line)
		}
	case Rotated90:
		for c := 0; c < 8; c++ {
			var line []int
			for r := 0; r < 8; r++ {
				line = append(line, 8*r+c)
			}
			out = append(out, line)
		}
	case Pseudo45CW:
		for d := -7; d <= 7; d++ {
			var line []int
			for r := 0; r < 8; r++ {
				if c := r + d; c >= 0 && c < 8 {
					line = append(line, 8*r+c)
				}
			}
			out = append(out, line)
		}
	case Pseudo45CCW:
		for s := 0; s <= 14; s++ {
			var line []int
			for r := 0; r < 8; r++ {
				if c := s - r; c >= 0 && c < 8 {
					line = append(line, 8*r+c)
				}
			}
			out = append(out, line)
		}
	}
	return out
}

func bitIndex(b uint64) int {
	return bits.TrailingZeros64(b)
}

// computeMoves finds the empty squares of a line that bracket at least one
// enemy piece against a self piece.
func computeMoves(self, enemy uint8) uint8 {
	unocc := ^(self | enemy)

	captured := (self << 1) & enemy
	for i := 0; i < 5; i++ {
		captured |= (captured << 1) & enemy
	}
	moves := (captured << 1) & unocc

	captured = (self >> 1) & enemy
	for i := 0; i < 5; i++ {
		captured |= (captured >> 1) & enemy
	}
	moves |= (captured >> 1) & unocc

	return moves
}

// computeCaptures returns the enemy pieces flipped by a self piece placed at loc.
func computeCaptures(self, enemy, loc uint8) uint8 {
	placed := uint8(1) << loc
	if (self|enemy)&placed != 0 {
		return 0
	}
	var captures uint8

	run := (placed << 1) & enemy
	for i := 0; i < 5; i++ {
		run |= (run << 1) & enemy
	}
	if (run<<1)&self != 0 {
		captures |= run
	}

	run = (placed >> 1) & enemy
	for i := 0; i < 5; i++ {
		run |= (run >> 1) & enemy
	}
	if (run>>1)&self != 0 {
		captures |= run
	}

	return captures
}
