package game

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, bit i = square i (a1 = 0, h8 = 63).
type Bitboard uint64

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Has reports whether square m is in the set.
func (b Bitboard) Has(m Move) bool {
	return b&m.Bitboard() != 0
}

// Squares lists the squares of the set in ascending order.
func (b Bitboard) Squares() []Move {
	squares := make([]Move, 0, b.Count())
	for v := uint64(b); v != 0; v &= v - 1 {
		squares = append(squares, Move(bits.TrailingZeros64(v)))
	}
	return squares
}

// String draws the set as an 8x8 grid, rank 8 on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		for col := 0; col < 8; col++ {
			if b.Has(Move(8*row + col)) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Orientation identifies one of the four frames in which every line of one
// direction is packed into a contiguous run of a single byte.
type Orientation int

const (
	// Upright packs rows.
	Upright Orientation = iota
	// Rotated90 packs columns.
	Rotated90
	// Pseudo45CW packs the a1-h8 direction diagonals.
	Pseudo45CW
	// Pseudo45CCW packs the h1-a8 direction antidiagonals.
	Pseudo45CCW

	numOrientations = 4
)

func rotr(b uint64, c uint) uint64 {
	return bits.RotateLeft64(b, -int(c))
}

func flipHorizontal(b uint64) uint64 {
	const (
		k1 = 0x5555555555555555
		k2 = 0x3333333333333333
		k4 = 0x0f0f0f0f0f0f0f0f
	)
	b = ((b >> 4) & k4) | ((b & k4) << 4)
	b = ((b >> 2) & k2) | ((b & k2) << 2)
	b = ((b >> 1) & k1) | ((b & k1) << 1)
	return b
}

func flipDiag(b uint64) uint64 {
	const (
		k1 = 0x5500550055005500
		k2 = 0x3333000033330000
		k4 = 0x0f0f0f0f00000000
	)
	t := k4 & (b ^ (b << 28))
	b ^= t ^ (t >> 28)
	t = k2 & (b ^ (b << 14))
	b ^= t ^ (t >> 14)
	t = k1 & (b ^ (b << 7))
	b ^= t ^ (t >> 7)
	return b
}

func flipAntiDiag(b uint64) uint64 {
	const (
		k1 = 0xaa00aa00aa00aa00
		k2 = 0xcccc0000cccc0000
		k4 = 0xf0f0f0f00f0f0f0f
	)
	t := b ^ (b << 36)
	b ^= k4 & (t ^ (b >> 36))
	t = k2 & (b ^ (b << 18))
	b ^= t ^ (t >> 18)
	t = k1 & (b ^ (b << 9))
	b ^= t ^ (t >> 9)
	return b
}

func rotate90CW(b uint64) uint64 {
	return flipDiag(flipHorizontal(b))
}

func rotate90CCW(b uint64) uint64 {
	return flipAntiDiag(flipHorizontal(b))
}

func pseudoRotate45CW(b uint64) uint64 {
	const (
		k1 = 0xAAAAAAAAAAAAAAAA
		k2 = 0xCCCCCCCCCCCCCCCC
		k4 = 0xF0F0F0F0F0F0F0F0
	)
	b ^= k1 & (b ^ rotr(b, 8))
	b ^= k2 & (b ^ rotr(b, 16))
	b ^= k4 & (b ^ rotr(b, 32))
	return b
}

func pseudoRotate45CCW(b uint64) uint64 {
	const (
		k1 = 0x5555555555555555
		k2 = 0x3333333333333333
		k4 = 0x0f0f0f0f0f0f0f0f
	)
	b ^= k1 & (b ^ rotr(b, 8))
	b ^= k2 & (b ^ rotr(b, 16))
	b ^= k4 & (b ^ rotr(b, 32))
	return b
}

// toFrame maps an upright bitboard into orientation o.
func toFrame(o Orientation, b uint64) uint64 {
	switch o {
	case Rotated90:
		return rotate90CW(b)
	case Pseudo45CW:
		return pseudoRotate45CW(b)
	case Pseudo45CCW:
		return pseudoRotate45CCW(b)
	}
	return b
}

// fromFrame is the inverse of toFrame.
func fromFrame(o Orientation, b uint64) uint64 {
	switch o {
	case Rotated90:
		return rotate90CCW(b)
	case Pseudo45CW:
		return rotr(pseudoRotate45CCW(b), 8)
	case Pseudo45CCW:
		return rotr(pseudoRotate45CW(b), 8)
	}
	return b
}
