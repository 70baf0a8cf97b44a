package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Move is a square index 0-63 (a1 = 0, h8 = 63) or Pass.
type Move int8

// Pass is the move played when the side to move has no legal square.
const Pass Move = -1

// ErrBadNotation is returned for text that is not of the form [a-h][1-8].
var ErrBadNotation = errors.New("bad move notation")

// IsPass reports whether m is the pass sentinel.
func (m Move) IsPass() bool {
	return m == Pass
}

// Row returns the rank index 0-7 (rank 1 = 0).
func (m Move) Row() int { return int(m) >> 3 }

// Col returns the file index 0-7 (file a = 0).
func (m Move) Col() int { return int(m) & 7 }

// Bitboard returns the single-square set for m, or 0 for a pass.
func (m Move) Bitboard() Bitboard {
	if m < 0 || m > 63 {
		return 0
	}
	return 1 << uint(m)
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	if m < 0 || m > 63 {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return string([]byte{byte('a' + m.Col()), byte('1' + m.Row())})
}

// ParseMove reads human notation such as "d3". "pass" is accepted as Pass.
func ParseMove(s string) (Move, error) {
	if s == "pass" {
		return Pass, nil
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Pass, errors.Wrapf(ErrBadNotation, "%q", s)
	}
	return Move(8*int(s[1]-'1') + int(s[0]-'a')), nil
}
