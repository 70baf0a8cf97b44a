package game

import (
	"encoding/binary"
	"hash/fnv"
)

// StateHash identifies a position together with the side to move and pass flags.
type StateHash uint64

// State is a board plus turn keeping. Like Board it is a plain value;
// simulations copy it by assignment.
type State struct {
	board  Board
	player Color
	passed [numColors]bool
}

// NewState returns the opening position with black to move.
func NewState(t *Tables) State {
	return State{board: NewBoard(t), player: Black}
}

// StateFromBoard starts play from an arbitrary board with player to move.
func StateFromBoard(b Board, player Color) State {
	return State{board: b, player: player}
}

// Board returns a copy of the current board.
func (s *State) Board() Board {
	return s.board
}

// Player returns the side to move.
func (s *State) Player() Color {
	return s.player
}

// Passed reports whether c's most recent turn was a pass.
func (s *State) Passed(c Color) bool {
	return s.passed[c]
}

// LegalMoves returns the squares the side to move may play.
func (s *State) LegalMoves() Bitboard {
	return s.board.GenerateMoves(s.player)
}

// Play applies m for the side to move and hands the turn over. Pass is
// forwarded to s.Pass. Square moves are not validated.
func (s *State) Play(m Move) {
	if m.IsPass() {
		s.Pass()
		return
	}
	s.board.Apply(m, s.player)
	s.passed[s.player] = false
	s.player = s.player.Opponent()
}

// Pass records a pass for the side to move. It is only meaningful when
// LegalMoves is empty.
func (s *State) Pass() {
	s.passed[s.player] = true
	s.player = s.player.Opponent()
}

// GameOver reports whether the board is full, both sides passed in a row or
// one side has no pieces left.
func (s *State) GameOver() bool {
	return s.board.Empty() == 0 ||
		(s.passed[Black] && s.passed[White]) ||
		s.board.Count(Black) == 0 || s.board.Count(White) == 0
}

// Outcome returns BlackWins, WhiteWins or Draw by piece count. It is only
// meaningful once GameOver holds.
func (s *State) Outcome() int {
	diff := s.board.Count(Black) - s.board.Count(White)
	switch {
	case diff > 0:
		return BlackWins
	case diff < 0:
		return WhiteWins
	}
	return Draw
}

// Hash fingerprints the position, side to move and pass flags.
func (s *State) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, uint64(s.board.Occupancy(Black)))
	binary.Write(hasher, binary.LittleEndian, uint64(s.board.Occupancy(White)))
	binary.Write(hasher, binary.LittleEndian, int64(s.player))
	binary.Write(hasher, binary.LittleEndian, s.passed)
	return StateHash(hasher.Sum64())
}
