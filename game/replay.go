package game

import "github.com/pkg/errors"

// ErrIllegalMove is returned when a recorded move is not legal in its position.
var ErrIllegalMove = errors.New("illegal move")

// Snapshot is the occupancy right after one move of a replayed game.
type Snapshot struct {
	Move   Move
	Player Color
	Black  Bitboard
	White  Bitboard
}

// Replay plays moves from the opening position and returns one snapshot per
// applied move. Game records usually omit forced passes, so a pass is
// inserted whenever the side to move has no legal square; explicit passes
// are accepted too.
func Replay(t *Tables, moves []Move) ([]Snapshot, error) {
	state := NewState(t)
	snapshots := make([]Snapshot, 0, len(moves))
	record := func(m Move, player Color) {
		board := state.Board()
		snapshots = append(snapshots, Snapshot{
			Move:   m,
			Player: player,
			Black:  board.Occupancy(Black),
			White:  board.Occupancy(White),
		})
	}

	for i, m := range moves {
		if state.GameOver() {
			return snapshots, errors.Wrapf(ErrIllegalMove, "move %d (%v) after the game ended", i, m)
		}
		legal := state.LegalMoves()
		if legal == 0 {
			player := state.Player()
			state.Pass()
			if m.IsPass() {
				record(Pass, player)
				continue
			}
			record(Pass, player)
			if state.GameOver() {
				return snapshots, errors.Wrapf(ErrIllegalMove, "move %d (%v) after the game ended", i, m)
			}
			legal = state.LegalMoves()
		}
		if m.IsPass() || !legal.Has(m) {
			return snapshots, errors.Wrapf(ErrIllegalMove, "move %d (%v) for %v", i, m, state.Player())
		}
		player := state.Player()
		state.Play(m)
		record(m, player)
	}
	return snapshots, nil
}
