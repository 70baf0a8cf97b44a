package agent

import (
	"bufio"
	"fmt"
	"io"
	"othello/game"
	"strings"

	"github.com/pkg/errors"
)

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent reads moves such as "d3" line by line from in and prompts on
// out. Malformed or illegal input is reported and asked for again.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) FindMove(state game.State) (game.Move, error) {
	board := state.Board()
	legal := state.LegalMoves()
	fmt.Fprint(a.out, board.String())
	if legal == 0 {
		fmt.Fprintf(a.out, "%v has no legal move and passes\n", state.Player())
		return game.Pass, nil
	}

	for {
		fmt.Fprintf(a.out, "%v to move %v: ", state.Player(), legal.Squares())
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Pass, errors.Wrap(err, "failed to read move")
			}
			return game.Pass, io.ErrUnexpectedEOF
		}

		move, err := game.ParseMove(strings.TrimSpace(strings.ToLower(a.in.Text())))
		if err != nil {
			fmt.Fprintf(a.out, "%v, try again\n", err)
			continue
		}
		if move.IsPass() || !legal.Has(move) {
			fmt.Fprintf(a.out, "%v is not legal, try again\n", move)
			continue
		}
		return move, nil
	}
}

func (a *humanAgent) Acknowledge(game.Move) {}
