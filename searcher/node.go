package searcher

import "othello/game"

type node struct {
	move     game.Move // Move that led here from the parent, or game.Pass
	children []*node   // nil until expanded
	rewards  int       // Net black wins through this node
	base     int       // Parent visits since this node was created
	chosen   int       // Visits of this node
}

func newNode(move game.Move) *node {
	return &node{move: move}
}

func (n *node) expanded() bool {
	return n.children != nil
}

// expand adds one child per legal move, or a single pass child.
func (n *node) expand(state *game.State) {
	legal := state.LegalMoves()
	if legal == 0 {
		n.children = []*node{newNode(game.Pass)}
		return
	}
	moves := legal.Squares()
	n.children = make([]*node, len(moves))
	for i, move := range moves {
		n.children[i] = newNode(move)
	}
}

func (n *node) find(move game.Move) *node {
	for _, child := range n.children {
		if child.move == move {
			return child
		}
	}
	return nil
}

func (n *node) size() int {
	count := 1
	for _, child := range n.children {
		count += child.size()
	}
	return count
}

func (n *node) mean() float64 {
	if n.chosen == 0 {
		return 0
	}
	return float64(n.rewards) / float64(n.chosen)
}
