package searcher

import (
	"bytes"
	"othello/game"
	"strconv"
	"text/template"

	"github.com/awalterschulze/gographviz"
)

type graphNode struct {
	*node
	ID     int
	Player game.Color // Side that played Move
}

func (g graphNode) Move() string { return g.move.String() }
func (g graphNode) Visits() int  { return g.chosen }
func (g graphNode) Base() int    { return g.base }
func (g graphNode) Rewards() int { return g.rewards }
func (g graphNode) Mean() string { return strconv.FormatFloat(g.mean(), 'f', 3, 64) }

// ToDot renders the retained tree down to maxDepth as a Graphviz digraph.
func (m *MCTS) ToDot(maxDepth int) string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	if err := g.SetDir(true); err != nil {
		panic(err)
	}
	if m.root == nil {
		return g.String()
	}

	var buf bytes.Buffer
	next := 0
	var walk func(n *node, player game.Color, depth int) string
	walk = func(n *node, player game.Color, depth int) string {
		gn := graphNode{node: n, ID: next, Player: player.Opponent()}
		next++
		name := strconv.Itoa(gn.ID)

		buf.Reset()
		if err := tmpl.Execute(&buf, gn); err != nil {
			panic(err)
		}
		g.AddNode("G", name, map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		})

		if depth >= maxDepth {
			return name
		}
		for _, child := range n.children {
			kid := walk(child, player.Opponent(), depth+1)
			g.AddEdge(name, kid, true, nil)
		}
		return name
	}
	walk(m.root, m.rootState.Player(), 0)
	return g.String()
}

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Node ID</TD><TD>{{.ID}}</TD></TR>
<TR><TD>Move</TD><TD>{{.Move}}</TD></TR>
<TR><TD>Player</TD><TD>{{.Player}}</TD></TR>
<TR><TD>Visits</TD><TD>{{.Visits}}</TD></TR>
<TR><TD>Base</TD><TD>{{.Base}}</TD></TR>
<TR><TD>Rewards</TD><TD>{{.Rewards}}</TD></TR>
<TR><TD>Mean</TD><TD>{{.Mean}}</TD></TR>
</TABLE>
>`

var tmpl = template.Must(template.New("node").Parse(tmplRaw))
