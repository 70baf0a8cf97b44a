package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	iterations int
	rollout    Rollout
	rng        *rand.Rand
	root       *node
	rootState  game.State // Position the retained root stands for
	metrics    metrics.Collector
	last       metrics.SearchMetric
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithRollout(rollout Rollout) Option {
	return func(m *MCTS) {
		if rollout != nil {
			m.rollout = rollout
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		rollout: UniformRollout{},
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 {
		panic("Must specify search iterations")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// FindNextMove searches from state and returns the most visited root child.
// It returns game.Pass without searching when the side to move has no
// legal square.
func (m *MCTS) FindNextMove(state game.State) (game.Move, error) {
	if state.LegalMoves() == 0 {
		m.last = metrics.SearchMetric{}
		return game.Pass, nil
	}

	m.findRoot(state)
	m.metrics.Start()
	for i := 0; i < m.iterations; i++ {
		working := state
		if _, err := m.simulate(m.root, &working); err != nil {
			m.root = nil
			return game.Pass, errors.WithMessagef(err, "search aborted after %d iterations", i)
		}
		m.metrics.AddIteration()
	}
	m.metrics.SetNodes(m.root.size())
	m.last = m.metrics.Complete()

	best := m.root.robustChild()
	log.Debug().
		Str("player", state.Player().String()).
		Str("move", best.move.String()).
		Int("visits", best.chosen).
		Float64("mean", best.mean()).
		Msg("search complete")
	return best.move, nil
}

// Acknowledge advances the retained tree past a committed move. The matching
// child becomes the root and its siblings are dropped; without a match the
// tree is discarded.
func (m *MCTS) Acknowledge(move game.Move) {
	if m.root == nil {
		return
	}
	child := m.root.find(move)
	m.root.children = nil
	m.root = child
	if child != nil {
		m.rootState.Play(move)
	}
}

func (m *MCTS) findRoot(state game.State) {
	if m.root != nil && m.rootState.Hash() == state.Hash() {
		m.metrics.SetTreeReset(false)
		return
	}
	if m.root != nil {
		log.Warn().Msgf("retained tree does not match position %d, starting a new tree", state.Hash())
	}
	m.root = newNode(game.Pass)
	m.rootState = state
	m.metrics.SetTreeReset(true)
}

// simulate runs one iteration below n and returns the reward added to n.
func (m *MCTS) simulate(n *node, state *game.State) (int, error) {
	if !n.expanded() {
		if state.GameOver() {
			outcome := state.Outcome()
			n.rewards += outcome
			n.chosen++
			return outcome, nil
		}

		n.expand(state)
		child := n.children[m.rng.Intn(len(n.children))]
		state.Play(child.move)
		if err := m.rollout.Rollout(state, m.rng); err != nil {
			return 0, err
		}
		m.metrics.AddRollout()

		outcome := state.Outcome()
		child.rewards += outcome
		child.chosen++
		n.rewards += outcome
		n.chosen++
		return outcome, nil
	}

	for _, child := range n.children {
		child.base++
	}
	n.chosen++

	child := n.selectChild(state.Player())
	state.Play(child.move)
	delta, err := m.simulate(child, state)
	if err != nil {
		return 0, err
	}
	n.rewards += delta
	return delta, nil
}

// Policy returns the visit count of every root child.
func (m *MCTS) Policy() map[game.Move]int {
	policy := make(map[game.Move]int)
	if m.root == nil {
		return policy
	}
	for _, child := range m.root.children {
		policy[child.move] = child.chosen
	}
	return policy
}

// Metrics returns the figures of the most recent search.
func (m *MCTS) Metrics() metrics.SearchMetric {
	return m.last
}
