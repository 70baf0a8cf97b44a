package metrics

import (
	"othello/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration    time.Duration
	Iterations  int
	Rollouts    int // Iterations that ended in a playout rather than at a terminal node
	Nodes       int // Tree size after the search
	IsTreeReset bool
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   game.Move
	Black  game.Bitboard // Occupancy after the move
	White  game.Bitboard
	SearchMetric
}

type GameMetric struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Outcome    int // game.BlackWins, game.WhiteWins or game.Draw
	BlackCount int
	WhiteCount int
}

type Collector interface {
	Start()
	SetTreeReset(value bool)
	AddIteration()
	AddRollout()
	SetNodes(nodes int)
	Complete() SearchMetric
}

type collector struct {
	startTime   time.Time
	iterations  atomic.Int32
	rollouts    atomic.Int32
	nodes       atomic.Int32
	isTreeReset atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.iterations.Store(0)
	m.rollouts.Store(0)
	m.nodes.Store(0)
}

func (m *collector) SetTreeReset(value bool) {
	m.isTreeReset.Store(value)
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) SetNodes(nodes int) {
	m.nodes.Store(int32(nodes))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:    time.Since(m.startTime),
		Iterations:  int(m.iterations.Load()),
		Rollouts:    int(m.rollouts.Load()),
		Nodes:       int(m.nodes.Load()),
		IsTreeReset: m.isTreeReset.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) SetTreeReset(value bool) {}
func (m *dummyCollector) AddIteration()           {}
func (m *dummyCollector) AddRollout()             {}
func (m *dummyCollector) SetNodes(nodes int)      {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
