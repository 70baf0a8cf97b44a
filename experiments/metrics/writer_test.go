package metrics

import (
	"encoding/csv"
	"os"
	"othello/game"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "unit")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "unit"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: "mcts", Iterations: 100, Seed: 7},
			{ID: 2, Kind: "random"},
		}))
		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "mcts", "100", "0", "7", ""}, rows[1])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			ID: 1, Black: 1, White: 2,
			GameMetric: GameMetric{
				StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
				TotalMoves: 60, Outcome: game.BlackWins, BlackCount: 40, WhiteCount: 24,
			},
		}}))
		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "1", "40", "24", "60", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step: 1, Player: game.Black, Move: 19, Black: 0x0000000818080000, White: 0x0000001000000000,
				SearchMetric: SearchMetric{Duration: time.Millisecond, Iterations: 10, Rollouts: 9, Nodes: 14, IsTreeReset: true},
			},
		}}))
		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "d3", rows[1][3])
		require.Equal(t, "black", rows[1][2])
		require.Equal(t, "true", rows[1][10])
	})
}

func TestCollector(t *testing.T) {
	t.Run("counts a search", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.SetTreeReset(true)
		c.AddIteration()
		c.AddIteration()
		c.AddRollout()
		c.SetNodes(5)
		metric := c.Complete()
		require.Equal(t, 2, metric.Iterations)
		require.Equal(t, 1, metric.Rollouts)
		require.Equal(t, 5, metric.Nodes)
		require.True(t, metric.IsTreeReset)
	})

	t.Run("start clears counters", func(t *testing.T) {
		c := NewCollector()
		c.AddIteration()
		c.Start()
		require.Zero(t, c.Complete().Iterations)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddIteration()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
