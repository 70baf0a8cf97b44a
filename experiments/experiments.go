// Package experiments runs agent-vs-agent competitions and stores their
// records as CSV files.
package experiments

import (
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	NumGames = 30 // Per match up
	Root     = "experiments"
)

type Tally struct {
	BlackWins int
	WhiteWins int
	Draws     int
}

func (t *Tally) Add(outcome int) {
	switch outcome {
	case game.BlackWins:
		t.BlackWins++
	case game.WhiteWins:
		t.WhiteWins++
	default:
		t.Draws++
	}
}

// RunIterationSweep pairs a baseline search against searches with more and
// fewer iterations, each match up played from both sides.
func RunIterationSweep(root string, baseline int, games int, seed uint64) (map[[2]int]Tally, error) {
	configs := []metrics.AgentConfig{{ID: 0, Kind: "mcts", Iterations: baseline, Seed: seed}}
	for i, factor := range []float64{0.25, 0.5, 2, 4} {
		configs = append(configs, metrics.AgentConfig{
			ID:         i + 1,
			Kind:       "mcts",
			Iterations: max(1, int(float64(baseline)*factor)),
			Seed:       seed + uint64(i) + 1,
		})
	}
	var matchUps [][2]metrics.AgentConfig
	for _, config := range configs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{configs[0], config}, [2]metrics.AgentConfig{config, configs[0]})
	}
	return RunCompetition(root, "iterations", configs, matchUps, games)
}

// RunRolloutComparison pits the uniform rollout against the biased one.
func RunRolloutComparison(root string, iterations int, games int, seed uint64) (map[[2]int]Tally, error) {
	uniform := metrics.AgentConfig{ID: 0, Kind: "mcts", Iterations: iterations, Seed: seed}
	biased := metrics.AgentConfig{ID: 1, Kind: "biased", Iterations: iterations, Seed: seed + 1}
	matchUps := [][2]metrics.AgentConfig{{uniform, biased}, {biased, uniform}}
	return RunCompetition(root, "rollouts", []metrics.AgentConfig{uniform, biased}, matchUps, games)
}

// RunCompetition plays games for every match up (black config first) and
// writes agent_configs.csv, game_records.csv and move_records.csv under
// root/name/<timestamp>. The returned tallies are keyed by config IDs.
func RunCompetition(root, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int) (map[[2]int]Tally, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	tallies := make(map[[2]int]Tally, len(matchUps))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		black, white := matchUp[0], matchUp[1]
		key := [2]int{black.ID, white.ID}
		tally := tallies[key]

		log.Info().Msgf("starting matchup %d of %d between black=%v and white=%v...", mi+1, len(matchUps), black, white)

		for i := 0; i < games; i++ {
			// Vary seeds per game so repeated match ups are not identical
			b, w := black, white
			b.Seed += uint64(i)
			w.Seed += uint64(i)
			e := engine.NewLocalEngine(NewAgent(b), NewAgent(w))
			result, err := e.Run()
			if err != nil {
				return tallies, errors.WithMessagef(err, "matchup %d game %d", mi+1, i+1)
			}
			tally.Add(result.Outcome)

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.MoveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with outcome %d", mi+1, len(matchUps), i+1, result.Outcome)
		}
		tallies[key] = tally
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(matchUps), tally)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return tallies, err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return tallies, err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return tallies, err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return tallies, err
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return tallies, nil
}
