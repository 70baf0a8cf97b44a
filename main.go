package main

import (
	"flag"
	"fmt"
	"os"
	"othello/agent"
	"othello/engine"
	"othello/experiments"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	black := flag.String("black", fmt.Sprintf("mcts:%d", meta.ITERATIONS), "Black agent: human, random, mcts:N, biased:N, sampling:N[:T], model:URL or scored:N:URL")
	white := flag.String("white", "random", "White agent, same forms as -black")
	games := flag.Int("games", meta.GAMES, "Number of games to play")
	seed := flag.Uint64("seed", meta.SEED, "Random seed, 0 for the clock")
	experiment := flag.String("experiment", "", "Run an experiment instead: iterations or rollouts")
	dot := flag.String("dot", "", "Write black's opening search tree as Graphviz DOT to this file and exit")
	depth := flag.Int("depth", meta.DOT_DEPTH, "Depth of the DOT tree")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	var err error
	switch {
	case *experiment != "":
		err = runExperiment(*experiment, *games, *seed)
	case *dot != "":
		err = writeDot(*black, *dot, *depth, *seed)
	default:
		err = play(*black, *white, *games, *seed)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("stopped")
	}
}

func runExperiment(name string, games int, seed uint64) error {
	var err error
	switch name {
	case "iterations":
		_, err = experiments.RunIterationSweep(experiments.Root, meta.ITERATIONS, games, seed)
	case "rollouts":
		_, err = experiments.RunRolloutComparison(experiments.Root, meta.ITERATIONS, games, seed)
	default:
		err = fmt.Errorf("unknown experiment %q", name)
	}
	return err
}

func newAgent(id int, spec string, seed uint64) (agent.Agent, error) {
	if spec == "human" {
		return agent.NewHumanAgent(os.Stdin, os.Stdout), nil
	}
	config, err := experiments.ParseAgentConfig(id, spec, seed)
	if err != nil {
		return nil, err
	}
	return experiments.NewAgent(config), nil
}

func play(blackSpec, whiteSpec string, games int, seed uint64) error {
	var tally experiments.Tally
	for i := 0; i < games; i++ {
		black, err := newAgent(0, blackSpec, seed+uint64(2*i))
		if err != nil {
			return err
		}
		white, err := newAgent(1, whiteSpec, seed+uint64(2*i+1))
		if err != nil {
			return err
		}

		e := engine.NewLocalEngine(black, white)
		result, err := e.Run()
		if err != nil {
			return err
		}
		board := e.State.Board()
		fmt.Print(board.String())

		tally.Add(result.Outcome)
		log.Info().Msgf("game %d of %d: black %d white %d", i+1, games, result.GameMetric.BlackCount, result.GameMetric.WhiteCount)
	}
	log.Info().Msgf("black wins %d, white wins %d, draws %d", tally.BlackWins, tally.WhiteWins, tally.Draws)
	return nil
}

func writeDot(spec, path string, depth int, seed uint64) error {
	config, err := experiments.ParseAgentConfig(0, spec, seed)
	if err != nil {
		return err
	}
	if config.Iterations == 0 {
		config.Iterations = meta.ITERATIONS
	}
	mcts := searcher.NewMCTS(searcher.WithIterations(config.Iterations), searcher.WithSeed(seed), searcher.WithMetrics())
	move, err := mcts.FindNextMove(game.NewState(nil))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(mcts.ToDot(depth)), 0644); err != nil {
		return err
	}
	log.Info().Msgf("best opening move %v after %s", move, metricsOf(mcts.Metrics()))
	return nil
}

func metricsOf(m metrics.SearchMetric) string {
	return fmt.Sprintf("%d iterations, %d nodes in %v", m.Iterations, m.Nodes, m.Duration)
}
