package experiments

import (
	"othello/agent"
	"othello/experiments/metrics"
	"othello/predictor"
	"othello/searcher"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBadAgentSpec is returned for an agent description ParseAgentConfig cannot read.
var ErrBadAgentSpec = errors.New("bad agent spec")

// ParseAgentConfig reads a description such as "random", "mcts:1000",
// "biased:500", "sampling:500:0.5", "model:http://host:8000" or
// "scored:200:http://host:8000".
func ParseAgentConfig(id int, spec string, seed uint64) (metrics.AgentConfig, error) {
	config := metrics.AgentConfig{ID: id, Seed: seed}
	kind, rest, _ := strings.Cut(spec, ":")
	config.Kind = kind

	switch kind {
	case "random":
		if rest != "" {
			return config, errors.Wrapf(ErrBadAgentSpec, "%q takes no arguments", spec)
		}
		return config, nil
	case "model":
		if rest == "" {
			return config, errors.Wrapf(ErrBadAgentSpec, "%q needs a URL", spec)
		}
		config.URL = rest
		return config, nil
	case "mcts", "biased", "sampling", "scored":
	default:
		return config, errors.Wrapf(ErrBadAgentSpec, "unknown agent %q", kind)
	}

	count, rest, _ := strings.Cut(rest, ":")
	iterations, err := strconv.Atoi(count)
	if err != nil || iterations <= 0 {
		return config, errors.Wrapf(ErrBadAgentSpec, "%q needs a positive iteration count", spec)
	}
	config.Iterations = iterations

	switch kind {
	case "sampling":
		config.Temperature = 1.0
		if rest != "" {
			temperature, err := strconv.ParseFloat(rest, 64)
			if err != nil || temperature <= 0 {
				return config, errors.Wrapf(ErrBadAgentSpec, "%q needs a positive temperature", spec)
			}
			config.Temperature = temperature
		}
	case "scored":
		if rest == "" {
			return config, errors.Wrapf(ErrBadAgentSpec, "%q needs a URL", spec)
		}
		config.URL = rest
	default:
		if rest != "" {
			return config, errors.Wrapf(ErrBadAgentSpec, "unexpected %q in %q", rest, spec)
		}
	}
	return config, nil
}

// NewAgent builds a fresh agent for one game.
func NewAgent(config metrics.AgentConfig) agent.Agent {
	rng := rand.New(rand.NewSource(config.Seed))
	switch config.Kind {
	case "random":
		return agent.NewRandomAgent(rng)
	case "model":
		return agent.NewPredictorAgent(predictor.NewClient(config.URL, nil).Predictor(), predictor.DefaultTimeout)
	case "sampling":
		return agent.NewSamplingAgent(createMCTS(config, searcher.UniformRollout{}, rng), config.Temperature, rng)
	case "biased":
		return agent.NewEvaluationAgent(createMCTS(config, searcher.BiasedRollout{}, rng))
	case "scored":
		rollout := searcher.ScoredRollout{Predictor: predictor.NewClient(config.URL, nil).Predictor()}
		return agent.NewEvaluationAgent(createMCTS(config, rollout, rng))
	}
	return agent.NewEvaluationAgent(createMCTS(config, searcher.UniformRollout{}, rng))
}

func createMCTS(config metrics.AgentConfig, rollout searcher.Rollout, rng *rand.Rand) *searcher.MCTS {
	return searcher.NewMCTS(
		searcher.WithIterations(config.Iterations),
		searcher.WithRollout(rollout),
		searcher.WithRand(rng),
		searcher.WithMetrics(),
	)
}
