package experiments

import (
	"errors"
	"fmt"

	"connect3/engine"
	"connect3/experiments/metrics"
	"connect3/game"
	"connect3/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const NumGames = 30 // Per match up

var ErrUnknownKind = errors.New("unknown agent kind")

// MatchUp pairs two agents, Agent1 playing X and moving first
type MatchUp struct {
	Agent1 metrics.AgentConfig
	Agent2 metrics.AgentConfig
}

type Report struct {
	Name    string
	Configs []metrics.AgentConfig
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Tallies []metrics.Tally // Indexed like the match ups
}

var strategyConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.KindRandom},
	{ID: 2, Kind: metrics.KindMinimax},
	{ID: 3, Kind: metrics.KindAlphaBeta},
	{ID: 4, Kind: metrics.KindAlphaBeta, Discount: 0.9},
}

// RunStrategyComparison pits the random baseline against each search, then the
// searches against each other, and writes the records under dir
func RunStrategyComparison(dir string, games int, seed uint64) (Report, string, error) {
	random, minimax, alphaBeta, discounted := strategyConfigs[0], strategyConfigs[1], strategyConfigs[2], strategyConfigs[3]
	matchUps := []MatchUp{
		{Agent1: random, Agent2: random},
		{Agent1: random, Agent2: minimax},
		{Agent1: random, Agent2: alphaBeta},
		{Agent1: random, Agent2: discounted},
		{Agent1: minimax, Agent2: alphaBeta},
		{Agent1: alphaBeta, Agent2: discounted},
	}

	report, err := Run("strategy_comparison", strategyConfigs, matchUps, games, seed)
	if err != nil {
		return report, "", err
	}
	out, err := report.Write(dir)
	return report, out, err
}

// Run plays every match up the given number of times. Each game gets fresh
// strategies, random ones seeded from seed.
func Run(name string, configs []metrics.AgentConfig, matchUps []MatchUp, games int, seed uint64) (Report, error) {
	rng := rand.New(rand.NewSource(seed))
	report := Report{
		Name:    name,
		Configs: configs,
		Tallies: make([]metrics.Tally, len(matchUps)),
	}
	count := 0

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp.Agent1, matchUp.Agent2)

		for i := 0; i < games; i++ {
			result, err := runGame(matchUp, rng.Uint64())
			if err != nil {
				return report, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			report.Games = append(report.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp.Agent1.ID,
				Agent2:     matchUp.Agent2.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				report.Moves = append(report.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch result.Outcome {
			case game.XWins:
				report.Tallies[mi].Agent1Wins++
			case game.OWins:
				report.Tallies[mi].Agent2Wins++
			default:
				report.Tallies[mi].Ties++
			}
		}

		tally := report.Tallies[mi]
		log.Info().
			Int("agent1", tally.Agent1Wins).
			Int("agent2", tally.Agent2Wins).
			Int("ties", tally.Ties).
			Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)
	return report, nil
}

// Write stores the report as CSV files and returns their directory
func (r Report) Write(root string) (string, error) {
	writer, err := metrics.NewWriter(root, r.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(r.Configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(r.Games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(r.Moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents
func runGame(matchUp MatchUp, seed uint64) (engine.Result, error) {
	strategy1, err := NewStrategy(matchUp.Agent1, seed)
	if err != nil {
		return engine.Result{}, err
	}
	strategy2, err := NewStrategy(matchUp.Agent2, seed+1)
	if err != nil {
		return engine.Result{}, err
	}

	e := engine.LocalEngine(nil,
		engine.Player{Name: playerName(matchUp.Agent1), Mark: game.X, Strategy: strategy1},
		engine.Player{Name: playerName(matchUp.Agent2), Mark: game.O, Strategy: strategy2},
	)
	return e.Run()
}

// NewStrategy builds the strategy an agent config describes. Searches always
// collect metrics.
func NewStrategy(config metrics.AgentConfig, seed uint64) (searcher.Strategy, error) {
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Discount > 0 {
		options = append(options, searcher.WithDiscount(config.Discount))
	}

	switch config.Kind {
	case metrics.KindRandom:
		return searcher.NewRandom(seed), nil
	case metrics.KindMinimax:
		return searcher.NewMinimax(options...), nil
	case metrics.KindAlphaBeta:
		return searcher.NewAlphaBeta(options...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, config.Kind)
	}
}

func playerName(config metrics.AgentConfig) string {
	return fmt.Sprintf("agent%d-%s", config.ID, config.Kind)
}
