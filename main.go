package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"connect3/config"
	"connect3/engine"
	"connect3/experiments"
	"connect3/game"
	"connect3/render"
	"connect3/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var errUsage = errors.New("usage: connect3 [flags] print|next|random|minimax|alphabeta|experiment [board]")

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("connect3 failed")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("connect3", flag.ContinueOnError)
	configPath := flags.String("config", "", "YAML configuration file")
	seed := flags.Uint64("seed", 0, "Seed for random players (overrides configuration)")
	discount := flags.Float64("discount", 0, "Depth discount in (0, 1] for the searching players (overrides configuration)")
	games := flags.Int("games", 0, "Games per match up in experiments (overrides configuration)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *discount != 0 {
		cfg.Discount = *discount
	}
	if *games != 0 {
		cfg.Experiment.Games = *games
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	if flags.NArg() < 1 || flags.NArg() > 2 {
		return errUsage
	}
	board := game.NewBoard()
	if flags.NArg() == 2 {
		if board, err = game.ParseBoard(flags.Arg(1)); err != nil {
			return err
		}
	}

	renderer := render.ForWriter(stdout)
	switch cmd := flags.Arg(0); cmd {
	case "print":
		fmt.Fprintln(stdout, renderer.Board(board))
	case "next":
		fmt.Fprintln(stdout, renderer.Boards(board.LegalMoves(game.X)))
	case "random", "minimax", "alphabeta":
		result, err := engine.LocalEngine(board, randomPlayer(cfg.Seed), opponent(cmd, cfg)).Run()
		fmt.Fprintln(stdout, renderer.Boards(result.History))
		if err != nil {
			return err
		}
	case "experiment":
		report, dir, err := experiments.RunStrategyComparison(cfg.Experiment.OutputDir, cfg.Experiment.Games, cfg.Seed)
		if err != nil {
			return err
		}
		for i, tally := range report.Tallies {
			fmt.Fprintf(stdout, "matchup %d: agent1 %d, agent2 %d, ties %d\n", i+1, tally.Agent1Wins, tally.Agent2Wins, tally.Ties)
		}
		fmt.Fprintf(stdout, "records written to %s\n", dir)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
	return nil
}

// randomPlayer always opens as X
func randomPlayer(seed uint64) engine.Player {
	return engine.Player{Name: "random", Mark: game.X, Strategy: searcher.NewRandom(seed)}
}

func opponent(cmd string, cfg *config.Config) engine.Player {
	player := engine.Player{Name: cmd, Mark: game.O}
	options := []searcher.Option{searcher.WithMetrics(), searcher.WithDiscount(cfg.Discount)}

	switch cmd {
	case "minimax":
		player.Strategy = searcher.NewMinimax(options...)
	case "alphabeta":
		player.Strategy = searcher.NewAlphaBeta(options...)
	default:
		player.Strategy = searcher.NewRandom(cfg.Seed + 1)
	}
	return player
}
