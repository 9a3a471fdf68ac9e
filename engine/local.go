package engine

import (
	"fmt"
	"time"

	"connect3/experiments/metrics"
	"connect3/game"
	"connect3/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Engine struct {
	ID      uuid.UUID
	Board   *game.Board
	Players [2]Player
}

// LocalEngine sets up a game on a copy of start, first moving first. A nil
// start means the empty board.
func LocalEngine(start *game.Board, first, second Player) *Engine {
	if !first.Mark.IsPlayer() || !second.Mark.IsPlayer() {
		panic("players must play X or O")
	}
	if first.Mark == second.Mark {
		panic("players must play different marks")
	}
	if first.Strategy == nil || second.Strategy == nil {
		panic("players need a strategy")
	}
	if start == nil {
		start = game.NewBoard()
	}

	return &Engine{
		ID:      uuid.New(),
		Board:   start.Clone(),
		Players: [2]Player{first, second},
	}
}

// Run alternates the players until the board is terminal. On a strategy
// failure the partial result is returned along with the error.
func (e *Engine) Run() (Result, error) {
	logger := log.With().Str("game", e.ID.String()).Logger()
	result := Result{
		ID:      e.ID,
		History: []*game.Board{e.Board},
		Game: metrics.GameMetric{
			ID:          e.ID.String(),
			FirstPlayer: e.Players[0].Name,
			StartTime:   time.Now(),
		},
	}

	logger.Info().Msgf("%s (%s) is starting from %q", e.Players[0].Name, e.Players[0].Mark, e.Board.String())

	turn := 0
	for ply := 1; !e.Board.Outcome().Terminal(); ply++ {
		player := e.Players[turn]

		next, move, err := e.play(player, ply)
		if err != nil {
			e.complete(&result)
			return result, fmt.Errorf("ply %d by %s: %w", ply, player.Name, err)
		}
		logger.Debug().
			Int("ply", ply).
			Str("player", player.Name).
			Dur("duration", move.Duration).
			Msgf("played %q", next.String())

		e.Board = next
		result.History = append(result.History, next)
		result.Moves = append(result.Moves, move)
		turn = 1 - turn
	}

	e.complete(&result)
	logger.Info().
		Int("plies", result.Plies()).
		Dur("duration", result.Game.Duration).
		Msgf("game over, winner: %s", result.Outcome)
	return result, nil
}

func (e *Engine) play(player Player, ply int) (*game.Board, metrics.MoveMetric, error) {
	start := time.Now()
	next, err := player.Strategy.Choose(e.Board, player.Mark)
	if err != nil {
		return nil, metrics.MoveMetric{}, err
	}
	if !isSuccessor(e.Board, next, player.Mark) {
		return nil, metrics.MoveMetric{}, fmt.Errorf("%w: %s cannot follow %s", ErrIllegalMove, next, e.Board)
	}

	move := metrics.MoveMetric{
		Step:   ply,
		Player: player.Name,
		Mark:   player.Mark,
		Board:  next.String(),
	}
	if reporter, ok := player.Strategy.(searcher.MetricsReporter); ok {
		move.SearchMetrics = reporter.LastMetrics()
	}
	if move.StartTime.IsZero() { // Strategy without metrics
		move.StartTime = start
		move.SearchMetrics.Duration = time.Since(start)
	}
	return next, move, nil
}

func (e *Engine) complete(result *Result) {
	result.Outcome = e.Board.Outcome()
	result.Game.Outcome = result.Outcome
	result.Game.EndTime = time.Now()
	result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
	result.Game.TotalMoves = result.Plies()
}

func isSuccessor(board, next *game.Board, mark game.Mark) bool {
	if next == nil {
		return false
	}
	for _, candidate := range board.LegalMoves(mark) {
		if candidate.Equals(next) {
			return true
		}
	}
	return false
}
