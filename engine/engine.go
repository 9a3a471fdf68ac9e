package engine

import (
	"errors"

	"connect3/experiments/metrics"
	"connect3/game"
	"connect3/searcher"

	"github.com/google/uuid"
)

// MaxPlies bounds a game: every ply fills one cell
const MaxPlies = game.Cols * game.Rows

var ErrIllegalMove = errors.New("illegal move")

// Player binds a strategy to the mark it plays
type Player struct {
	Name     string
	Mark     game.Mark
	Strategy searcher.Strategy
}

// Result is the record of one finished (or aborted) game
type Result struct {
	ID      uuid.UUID
	History []*game.Board // Starting board first
	Outcome game.Outcome
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}

// Plies returns the number of moves played
func (r Result) Plies() int {
	if len(r.History) == 0 {
		return 0
	}
	return len(r.History) - 1
}
