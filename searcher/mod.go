package searcher

import (
	"errors"
	"fmt"

	"connect3/game"
)

// Utilities of a terminal board, relative to the searching player
const (
	Win  = 1.0
	Tie  = 0.0
	Loss = -Win
)

var ErrInvalidState = errors.New("invalid state")

// Strategy picks the next board for the player holding mark
type Strategy interface {
	Choose(board *game.Board, mark game.Mark) (*game.Board, error)
}

// MetricsReporter is implemented by strategies that record per-search metrics
type MetricsReporter interface {
	LastMetrics() SearchMetrics
}

// utility scores a terminal outcome from self's perspective
func utility(outcome game.Outcome, self game.Mark) float64 {
	switch outcome.Winner() {
	case self:
		return Win
	case self.Opponent():
		return Loss
	default:
		return Tie
	}
}

// successors returns the moves available to mark, or ErrInvalidState when the game is over
func successors(board *game.Board, mark game.Mark) ([]*game.Board, error) {
	if !mark.IsPlayer() {
		return nil, fmt.Errorf("%w: %q is not a player mark", ErrInvalidState, mark)
	}
	if outcome := board.Outcome(); outcome.Terminal() {
		return nil, fmt.Errorf("%w: game is over (%s)", ErrInvalidState, outcome)
	}
	moves := board.LegalMoves(mark)
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: no legal moves for %s", ErrInvalidState, mark)
	}
	return moves, nil
}
