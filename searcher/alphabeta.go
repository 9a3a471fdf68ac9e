package searcher

import (
	"fmt"
	"math"

	"connect3/game"

	"github.com/rs/zerolog/log"
)

// AlphaBeta is Minimax with alpha-beta pruning. It picks a move of the same
// value as Minimax, visiting fewer boards.
type AlphaBeta struct {
	search
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{search: newSearch(options)}
}

func (a *AlphaBeta) Choose(board *game.Board, mark game.Mark) (*game.Board, error) {
	moves, err := successors(board, mark)
	if err != nil {
		return nil, fmt.Errorf("alphabeta: %w", err)
	}

	a.metrics.Start()
	var best *game.Board
	bestValue := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, child := range moves {
		// A child failing low returns at most alpha, so it never beats the current best
		if v := a.value(child, mark, mark.Opponent(), 1, alpha, beta); v > bestValue {
			bestValue = v
			best = child
		}
		alpha = max(alpha, bestValue)
	}
	a.last = a.metrics.Complete(bestValue)

	log.Debug().
		Str("strategy", "alphabeta").
		Stringer("mark", mark).
		Float64("value", bestValue).
		Int64("nodes", a.last.Nodes).
		Int64("cutoffs", a.last.Cutoffs).
		Msgf("chose %s", best)
	return best, nil
}

// Evaluate returns the exact game value of board for self, with toMove playing next
func (a *AlphaBeta) Evaluate(board *game.Board, self, toMove game.Mark) float64 {
	return a.value(board, self, toMove, 0, math.Inf(-1), math.Inf(1))
}

// value is fail-soft: inside (alpha, beta) the result is exact, otherwise it
// is a bound on the same side of the window as the exact value
func (a *AlphaBeta) value(board *game.Board, self, side game.Mark, depth int, alpha, beta float64) float64 {
	a.metrics.AddNode()
	if outcome := board.Outcome(); outcome.Terminal() {
		return a.terminalValue(utility(outcome, self), depth)
	}

	children := board.LegalMoves(side)
	if side == self {
		v := math.Inf(-1)
		for i, child := range children {
			v = max(v, a.value(child, self, side.Opponent(), depth+1, alpha, beta))
			if v >= beta {
				if i < len(children)-1 {
					a.metrics.AddCutoff()
				}
				return v
			}
			alpha = max(alpha, v)
		}
		return v
	}

	v := math.Inf(1)
	for i, child := range children {
		v = min(v, a.value(child, self, side.Opponent(), depth+1, alpha, beta))
		if v <= alpha {
			if i < len(children)-1 {
				a.metrics.AddCutoff()
			}
			return v
		}
		beta = min(beta, v)
	}
	return v
}
