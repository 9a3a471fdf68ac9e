package searcher

import (
	"fmt"
	"math"

	"connect3/game"

	"github.com/rs/zerolog/log"
)

// Minimax searches the full game tree, maximizing for the mark it plays and
// minimizing for the opponent
type Minimax struct {
	search
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{search: newSearch(options)}
}

// Choose returns the first successor, in column order, with the highest value
func (m *Minimax) Choose(board *game.Board, mark game.Mark) (*game.Board, error) {
	moves, err := successors(board, mark)
	if err != nil {
		return nil, fmt.Errorf("minimax: %w", err)
	}

	m.metrics.Start()
	var best *game.Board
	bestValue := math.Inf(-1)
	for _, child := range moves {
		if v := m.value(child, mark, mark.Opponent(), 1); v > bestValue {
			bestValue = v
			best = child
		}
	}
	m.last = m.metrics.Complete(bestValue)

	log.Debug().
		Str("strategy", "minimax").
		Stringer("mark", mark).
		Float64("value", bestValue).
		Int64("nodes", m.last.Nodes).
		Msgf("chose %s", best)
	return best, nil
}

// Evaluate returns the game value of board for self, with toMove playing next
func (m *Minimax) Evaluate(board *game.Board, self, toMove game.Mark) float64 {
	return m.value(board, self, toMove, 0)
}

func (m *Minimax) value(board *game.Board, self, side game.Mark, depth int) float64 {
	m.metrics.AddNode()
	if outcome := board.Outcome(); outcome.Terminal() {
		return m.terminalValue(utility(outcome, self), depth)
	}

	children := board.LegalMoves(side)
	if side == self {
		v := math.Inf(-1)
		for _, child := range children {
			v = max(v, m.value(child, self, side.Opponent(), depth+1))
		}
		return v
	}

	v := math.Inf(1)
	for _, child := range children {
		v = min(v, m.value(child, self, side.Opponent(), depth+1))
	}
	return v
}
