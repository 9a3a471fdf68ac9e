package metrics

import (
	"time"

	"connect3/game"
	"connect3/searcher"
)

// Strategy kinds an AgentConfig can name
const (
	KindRandom    = "random"
	KindMinimax   = "minimax"
	KindAlphaBeta = "alphabeta"
)

type AgentConfig struct {
	ID       int
	Kind     string
	Discount float64 // 0 or 1 disables the depth discount
}

type MoveMetric struct {
	Step   int
	Player string
	Mark   game.Mark
	Board  string // Board after the move, serialized
	searcher.SearchMetrics
}

type GameMetric struct {
	ID          string
	FirstPlayer string
	Outcome     game.Outcome
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	TotalMoves  int
}

// Tally counts game outcomes from the agents' point of view
type Tally struct {
	Agent1Wins int
	Agent2Wins int
	Ties       int
}

func (t Tally) Total() int {
	return t.Agent1Wins + t.Agent2Wins + t.Ties
}
