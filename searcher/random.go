package searcher

import (
	"fmt"
	"sync"

	"connect3/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal moves
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Choose(board *game.Board, mark game.Mark) (*game.Board, error) {
	moves, err := successors(board, mark)
	if err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}

	r.mu.Lock()
	ith := r.rng.Intn(len(moves))
	r.mu.Unlock()

	return moves[ith], nil
}
