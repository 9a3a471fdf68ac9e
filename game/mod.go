package game

import "errors"

const (
	Cols    = 4 // Board width
	Rows    = 3 // Board height
	Connect = 3 // Marks in a line needed to win
)

// Separator joins the columns of a board's serialized form
const Separator = '|'

var ErrMalformedBoard = errors.New("malformed board")

// Mark is the content of a single cell
type Mark byte

const (
	Empty    Mark = ' '
	X        Mark = 'X'
	O        Mark = 'O'
	OffBoard Mark = 0 // Returned for coordinates outside the grid
)

// Opponent returns the other player's mark, or the mark itself for Empty and OffBoard
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return m
	}
}

func (m Mark) IsPlayer() bool {
	return m == X || m == O
}

func (m Mark) String() string {
	if m == OffBoard {
		return "offboard"
	}
	return string(m)
}

// Outcome is derived from the grid, never stored
type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Tie
)

func (o Outcome) Terminal() bool {
	return o != InProgress
}

// Winner returns the winning mark, or Empty for ties and unfinished games
func (o Outcome) Winner() Mark {
	switch o {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X"
	case OWins:
		return "O"
	case Tie:
		return "TIE"
	default:
		return "in progress"
	}
}

func winFor(m Mark) Outcome {
	if m == X {
		return XWins
	}
	return OWins
}
