package game

import (
	"fmt"
	"strings"
)

// Board is a Cols x Rows grid indexed [col][row], row 0 being the bottom.
// Boards are mutated only through Drop; searches work on clones.
type Board struct {
	cells [Cols][Rows]Mark
}

// directions scanned for a winning line, in scan order: right, up, up-right, up-left
var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}

func NewBoard() *Board {
	b := &Board{}
	for i := range b.cells {
		for j := range b.cells[i] {
			b.cells[i][j] = Empty
		}
	}
	return b
}

// ParseBoard rebuilds a board from its serialized form, e.g. "X  |OX |   |   ".
// Each column lists its cells bottom first.
func ParseBoard(s string) (*Board, error) {
	columns := strings.Split(s, string(Separator))
	if len(columns) != Cols {
		return nil, fmt.Errorf("%w: expected %d columns, got %d", ErrMalformedBoard, Cols, len(columns))
	}

	b := &Board{}
	for i, column := range columns {
		if len(column) != Rows {
			return nil, fmt.Errorf("%w: column %d has %d cells, expected %d", ErrMalformedBoard, i, len(column), Rows)
		}
		for j := 0; j < Rows; j++ {
			m := Mark(column[j])
			if m != Empty && !m.IsPlayer() {
				return nil, fmt.Errorf("%w: unknown mark %q in column %d", ErrMalformedBoard, column[j], i)
			}
			if m != Empty && j > 0 && b.cells[i][j-1] == Empty {
				return nil, fmt.Errorf("%w: floating mark in column %d row %d", ErrMalformedBoard, i, j)
			}
			b.cells[i][j] = m
		}
	}
	return b, nil
}

func MustParseBoard(s string) *Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String returns the canonical serialized form accepted by ParseBoard
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Cols*(Rows+1) - 1)
	for i := 0; i < Cols; i++ {
		if i > 0 {
			sb.WriteByte(Separator)
		}
		for j := 0; j < Rows; j++ {
			sb.WriteByte(byte(b.cells[i][j]))
		}
	}
	return sb.String()
}

// Cell returns the mark at (col, row), or OffBoard outside the grid
func (b *Board) Cell(col, row int) Mark {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return OffBoard
	}
	return b.cells[col][row]
}

// Row returns the marks of one row, left to right
func (b *Board) Row(row int) []Mark {
	marks := make([]Mark, Cols)
	for i := range marks {
		marks[i] = b.Cell(i, row)
	}
	return marks
}

func (b *Board) Empties() int {
	n := 0
	for i := range b.cells {
		for j := range b.cells[i] {
			if b.cells[i][j] == Empty {
				n++
			}
		}
	}
	return n
}

// firstEmpty returns the lowest empty row of col, or -1 when the column is full
func (b *Board) firstEmpty(col int) int {
	if col < 0 || col >= Cols {
		return -1
	}
	for j := 0; j < Rows; j++ {
		if b.cells[col][j] == Empty {
			return j
		}
	}
	return -1
}

// Drop places mark on the lowest empty cell of col. A full or unknown column
// leaves the board unchanged.
func (b *Board) Drop(col int, mark Mark) *Board {
	if j := b.firstEmpty(col); j >= 0 {
		b.cells[col][j] = mark
	}
	return b
}

// LegalMoves returns the boards reachable by dropping mark into each non-full
// column, in column order
func (b *Board) LegalMoves(mark Mark) []*Board {
	boards := make([]*Board, 0, Cols)
	for i := 0; i < Cols; i++ {
		if b.firstEmpty(i) < 0 {
			continue
		}
		boards = append(boards, b.Clone().Drop(i, mark))
	}
	return boards
}

func (b *Board) Outcome() Outcome {
	for i := 0; i < Cols; i++ {
		for j := 0; j < Rows; j++ {
			m := b.cells[i][j]
			if m == Empty {
				continue
			}
			for _, d := range directions {
				if b.line(m, i, j, d[0], d[1]) {
					return winFor(m)
				}
			}
		}
	}
	if b.Empties() == 0 {
		return Tie
	}
	return InProgress
}

// line reports whether the Connect-1 cells following (i, j) along (di, dj) all hold m
func (b *Board) line(m Mark, i, j, di, dj int) bool {
	for k := 1; k < Connect; k++ {
		if b.Cell(i+k*di, j+k*dj) != m {
			return false
		}
	}
	return true
}

func (b *Board) Equals(other *Board) bool {
	if other == nil {
		return false
	}
	return b.cells == other.cells
}

// Clone returns a deep copy sharing nothing with b
func (b *Board) Clone() *Board {
	return &Board{cells: b.cells}
}
