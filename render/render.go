package render

import (
	"io"
	"strings"

	"connect3/game"

	"github.com/muesli/termenv"
)

// PerBand is the number of boards printed side by side
const PerBand = 6

// Renderer draws boards as framed text, colouring marks when the output supports it
type Renderer struct {
	out    *termenv.Output
	colors map[game.Mark]termenv.Color
}

func NewRenderer(out *termenv.Output) *Renderer {
	return &Renderer{
		out: out,
		colors: map[game.Mark]termenv.Color{
			game.X: out.Color("1"), // red
			game.O: out.Color("4"), // blue
		},
	}
}

// ForWriter detects the colour profile of w
func ForWriter(w io.Writer) *Renderer {
	return NewRenderer(termenv.NewOutput(w))
}

// Board renders a single board
func (r *Renderer) Board(b *game.Board) string {
	return r.Boards([]*game.Board{b})
}

// Boards renders boards left to right, PerBand per band, top row first
func (r *Renderer) Boards(boards []*game.Board) string {
	bands := make([]string, 0, (len(boards)+PerBand-1)/PerBand)
	for start := 0; start < len(boards); start += PerBand {
		end := min(start+PerBand, len(boards))
		bands = append(bands, r.band(boards[start:end]))
	}
	return strings.Join(bands, "\n")
}

func (r *Renderer) band(boards []*game.Board) string {
	edge := " " + strings.Repeat("-", game.Cols) + " "
	edges := strings.TrimSuffix(strings.Repeat(edge+" ", len(boards)), " ")

	var sb strings.Builder
	sb.WriteString(edges)
	sb.WriteByte('\n')
	for j := game.Rows - 1; j >= 0; j-- {
		for i, b := range boards {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('|')
			for _, m := range b.Row(j) {
				sb.WriteString(r.mark(m))
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(edges)
	return sb.String()
}

func (r *Renderer) mark(m game.Mark) string {
	color, ok := r.colors[m]
	if !ok {
		return string(m)
	}
	return r.out.String(string(m)).Foreground(color).Bold().String()
}
