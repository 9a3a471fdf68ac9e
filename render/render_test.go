package render

import (
	"bytes"
	"strings"
	"testing"

	"connect3/game"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func plainRenderer() *Renderer {
	return NewRenderer(termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii)))
}

func TestRenderBoard(t *testing.T) {
	got := plainRenderer().Board(game.MustParseBoard("X  |OX |OOX|   "))

	want := strings.Join([]string{
		" ---- ",
		"|  X |",
		"| XO |",
		"|XOO |",
		" ---- ",
	}, "\n")
	require.Equal(t, want, got)
}

func TestRenderBoards(t *testing.T) {
	t.Run("side by side", func(t *testing.T) {
		got := plainRenderer().Boards([]*game.Board{
			game.NewBoard(),
			game.MustParseBoard("   |X  |   |   "),
		})

		want := strings.Join([]string{
			" ----   ---- ",
			"|    | |    |",
			"|    | |    |",
			"|    | | X  |",
			" ----   ---- ",
		}, "\n")
		require.Equal(t, want, got)
	})

	t.Run("wraps into bands", func(t *testing.T) {
		boards := make([]*game.Board, PerBand+1)
		for i := range boards {
			boards[i] = game.NewBoard()
		}

		lines := strings.Split(plainRenderer().Boards(boards), "\n")

		require.Len(t, lines, 2*(game.Rows+2))
		require.Equal(t, PerBand*(game.Cols+3)-1, len(lines[0]))
		require.Equal(t, " ---- ", lines[game.Rows+2])
	})

	t.Run("nothing to render", func(t *testing.T) {
		require.Empty(t, plainRenderer().Boards(nil))
	})
}

func TestRenderColours(t *testing.T) {
	r := NewRenderer(termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.ANSI)))

	got := r.Board(game.MustParseBoard("X  |   |   |   "))

	require.Contains(t, got, "\x1b[")
	require.Contains(t, got, "X")
}
