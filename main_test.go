package main

import (
	"bytes"
	"strings"
	"testing"

	"connect3/game"

	"github.com/stretchr/testify/require"
)

func TestRunPrint(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"print", "X  |OX |OOX|   "}, &out)
	require.NoError(t, err)

	want := " ---- \n|  X |\n| XO |\n|XOO |\n ---- \n"
	require.Equal(t, want, out.String())
}

func TestRunNext(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"next", "XXX|OOO|OOO|XX "}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, game.Rows+2)
	require.Equal(t, "|XOOX|", lines[1], "Only the last column has room")
}

func TestRunGames(t *testing.T) {
	for _, cmd := range []string{"random", "minimax", "alphabeta"} {
		t.Run(cmd, func(t *testing.T) {
			var out bytes.Buffer

			err := run([]string{"-seed", "3", cmd, "XO |   |   |   "}, &out)
			require.NoError(t, err)
			lines := strings.Split(out.String(), "\n")
			require.True(t, strings.HasPrefix(lines[0], " ---- "))
			require.True(t, strings.HasPrefix(lines[2], "|O   | "), "The start board comes first")
			require.True(t, strings.HasPrefix(lines[3], "|X   | "))
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no command", nil, errUsage},
		{"unknown command", []string{"undo"}, errUsage},
		{"too many arguments", []string{"print", "   |   |   |   ", "extra"}, errUsage},
		{"malformed board", []string{"print", "XXXX"}, game.ErrMalformedBoard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{})
			require.ErrorIs(t, err, tt.want)
		})
	}
}
