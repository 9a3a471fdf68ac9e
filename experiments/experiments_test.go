package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"connect3/experiments/metrics"
	"connect3/game"
	"connect3/searcher"

	"github.com/stretchr/testify/require"
)

var (
	randomAgent    = metrics.AgentConfig{ID: 1, Kind: metrics.KindRandom}
	alphaBetaAgent = metrics.AgentConfig{ID: 2, Kind: metrics.KindAlphaBeta}
)

func TestRun(t *testing.T) {
	matchUps := []MatchUp{
		{Agent1: randomAgent, Agent2: randomAgent},
		{Agent1: randomAgent, Agent2: alphaBetaAgent},
	}

	report, err := Run("test", []metrics.AgentConfig{randomAgent, alphaBetaAgent}, matchUps, 5, 42)
	require.NoError(t, err)

	require.Len(t, report.Games, 10)
	require.Len(t, report.Tallies, 2)
	for i, tally := range report.Tallies {
		require.Equal(t, 5, tally.Total(), "Matchup %d should count every game", i)
	}
	require.Zero(t, report.Tallies[1].Agent1Wins, "Random should never beat a perfect player")

	moves := 0
	for i, record := range report.Games {
		require.Equal(t, i+1, record.ID)
		require.True(t, record.Outcome.Terminal())
		moves += record.TotalMoves
	}
	require.Len(t, report.Moves, moves)
	for _, move := range report.Moves {
		_, err := game.ParseBoard(move.Board)
		require.NoError(t, err)
	}
}

func TestRunIsReproducible(t *testing.T) {
	matchUps := []MatchUp{{Agent1: randomAgent, Agent2: randomAgent}}

	first, err := Run("test", nil, matchUps, 10, 3)
	require.NoError(t, err)
	second, err := Run("test", nil, matchUps, 10, 3)
	require.NoError(t, err)

	require.Equal(t, first.Tallies, second.Tallies)
	require.Equal(t, len(first.Moves), len(second.Moves))
	for i := range first.Moves {
		require.Equal(t, first.Moves[i].Board, second.Moves[i].Board)
	}
}

func TestRunUnknownKind(t *testing.T) {
	bogus := metrics.AgentConfig{ID: 9, Kind: "oracle"}

	_, err := Run("test", nil, []MatchUp{{Agent1: randomAgent, Agent2: bogus}}, 1, 1)

	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestNewStrategy(t *testing.T) {
	tests := []struct {
		config metrics.AgentConfig
		want   any
	}{
		{metrics.AgentConfig{Kind: metrics.KindRandom}, &searcher.Random{}},
		{metrics.AgentConfig{Kind: metrics.KindMinimax}, &searcher.Minimax{}},
		{metrics.AgentConfig{Kind: metrics.KindAlphaBeta, Discount: 0.9}, &searcher.AlphaBeta{}},
	}

	for _, tt := range tests {
		t.Run(tt.config.Kind, func(t *testing.T) {
			strategy, err := NewStrategy(tt.config, 1)
			require.NoError(t, err)
			require.IsType(t, tt.want, strategy)
		})
	}
}

func TestReportWrite(t *testing.T) {
	matchUps := []MatchUp{{Agent1: randomAgent, Agent2: alphaBetaAgent}}
	configs := []metrics.AgentConfig{randomAgent, alphaBetaAgent}
	report, err := Run("written", configs, matchUps, 2, 11)
	require.NoError(t, err)

	root := t.TempDir()
	dir, err := report.Write(root)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "written"), filepath.Dir(dir))

	agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Equal(t, []string{"id", "kind", "discount"}, agents[0])
	require.Equal(t, []string{"2", "alphabeta", "0"}, agents[2])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 1+len(report.Games))
	require.Equal(t, "1", games[1][0])
	require.Equal(t, report.Games[0].GameMetric.ID, games[1][1])
	require.Equal(t, report.Games[0].Outcome.String(), games[1][5])

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Len(t, moves, 1+len(report.Moves))
	require.Equal(t, report.Moves[0].Board, moves[1][4])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
