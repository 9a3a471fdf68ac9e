package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, playing X
	Agent2 int // AgentConfig.ID, playing O
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the experiment's CSV files
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "discount"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.FormatFloat(config.Discount, 'g', -1, 64),
		})
	}

	if err := w.write("agent_configs.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "game_id", "agent1", "agent2", "first_player", "outcome", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.GameMetric.ID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.FirstPlayer,
			record.Outcome.String(),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.GameMetric.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}

	if err := w.write("game_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "mark", "board", "duration", "nodes", "cutoffs", "value"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Mark.String(),
			record.Board,
			record.SearchMetrics.Duration.String(),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Cutoffs, 10),
			strconv.FormatFloat(record.Value, 'g', -1, 64),
		})
	}

	if err := w.write("move_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}
