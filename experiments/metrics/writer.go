package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type AgentConfig struct {
	ID        int
	Depth     int
	Evaluator string // "opportunity" or "nearest"
	Deepening bool
	Random    bool // Uniform random baseline instead of a search agent
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// MoveRow is the Parquet layout of a MoveRecord.
type MoveRow struct {
	Game       int32   `parquet:"game"`
	Step       int32   `parquet:"step"`
	Player     int32   `parquet:"player"`
	Action     string  `parquet:"action,dict"`
	Value      float64 `parquet:"value"`
	Depth      int32   `parquet:"depth"`
	DurationNs int64   `parquet:"duration_ns"`
	Visited    int64   `parquet:"visited"`
	Evaluated  int64   `parquet:"evaluated"`
	Cutoffs    int64   `parquet:"cutoffs"`
	Fallback   bool    `parquet:"fallback"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the experiment's records.
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

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "depth", "evaluator", "deepening", "random"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
			config.Evaluator,
			strconv.FormatBool(config.Deepening),
			strconv.FormatBool(config.Random),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "score1", "score2", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			record.Winner,
			strconv.Itoa(record.Scores[0]),
			strconv.Itoa(record.Scores[1]),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "action", "value", "depth", "duration", "visited", "evaluated", "cutoffs", "fallback"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Action,
			strconv.FormatFloat(record.Value, 'g', -1, 64),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Visited),
			strconv.Itoa(record.Evaluated),
			strconv.Itoa(record.Cutoffs),
			strconv.FormatBool(record.Fallback),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

// WriteMoveParquet archives move records as a zstd-compressed Parquet file.
func (w *Writer) WriteMoveParquet(records []MoveRecord) error {
	rows := make([]MoveRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, MoveRow{
			Game:       int32(record.Game),
			Step:       int32(record.Step),
			Player:     int32(record.Player),
			Action:     record.Action,
			Value:      record.Value,
			Depth:      int32(record.Depth),
			DurationNs: record.Duration.Nanoseconds(),
			Visited:    int64(record.Visited),
			Evaluated:  int64(record.Evaluated),
			Cutoffs:    int64(record.Cutoffs),
			Fallback:   record.Fallback,
		})
	}

	// Write to a temp file and rename so readers never see a partial file.
	path := filepath.Join(w.baseDir, "move_records.parquet")
	tmpPath := path + ".tmp"
	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write move parquet: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename move parquet: %w", err)
	}
	return nil
}

// ReadMoveParquet loads a file written by WriteMoveParquet.
func ReadMoveParquet(path string) ([]MoveRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open move parquet: %w", err)
	}

	reader := parquet.NewGenericReader[MoveRow](pf)
	defer reader.Close()

	rows := make([]MoveRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read move parquet: %w", err)
	}
	return rows[:n], nil
}
