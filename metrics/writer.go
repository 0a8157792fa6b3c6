package metrics

import (
	"corners/scoreboard"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	RedPlayer  string
	BluePlayer string
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates baseDir if needed. Files in it are appended to, one row per call.
func NewWriter(baseDir string) (*Writer, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// openCSV opens name for appending and writes header if the file is new.
func (w *Writer) openCSV(name string, header []string) (*os.File, *csv.Writer, error) {
	path := filepath.Join(w.baseDir, name)
	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	writer := csv.NewWriter(f)
	if isNew {
		if err := writer.Write(header); err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("failed to write %s header: %w", name, err)
		}
	}
	return f, writer, nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"red", "blue", "winner", "start_time", "end_time", "duration", "moves", "rejected", "red_steps", "blue_steps"}
	f, writer, err := w.openCSV("games.csv", header)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, record := range records {
		row := []string{
			record.RedPlayer,
			record.BluePlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.RejectedMoves),
			strconv.Itoa(record.RedSteps),
			strconv.Itoa(record.BlueSteps),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteScores exports the leaderboard as shown to players, replacing any earlier export.
func (w *Writer) WriteScores(records []scoreboard.Record) error {
	path := filepath.Join(w.baseDir, "scores.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create scores file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"rank", "name", "step_count", "score"}); err != nil {
		return fmt.Errorf("failed to write scores header: %w", err)
	}
	for i, record := range records {
		row := []string{
			strconv.Itoa(i + 1),
			record.Name,
			strconv.Itoa(record.StepCount),
			strconv.Itoa(record.Score),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write score row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
