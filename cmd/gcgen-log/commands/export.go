package commands

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/adgenicam/gcgen/pkg/log"
)

// jsonEvent is the JSON Lines form of an event, with names instead of
// enum numbers.
type jsonEvent struct {
	Timestamp string `json:"timestamp"`
	RunID     string `json:"run_id"`
	Stage     string `json:"stage"`
	Kind      string `json:"kind"`
	Severity  string `json:"severity"`
	Node      string `json:"node,omitempty"`
	NodeType  string `json:"node_type,omitempty"`
	Message   string `json:"message,omitempty"`
	Count     int    `json:"count,omitempty"`
	Path      string `json:"path,omitempty"`
}

const timeFormat = "2006-01-02T15:04:05.000000Z"

// RunExport exports the diagnostics file to the specified format.
func RunExport(path, format, output string, stdout io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	w := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		je := jsonEvent{
			Timestamp: event.Timestamp.UTC().Format(timeFormat),
			RunID:     event.RunID,
			Stage:     event.Stage.String(),
			Kind:      event.Kind.String(),
			Severity:  event.Severity.String(),
			Node:      event.Node,
			NodeType:  event.NodeType,
			Message:   event.Message,
			Count:     event.Count,
			Path:      event.Path,
		}
		if err := encoder.Encode(je); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "run_id", "stage", "kind", "severity", "node", "node_type", "count", "path", "message"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := []string{
			event.Timestamp.UTC().Format(timeFormat),
			event.RunID,
			event.Stage.String(),
			event.Kind.String(),
			event.Severity.String(),
			event.Node,
			event.NodeType,
			strconv.Itoa(event.Count),
			event.Path,
			event.Message,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
