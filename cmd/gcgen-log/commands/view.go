// Package commands implements the gcgen-log CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/adgenicam/gcgen/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Stage    string
	Kind     string
	Severity string
	Node     string
	RunID    string
}

// Filter converts the flag values into a log.Filter.
func (v ViewFilter) Filter() (log.Filter, error) {
	f := log.Filter{Node: v.Node, RunID: v.RunID}
	if v.Stage != "" {
		s, err := log.ParseStage(v.Stage)
		if err != nil {
			return f, err
		}
		f.Stage = &s
	}
	if v.Kind != "" {
		k, err := log.ParseKind(v.Kind)
		if err != nil {
			return f, err
		}
		f.Kind = &k
	}
	if v.Severity != "" {
		s, err := parseSeverity(v.Severity)
		if err != nil {
			return f, err
		}
		f.Severity = &s
	}
	return f, nil
}

// parseSeverity parses a severity string (case-insensitive).
func parseSeverity(s string) (log.Severity, error) {
	switch strings.ToLower(s) {
	case "info":
		return log.SeverityInfo, nil
	case "warning", "warn":
		return log.SeverityWarning, nil
	default:
		return 0, fmt.Errorf("invalid severity: %s (must be info or warning)", s)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [run:id] SEVERITY STAGE KIND node
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [run:%s] %-7s %s %s", ts, shortenRunID(event.RunID),
		event.Severity.String(), event.Stage.String(), event.Kind.String())
	if event.Node != "" {
		fmt.Fprintf(w, " %s", event.Node)
	}
	fmt.Fprintln(w)

	if event.NodeType != "" {
		fmt.Fprintf(w, "  Type: %s\n", event.NodeType)
	}
	if event.Count != 0 {
		fmt.Fprintf(w, "  Count: %d\n", event.Count)
	}
	if event.Path != "" {
		fmt.Fprintf(w, "  Path: %s\n", event.Path)
	}
	if event.Message != "" {
		fmt.Fprintf(w, "  Message: %s\n", event.Message)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// RunView prints the events of the file that match filter.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	f, err := filter.Filter()
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, f)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}
