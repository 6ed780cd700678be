package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/adgenicam/gcgen/pkg/log"
)

// Stats holds aggregate statistics about a diagnostics file.
type Stats struct {
	TotalEvents      int
	EventsByKind     map[log.Kind]int
	EventsByStage    map[log.Stage]int
	EventsBySeverity map[log.Severity]int
	Runs             map[string]*RunSummary
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// RunSummary holds statistics for a single generation run.
type RunSummary struct {
	FirstSeen time.Time
	Events    int
	Warnings  int
	Generated []string
}

// RunStats analyzes the diagnostics file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind:     make(map[log.Kind]int),
		EventsByStage:    make(map[log.Stage]int),
		EventsBySeverity: make(map[log.Severity]int),
		Runs:             make(map[string]*RunSummary),
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++
		stats.EventsByStage[event.Stage]++
		stats.EventsBySeverity[event.Severity]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		run, ok := stats.Runs[event.RunID]
		if !ok {
			run = &RunSummary{FirstSeen: event.Timestamp}
			stats.Runs[event.RunID] = run
		}
		run.Events++
		if event.Severity == log.SeverityWarning {
			run.Warnings++
		}
		if event.Kind == log.KindGenerated && event.Path != "" {
			run.Generated = append(run.Generated, event.Path)
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== gcgen Diagnostics Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Severity:")
	for _, sev := range []log.Severity{log.SeverityInfo, log.SeverityWarning} {
		if count := stats.EventsBySeverity[sev]; count > 0 {
			fmt.Fprintf(w, "  %-22s %d\n", sev.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Stage:")
	for _, stage := range []log.Stage{log.StageInput, log.StageIndex, log.StageFlatten, log.StageDB, log.StageScreen} {
		if count := stats.EventsByStage[stage]; count > 0 {
			fmt.Fprintf(w, "  %-22s %d\n", stage.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	kinds := make([]log.Kind, 0, len(stats.EventsByKind))
	for k := range stats.EventsByKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-22s %d\n", k.String()+":", stats.EventsByKind[k])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Runs: %d\n", len(stats.Runs))
	if len(stats.Runs) == 0 {
		return
	}

	// Sort by first seen time
	type runInfo struct {
		id    string
		stats *RunSummary
	}
	runs := make([]runInfo, 0, len(stats.Runs))
	for id, rs := range stats.Runs {
		runs = append(runs, runInfo{id, rs})
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].stats.FirstSeen.Before(runs[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, r := range runs {
		fmt.Fprintf(w, "  [%s] %d events, %d warnings\n", shortenRunID(r.id), r.stats.Events, r.stats.Warnings)
		for _, p := range r.stats.Generated {
			fmt.Fprintf(w, "           Wrote: %s\n", p)
		}
	}
}
