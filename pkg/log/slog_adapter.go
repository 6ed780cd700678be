package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes diagnostics to an slog.Logger.
// Warnings are logged at Warn level, everything else at Info.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("stage", event.Stage.String()),
		slog.String("kind", event.Kind.String()),
	}

	if event.Node != "" {
		attrs = append(attrs, slog.String("node", event.Node))
	}
	if event.NodeType != "" {
		attrs = append(attrs, slog.String("type", event.NodeType))
	}
	if event.Count != 0 {
		attrs = append(attrs, slog.Int("count", event.Count))
	}
	if event.Path != "" {
		attrs = append(attrs, slog.String("path", event.Path))
	}
	if event.RunID != "" {
		attrs = append(attrs, slog.String("run_id", event.RunID))
	}

	level := slog.LevelInfo
	if event.Severity == SeverityWarning {
		level = slog.LevelWarn
	}

	msg := event.Message
	if msg == "" {
		msg = event.Kind.String()
	}
	a.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
