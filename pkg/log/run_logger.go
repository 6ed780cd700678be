package log

import (
	"time"

	"github.com/google/uuid"
)

// RunLogger stamps every event with a run ID and a timestamp before
// forwarding it. One RunLogger is created per generation run.
type RunLogger struct {
	next  Logger
	runID string
	now   func() time.Time
}

// NewRunLogger wraps next with a fresh random run ID.
func NewRunLogger(next Logger) *RunLogger {
	return &RunLogger{
		next:  OrNoop(next),
		runID: uuid.NewString(),
		now:   time.Now,
	}
}

// RunID returns the ID stamped on events.
func (r *RunLogger) RunID() string {
	return r.runID
}

// Log stamps and forwards the event. Fields already set are kept.
func (r *RunLogger) Log(event Event) {
	if event.RunID == "" {
		event.RunID = r.runID
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = r.now()
	}
	r.next.Log(event)
}

// Compile-time interface satisfaction check.
var _ Logger = (*RunLogger)(nil)
