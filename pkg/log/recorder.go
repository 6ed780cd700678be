package log

// Recorder keeps events in memory, in the order they were logged.
type Recorder struct {
	events []Event
}

// Log appends the event.
func (r *Recorder) Log(event Event) {
	r.events = append(r.events, event)
}

// Events returns the recorded events.
func (r *Recorder) Events() []Event {
	return r.events
}

// OfKind returns the recorded events of kind k.
func (r *Recorder) OfKind(k Kind) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Warnings counts recorded events with SeverityWarning.
func (r *Recorder) Warnings() int {
	n := 0
	for _, e := range r.events {
		if e.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// Compile-time interface satisfaction check.
var _ Logger = (*Recorder)(nil)
