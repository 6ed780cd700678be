package log

import (
	"os"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger writes diagnostics to a file in CBOR format.
type FileLogger struct {
	file    *os.File
	encoder *cbor.Encoder
	closed  bool
}

// NewFileLogger creates a new FileLogger that writes to the specified path.
// If the file exists, new events are appended, so one file can hold several
// runs told apart by their run ID.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Log writes an event to the file.
func (l *FileLogger) Log(event Event) {
	if l.closed {
		return
	}

	// Diagnostics must not abort generation.
	_ = l.encoder.Encode(event)
}

// Close closes the file.
// It is safe to call Close multiple times.
// After Close is called, subsequent Log calls are silently ignored.
func (l *FileLogger) Close() error {
	if l.closed {
		return nil
	}

	l.closed = true
	return l.file.Close()
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
