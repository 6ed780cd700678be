package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.glog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("diagnostics file was not created")
	}
}

func TestFileLoggerWritesCBOR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.glog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	event := Event{
		Timestamp: time.Now(),
		RunID:     "run-123",
		Stage:     StageDB,
		Kind:      KindEnumTruncated,
		Severity:  SeverityWarning,
		Node:      "PixelSize",
		NodeType:  "Enumeration",
		Count:     4,
	}

	logger.Log(event)
	logger.Close()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open diagnostics file: %v", err)
	}
	defer f.Close()

	var decoded Event
	if err := NewDecoder(f).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}

	if decoded.RunID != event.RunID {
		t.Errorf("RunID: got %q, want %q", decoded.RunID, event.RunID)
	}
	if decoded.Kind != KindEnumTruncated {
		t.Errorf("Kind: got %v, want %v", decoded.Kind, KindEnumTruncated)
	}
	if decoded.Count != 4 {
		t.Errorf("Count: got %d, want 4", decoded.Count)
	}
	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, event.Timestamp)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.glog")

	for _, run := range []string{"run-1", "run-2"} {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(Event{RunID: run, Kind: KindGenerated})
		logger.Close()
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var runs []string
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		runs = append(runs, event.RunID)
	}

	if len(runs) != 2 || runs[0] != "run-1" || runs[1] != "run-2" {
		t.Errorf("runs = %v, want [run-1 run-2]", runs)
	}
}

func TestFileLoggerCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.glog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	// Logging after close is ignored.
	logger.Log(Event{Kind: KindGenerated})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read diagnostics file: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("file has %d bytes after logging on a closed logger, want 0", len(data))
	}
}

func TestNewFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "test.glog"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
