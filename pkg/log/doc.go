// Package log provides structured generation diagnostics for gcgen.
//
// Generation never stops for a schema-coverage gap (an unnamed node, an
// unknown feature type, an oversized enumeration...). Each such gap is
// reported as an Event to a Logger and generation continues. This is
// separate from operational logging (slog): diagnostics form a complete,
// machine-readable record of what the generator skipped or changed.
//
// # Basic Usage
//
//	// Console: diagnostics through slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// File: CBOR event stream for later inspection with gcgen-log
//	fileLogger, _ := log.NewFileLogger("camera.glog")
//
//	// Both
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Kinds
//
// Events are tagged with the generation stage that produced them (input,
// index, flatten, db, screen) and a Kind naming the condition.
//
// # File Format
//
// Diagnostics files use CBOR encoding with integer keys, one event after
// another. The gcgen-log CLI tool provides viewing and statistics.
package log
