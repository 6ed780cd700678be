package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/adgenicam/gcgen/pkg/log"
)

// RunFilter copies the events of the file that match filter to output and
// returns how many it copied.
func RunFilter(path, output string, filter ViewFilter) (int, error) {
	f, err := filter.Filter()
	if err != nil {
		return 0, err
	}

	reader, err := log.NewFilteredReader(path, f)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Create file logger to write filtered events
	logger, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	count := 0
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read event: %w", err)
		}

		logger.Log(event)
		count++
	}
	return count, nil
}
