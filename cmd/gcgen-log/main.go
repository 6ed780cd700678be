// Command gcgen-log is a tool for viewing and analyzing gcgen diagnostics
// files.
//
// Diagnostics files are written by gcgen when run with the --diag-log flag.
//
// Usage:
//
//	gcgen-log <command> [flags] <file.glog>
//
// Commands:
//
//	view     View diagnostics in human-readable format
//	export   Export diagnostics to JSON Lines or CSV
//	filter   Filter diagnostics and write them to a new file
//	stats    Show statistics about the file
//
// Examples:
//
//	# View only database warnings
//	gcgen-log view --stage db --severity warning camera.glog
//
//	# View truncated enumerations
//	gcgen-log view --kind enum-truncated camera.glog
//
//	# Show statistics
//	gcgen-log stats camera.glog
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
