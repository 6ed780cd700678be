// Command gcgen generates the EPICS database template and EDM screens of a
// GenICam camera from its feature XML.
//
// Usage:
//
//	gcgen [flags] <genicam_xml> <camera_name>
//
// Writes <top>/Db/<camera_name>.template, <top>/op/edl/<camera_name>-features.edl
// and, if missing, <top>/op/edl/<camera_name>.edl.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
