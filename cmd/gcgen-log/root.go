package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adgenicam/gcgen/cmd/gcgen-log/commands"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gcgen-log",
		Short:         "gcgen diagnostics analyzer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newViewCmd(), newExportCmd(), newFilterCmd(), newStatsCmd())
	return root
}

// addFilterFlags registers the event selection flags shared by view and
// filter.
func addFilterFlags(cmd *cobra.Command, f *commands.ViewFilter) {
	flags := cmd.Flags()
	flags.StringVar(&f.Stage, "stage", "", "filter by stage (input, index, flatten, db, screen)")
	flags.StringVar(&f.Kind, "kind", "", "filter by kind (e.g. enum-truncated, skipped-feature)")
	flags.StringVar(&f.Severity, "severity", "", "filter by severity (info, warning)")
	flags.StringVar(&f.Node, "node", "", "filter by feature name")
	flags.StringVar(&f.RunID, "run-id", "", "filter by run ID")
}

func newViewCmd() *cobra.Command {
	var filter commands.ViewFilter
	cmd := &cobra.Command{
		Use:   "view [flags] <file.glog>",
		Short: "View diagnostics in human-readable format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunView(args[0], filter, cmd.OutOrStdout())
		},
	}
	addFilterFlags(cmd, &filter)
	return cmd
}

func newExportCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export [flags] <file.glog>",
		Short: "Export diagnostics to JSON Lines or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunExport(args[0], format, output, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", "jsonl", "output format (jsonl, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func newFilterCmd() *cobra.Command {
	var filter commands.ViewFilter
	var output string
	cmd := &cobra.Command{
		Use:   "filter [flags] -o <out.glog> <file.glog>",
		Short: "Filter diagnostics and write them to a new file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := commands.RunFilter(args[0], output, filter)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Filtered %d events to %s\n", n, output)
			return nil
		},
	}
	addFilterFlags(cmd, &filter)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.glog>",
		Short: "Show statistics about the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunStats(args[0], cmd.OutOrStdout())
		},
	}
}
