package main

import (
	"fmt"
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adgenicam/gcgen/internal/config"
	"github.com/adgenicam/gcgen/internal/generate"
	"github.com/adgenicam/gcgen/pkg/log"
)

type options struct {
	int64      bool
	top        string
	configPath string
	diagLog    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "gcgen [flags] <genicam_xml> <camera_name>",
		Short: "Generate EPICS records and EDM screens from GenICam XML",
		Long: `gcgen reads the GenICam feature description of a camera and writes

  <top>/Db/<camera_name>.template            database template
  <top>/op/edl/<camera_name>-features.edl    features screen
  <top>/op/edl/<camera_name>.edl             summary screen, only if missing

The XML may be preceded by one line of non-XML text, such as the camera id
printed by arv-tool.`,
		Args: func(c *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(c, args); err != nil {
				c.SilenceUsage = false
				return err
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], args[1], opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.int64, "devInt64", false, "use int64in/int64out records for integers (EPICS base 3.16.1 or later)")
	flags.StringVar(&opts.top, "top", ".", "application directory the outputs are written under")
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.diagLog, "diag-log", "", "append diagnostics to this CBOR file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log informational diagnostics")

	// Argument errors print the usage, other errors do not.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.SilenceUsage = false
		return err
	})
	return cmd
}

// newSlogLogger returns a stderr logger showing warnings, or everything
// when verbose.
func newSlogLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Prefix: "gcgen",
		Level:  level,
	})
	return slog.New(handler)
}

func run(stdout, stderr io.Writer, xmlPath, camera string, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.int64 {
		cfg.Int64 = true
	}

	slogger := newSlogLogger(stderr, opts.verbose)
	var logger log.Logger = log.NewSlogAdapter(slogger)
	if opts.diagLog != "" {
		fileLogger, err := log.NewFileLogger(opts.diagLog)
		if err != nil {
			return fmt.Errorf("open diagnostics log: %w", err)
		}
		defer fileLogger.Close()
		logger = log.NewMultiLogger(logger, fileLogger)
	}

	res, err := generate.Run(generate.Request{
		XMLPath: xmlPath,
		Camera:  camera,
		Top:     opts.top,
		Config:  cfg,
	}, logger)
	if err != nil {
		return err
	}

	slogger.Debug("generation finished",
		"run_id", res.RunID,
		"sections", res.Sections,
		"features", res.Features)

	fmt.Fprintf(stdout, "  generated %s\n", res.Template)
	fmt.Fprintf(stdout, "  generated %s\n", res.FeaturesScreen)
	if res.SummaryWritten {
		fmt.Fprintf(stdout, "  generated %s\n", res.SummaryScreen)
	} else {
		fmt.Fprintf(stdout, "  kept %s\n", res.SummaryScreen)
	}
	return nil
}
