// Package generate runs one generation: it reads a GenICam feature file and
// writes the database template and the EDM screens of a camera.
package generate

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/adgenicam/gcgen/internal/config"
	"github.com/adgenicam/gcgen/internal/output"
	"github.com/adgenicam/gcgen/pkg/edl"
	"github.com/adgenicam/gcgen/pkg/epicsdb"
	"github.com/adgenicam/gcgen/pkg/genicam"
	"github.com/adgenicam/gcgen/pkg/log"
	"github.com/adgenicam/gcgen/pkg/structure"
)

// ErrInvalidCamera is returned for a camera name that cannot be used in a
// file name.
var ErrInvalidCamera = errors.New("invalid camera name")

// Request describes one generation.
type Request struct {
	// XMLPath is the GenICam feature file.
	XMLPath string

	// Camera is the camera model name used for file names and titles.
	Camera string

	// Top is the application directory the outputs are written under.
	Top string

	// Config holds the remaining settings. Nil means config.Default().
	Config *config.Config
}

// Result reports what a generation wrote.
type Result struct {
	// RunID tags the diagnostics of this run.
	RunID string

	// Template is the database template path.
	Template string

	// FeaturesScreen is the features screen path.
	FeaturesScreen string

	// SummaryScreen is the summary screen path.
	SummaryScreen string

	// SummaryWritten is false when the summary screen already existed.
	SummaryWritten bool

	// Sections and Features count the flattened structure.
	Sections int
	Features int
}

// Paths returns the output paths of req.
func (req Request) Paths() (template, features, summary string) {
	cfg := req.config()
	db := filepath.Join(req.Top, filepath.FromSlash(cfg.DBDir))
	screens := filepath.Join(req.Top, filepath.FromSlash(cfg.EDLDir))
	return filepath.Join(db, req.Camera+".template"),
		filepath.Join(screens, req.Camera+"-features.edl"),
		filepath.Join(screens, req.Camera+".edl")
}

func (req Request) config() *config.Config {
	if req.Config == nil {
		return config.Default()
	}
	return req.Config
}

// Run performs the generation. Diagnostics go to logger, stamped with a
// run ID. The database template and the features screen are replaced; the
// summary screen is only written when it does not exist.
func Run(req Request, logger log.Logger) (*Result, error) {
	if req.Camera == "" || strings.ContainsAny(req.Camera, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCamera, req.Camera)
	}
	cfg := req.config()
	rl := log.NewRunLogger(logger)

	doc, err := genicam.Load(req.XMLPath, rl)
	if err != nil {
		return nil, err
	}
	idx := genicam.NewIndex(doc, rl)
	sections := structure.Flatten(idx, rl)
	features := structure.Features(sections)

	res := &Result{
		RunID:    rl.RunID(),
		Sections: len(sections),
		Features: len(features),
	}
	res.Template, res.FeaturesScreen, res.SummaryScreen = req.Paths()

	db := epicsdb.NewGenerator(idx, epicsdb.Options{
		Camera:     req.Camera,
		Int64:      cfg.Int64,
		ScreenDir:  cfg.ScreenDir,
		CameraType: cfg.CameraType,
		Exclude:    cfg.Exclude,
	}, rl)
	if err := output.WriteFile(res.Template, func(w io.Writer) error {
		return db.Write(w, features)
	}); err != nil {
		return nil, err
	}
	generated(rl, log.StageDB, res.Template)

	screenOpts := edl.Options{
		Camera:     req.Camera,
		ScreenDir:  cfg.ScreenDir,
		CameraType: cfg.CameraType,
		Exclude:    cfg.Exclude,
	}
	screen := edl.NewFeatures(idx, screenOpts, rl)
	if err := output.WriteFile(res.FeaturesScreen, func(w io.Writer) error {
		return screen.Write(w, sections)
	}); err != nil {
		return nil, err
	}
	generated(rl, log.StageScreen, res.FeaturesScreen)

	res.SummaryWritten, err = edl.NewSummary(screenOpts).WriteFile(res.SummaryScreen)
	if err != nil {
		return nil, fmt.Errorf("summary screen: %w", err)
	}
	if res.SummaryWritten {
		generated(rl, log.StageScreen, res.SummaryScreen)
	} else {
		rl.Log(log.Event{
			Stage:    log.StageScreen,
			Kind:     log.KindSummaryPreserved,
			Severity: log.SeverityInfo,
			Path:     res.SummaryScreen,
			Message:  "Summary screen exists, not overwritten",
		})
	}
	return res, nil
}

func generated(logger log.Logger, stage log.Stage, path string) {
	logger.Log(log.Event{
		Stage:    stage,
		Kind:     log.KindGenerated,
		Severity: log.SeverityInfo,
		Path:     path,
		Message:  "Wrote " + path,
	})
}
