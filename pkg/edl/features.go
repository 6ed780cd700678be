package edl

import (
	"bytes"
	"fmt"
	"io"
	"path"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/adgenicam/gcgen/pkg/genicam"
	"github.com/adgenicam/gcgen/pkg/log"
	"github.com/adgenicam/gcgen/pkg/structure"
)

// Layout of the features screen, in pixels.
const (
	startX     = 4
	startY     = 48
	startW     = 300
	startH     = 40
	columnTopY = 44
	pageLimit  = 940

	labelW    = 132
	boxW      = labelW + 156
	rowH      = 24
	boxPad    = 8
	boxGap    = 16
	columnGap = 8

	helpW = 20
	ctrlW = 68

	exitW    = 100
	exitRowH = 28
)

// Options configure the generated screens.
type Options struct {
	// Camera is the camera model name shown in the title.
	Camera string

	// ScreenDir is the EDM screen directory of the camera driver.
	ScreenDir string

	// CameraType prefixes the driver's help and camera screens.
	CameraType string

	// Exclude lists features that get no row. They still count towards the
	// height of their box.
	Exclude []string
}

// HelpScreen is the related display the help buttons open.
func (o Options) HelpScreen() string {
	return path.Join(o.ScreenDir, o.CameraType+"Help.edl")
}

// Features writes the features screen.
type Features struct {
	idx     *genicam.Index
	opts    Options
	exclude map[string]bool
	logger  log.Logger
}

// NewFeatures creates a features screen writer over idx.
func NewFeatures(idx *genicam.Index, opts Options, logger log.Logger) *Features {
	exclude := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = true
	}
	return &Features{
		idx:     idx,
		opts:    opts,
		exclude: exclude,
		logger:  log.OrNoop(logger),
	}
}

// asciiOnly replaces every character outside ASCII with '?'.
var asciiOnly = runes.Map(func(r rune) rune {
	if r > 0x7f {
		return '?'
	}
	return r
})

// layout tracks the running position while boxes are placed.
type layout struct {
	x, y, w, h int
}

// Write writes the screen header, one box per section and the exit button.
func (f *Features) Write(w io.Writer, sections []structure.Section) error {
	var widgets bytes.Buffer
	l := layout{x: startX, y: startY, w: startW, h: startH}

	for _, s := range sections {
		if err := f.writeSection(&widgets, &l, s); err != nil {
			return err
		}
	}

	l.w += 4
	exit := exitData{X: l.w - exitW, Y: l.h - min(exitRowH, l.h-l.y)}
	l.h = exit.Y + exitRowH

	if err := render(w, "screen", screenData{Camera: f.opts.Camera, W: l.w, H: l.h}); err != nil {
		return err
	}
	text, _, err := transform.String(asciiOnly, widgets.String())
	if err != nil {
		return fmt.Errorf("replace non-ASCII characters: %w", err)
	}
	if _, err := io.WriteString(w, text); err != nil {
		return err
	}
	return render(w, "exit", exit)
}

func (f *Features) writeSection(w io.Writer, l *layout, s structure.Section) error {
	boxH := len(s.Features)*rowH + boxPad
	if boxH+l.y > pageLimit {
		l.y = columnTopY
		l.w += boxW + columnGap
		l.x += boxW + columnGap
	}
	box := boxData{Title: s.Title, X: l.x, Y: l.y, LabY: l.y - 8, W: boxW, H: boxH}
	if err := render(w, "box", box); err != nil {
		return err
	}
	l.y += boxPad
	l.h = max(l.y, l.h)

	for _, node := range s.Features {
		name := node.Name()
		if f.exclude[name] {
			f.logger.Log(log.Event{
				Stage:    log.StageScreen,
				Kind:     log.KindSkippedFeature,
				Severity: log.SeverityWarning,
				Node:     name,
				NodeType: node.Type(),
				Message:  "Skipping " + name,
			})
			continue
		}
		if err := f.writeRow(w, l, node); err != nil {
			return err
		}
		l.y += rowH
	}
	l.y += boxGap
	l.h = max(l.y, l.h)

	// The title goes last so it is drawn over the rectangle.
	return render(w, "boxLabel", box)
}

func (f *Features) writeRow(w io.Writer, l *layout, node *genicam.Node) error {
	name := node.Name()
	record, _ := f.idx.RecordName(name)
	row := rowData{
		X:       l.x + 4,
		Y:       l.y,
		LabelW:  labelW,
		Feature: name,
		Record:  record,
		HelpDsp: f.opts.HelpScreen(),
		Desc:    helpMacros(name, genicam.Description(node)),
	}

	if err := render(w, "help", row); err != nil {
		return err
	}
	row.X += helpW
	if err := render(w, "label", row); err != nil {
		return err
	}
	row.X += labelW + 4

	kind := genicam.KindOf(node)
	switch {
	case kind == genicam.KindString || f.idx.IsReadOnly(node):
		return render(w, "textUpdate", row)

	case kind == genicam.KindInteger || kind == genicam.KindFloat:
		if err := render(w, "textControl", row); err != nil {
			return err
		}
		row.X += ctrlW
		return render(w, "readback", row)

	case kind == genicam.KindEnumeration || kind == genicam.KindBoolean:
		return render(w, "menu", row)

	case kind == genicam.KindCommand:
		return render(w, "message", row)

	default:
		f.logger.Log(log.Event{
			Stage:    log.StageScreen,
			Kind:     log.KindUnknownNodeType,
			Severity: log.SeverityWarning,
			Node:     name,
			NodeType: node.Type(),
			Message:  fmt.Sprintf("Don't know what to do with %s (%s)", name, node.Type()),
		})
		return nil
	}
}
