package epicsdb

import (
	"fmt"
	"io"

	"github.com/adgenicam/gcgen/pkg/genicam"
	"github.com/adgenicam/gcgen/pkg/log"
)

// MaxEnumStates is the number of states an mbbi/mbbo record can hold.
const MaxEnumStates = 16

// maxStateNameLen caps the state strings taken from enum entry names.
const maxStateNameLen = 16

// statePrefixes name the mbbx state fields in order.
var statePrefixes = [MaxEnumStates]string{
	"ZR", "ON", "TW", "TH", "FR", "FV", "SX", "SV",
	"EI", "NI", "TE", "EL", "TV", "TT", "FT", "FF",
}

// Options configure the generated database.
type Options struct {
	// Camera is the camera model name written to CamModel.
	Camera string

	// Int64 selects int64in/int64out records for integer features instead
	// of ai/ao. Requires EPICS base 3.16.1 or later.
	Int64 bool

	// ScreenDir is the EDM screen directory used by the navigation records.
	ScreenDir string

	// CameraType is the default of the $(TYPE) macro.
	CameraType string

	// Exclude lists features that another layer of the driver already
	// provides records for.
	Exclude []string
}

// Generator writes database templates.
type Generator struct {
	idx     *genicam.Index
	opts    Options
	exclude map[string]bool
	logger  log.Logger
}

// NewGenerator creates a Generator over idx.
func NewGenerator(idx *genicam.Index, opts Options, logger log.Logger) *Generator {
	exclude := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = true
	}
	return &Generator{
		idx:     idx,
		opts:    opts,
		exclude: exclude,
		logger:  log.OrNoop(logger),
	}
}

// Write writes the header, the navigation records and the records of
// every feature, in order. It fails only on a write error or an
// enumeration entry without a value.
func (g *Generator) Write(w io.Writer, features []*genicam.Node) error {
	header := headerData{
		Camera:     g.opts.Camera,
		ScreenDir:  g.opts.ScreenDir,
		CameraType: g.opts.CameraType,
	}
	if err := render(w, "header", header); err != nil {
		return err
	}

	for _, node := range features {
		if err := g.writeFeature(w, node); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeFeature(w io.Writer, node *genicam.Node) error {
	name := node.Name()
	if g.exclude[name] {
		g.logger.Log(log.Event{
			Stage:    log.StageDB,
			Kind:     log.KindSkippedFeature,
			Severity: log.SeverityWarning,
			Node:     name,
			NodeType: node.Type(),
			Message:  "Skipping " + name,
		})
		return nil
	}

	record, _ := g.idx.RecordName(name)
	data := recordData{
		Feature:  name,
		Record:   record,
		ReadOnly: g.idx.IsReadOnly(node),
	}

	switch genicam.KindOf(node) {
	case genicam.KindInteger:
		data.InputType, data.OutputType = "ai", "ao"
		if g.opts.Int64 {
			data.InputType, data.OutputType = "int64in", "int64out"
		}
		data.Autosave, data.AutosaveOut = longFields.input(), longFields.output()
		return render(w, "integer", data)

	case genicam.KindBoolean:
		data.Autosave, data.AutosaveOut = binaryFields.input(), binaryFields.output()
		return render(w, "boolean", data)

	case genicam.KindFloat:
		data.Autosave, data.AutosaveOut = analogFields.input(), analogFields.output()
		return render(w, "float", data)

	case genicam.KindString:
		data.Autosave = stringFields.input()
		return render(w, "string", data)

	case genicam.KindCommand:
		data.Autosave = longFields.input()
		return render(w, "command", data)

	case genicam.KindEnumeration:
		if err := g.fillStates(&data, node); err != nil {
			return err
		}
		data.Autosave, data.AutosaveOut = multiBitFields.input(), multiBitFields.output()
		return render(w, "enumeration", data)

	default:
		g.logger.Log(log.Event{
			Stage:    log.StageDB,
			Kind:     log.KindUnknownNodeType,
			Severity: log.SeverityWarning,
			Node:     name,
			NodeType: node.Type(),
			Message:  fmt.Sprintf("Don't know what to do with %s (%s)", name, node.Type()),
		})
		return nil
	}
}

// fillStates sets the mbbx states and the mbbo default from the first
// MaxEnumStates entries of an Enumeration.
func (g *Generator) fillStates(data *recordData, node *genicam.Node) error {
	entries, dropped, err := genicam.EnumEntries(node, MaxEnumStates)
	if err != nil {
		return err
	}
	if dropped > 0 {
		g.logger.Log(log.Event{
			Stage:    log.StageDB,
			Kind:     log.KindEnumTruncated,
			Severity: log.SeverityWarning,
			Node:     data.Feature,
			NodeType: node.Type(),
			Count:    dropped,
			Message: fmt.Sprintf("More than %d enum entries for %s mbbi record, discarding %d additional options. "+
				"If needed, edit the Enumeration tag for %s to select the %d you want.",
				MaxEnumStates, data.Feature, dropped, data.Feature, MaxEnumStates),
		})
	}

	data.Default = "0"
	for i, e := range entries {
		if i == 0 {
			data.Default = e.Value
		}
		data.States = append(data.States, stateData{
			Prefix: statePrefixes[i],
			Name:   truncate(e.Name, maxStateNameLen),
			Value:  e.Value,
		})
	}
	return nil
}

// truncate shortens s to at most n runes. Cutting bytes could split a
// multi-byte character and leave invalid UTF-8 in the state string.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
