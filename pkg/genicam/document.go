package genicam

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/adgenicam/gcgen/pkg/log"
)

// ErrNoXML is returned when neither of the first two lines of the input
// looks like the start of an XML document.
var ErrNoXML = errors.New("no XML found in the first two lines")

// headerLines is how many leading lines may be inspected for the XML start.
// Capture tools such as arv-tool prepend the camera id on its own line.
const headerLines = 2

// Document is a decoded GenICam feature description.
type Document struct {
	// Root is the document element (RegisterDescription).
	Root *Node

	// Header is the discarded non-XML first line, if there was one.
	Header string
}

// LoadError describes a failure to read or decode a feature file.
type LoadError struct {
	// Path is the file that failed to load ("" when parsing bytes).
	Path string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads and decodes a GenICam feature file.
func Load(path string, logger log.Logger) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	doc, err := Parse(data, logger)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Message: err.Error()}
	}
	return doc, nil
}

// Parse decodes a GenICam feature description. The XML may be preceded by a
// single non-XML line, which is discarded and reported to logger.
func Parse(data []byte, logger log.Logger) (*Document, error) {
	logger = log.OrNoop(logger)

	body, header, err := stripHeader(data)
	if err != nil {
		return nil, err
	}
	if header != "" {
		logger.Log(log.Event{
			Stage:    log.StageInput,
			Kind:     log.KindHeaderDiscarded,
			Severity: log.SeverityInfo,
			Message:  "Discarding non-XML first line: " + header,
		})
	}

	var root Node
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charsetReader
	if err := dec.Decode(&root); err != nil {
		return nil, &LoadError{Message: "failed to parse XML", Cause: err}
	}

	return &Document{Root: &root, Header: header}, nil
}

// stripHeader finds the first of the leading lines that, after optional
// whitespace, starts with '<' and returns the data from there on with
// leading whitespace removed.
func stripHeader(data []byte) (body []byte, header string, err error) {
	lines := bytes.SplitAfter(data, []byte("\n"))

	var inspected []string
	offset := 0
	for i := 0; i < headerLines && i < len(lines); i++ {
		line := lines[i]
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t\r\n\v\f"), []byte("<")) {
			if i > 0 {
				header = strings.TrimRight(string(lines[0]), "\r\n")
			}
			return bytes.TrimLeft(data[offset:], " \t\r\n\v\f"), header, nil
		}
		inspected = append(inspected, string(line))
		offset += len(line)
	}

	return nil, "", &LoadError{
		Message: "neither of these lines looks like valid XML:\n" + strings.Join(inspected, ""),
		Cause:   ErrNoXML,
	}
}

// charsetReader lets the decoder accept any IANA-registered encoding
// declared in the XML prolog (vendor files are often ISO-8859-1).
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
