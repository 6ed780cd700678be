package log

import (
	"fmt"
	"strings"
	"time"
)

// Event is a single generation diagnostic.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies the generation run (UUID).
	RunID string `cbor:"2,keyasint"`

	// Stage of the generator that reported the event.
	Stage Stage `cbor:"3,keyasint"`

	// Kind names the condition.
	Kind Kind `cbor:"4,keyasint"`

	// Severity of the condition.
	Severity Severity `cbor:"5,keyasint"`

	// Node is the GenICam feature name, when the event concerns one.
	Node string `cbor:"6,keyasint,omitempty"`

	// NodeType is the XML element name of the node (Integer, Category, ...).
	NodeType string `cbor:"7,keyasint,omitempty"`

	// Message is a human-readable description.
	Message string `cbor:"8,keyasint,omitempty"`

	// Count carries a kind-specific quantity (e.g. dropped enum entries).
	Count int `cbor:"9,keyasint,omitempty"`

	// Path is the file the event refers to, if any.
	Path string `cbor:"10,keyasint,omitempty"`
}

// Stage indicates which generator pass reported the event.
type Stage uint8

const (
	// StageInput is reading and decoding the feature XML.
	StageInput Stage = 0
	// StageIndex is building the node index and record names.
	StageIndex Stage = 1
	// StageFlatten is flattening categories into sections.
	StageFlatten Stage = 2
	// StageDB is emitting the database template.
	StageDB Stage = 3
	// StageScreen is emitting the EDM screens.
	StageScreen Stage = 4
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageInput:
		return "INPUT"
	case StageIndex:
		return "INDEX"
	case StageFlatten:
		return "FLATTEN"
	case StageDB:
		return "DB"
	case StageScreen:
		return "SCREEN"
	default:
		return "UNKNOWN"
	}
}

// Kind names the diagnosed condition.
type Kind uint8

const (
	// KindHeaderDiscarded: a non-XML first line (camera id) was dropped.
	KindHeaderDiscarded Kind = 0
	// KindUnnamedNode: a node without a Name attribute that is not a StructReg.
	KindUnnamedNode Kind = 1
	// KindDuplicateName: a second node carries an already indexed Name.
	KindDuplicateName Kind = 2
	// KindUnresolvedReference: a pFeature points at no indexed node.
	KindUnresolvedReference Kind = 3
	// KindUnknownNodeType: no record or widget mapping for the node type.
	KindUnknownNodeType Kind = 4
	// KindSkippedFeature: the feature is on the exclusion list.
	KindSkippedFeature Kind = 5
	// KindEnumTruncated: more than 16 enum entries; the rest were dropped.
	KindEnumTruncated Kind = 6
	// KindSummaryPreserved: the summary screen exists and was left alone.
	KindSummaryPreserved Kind = 7
	// KindGenerated: an output file was written.
	KindGenerated Kind = 8
)

var kindNames = map[Kind]string{
	KindHeaderDiscarded:     "HEADER_DISCARDED",
	KindUnnamedNode:         "UNNAMED_NODE",
	KindDuplicateName:       "DUPLICATE_NAME",
	KindUnresolvedReference: "UNRESOLVED_REFERENCE",
	KindUnknownNodeType:     "UNKNOWN_NODE_TYPE",
	KindSkippedFeature:      "SKIPPED_FEATURE",
	KindEnumTruncated:       "ENUM_TRUNCATED",
	KindSummaryPreserved:    "SUMMARY_PRESERVED",
	KindGenerated:           "GENERATED",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseKind parses a kind name, case-insensitively. Dashes are accepted in
// place of underscores ("enum-truncated").
func ParseKind(s string) (Kind, error) {
	want := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for k, name := range kindNames {
		if name == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// ParseStage parses a stage name, case-insensitively.
func ParseStage(s string) (Stage, error) {
	switch strings.ToLower(s) {
	case "input":
		return StageInput, nil
	case "index":
		return StageIndex, nil
	case "flatten":
		return StageFlatten, nil
	case "db":
		return StageDB, nil
	case "screen":
		return StageScreen, nil
	default:
		return 0, fmt.Errorf("unknown stage %q (want input, index, flatten, db, screen)", s)
	}
}

// Severity classifies how much attention an event needs.
type Severity uint8

const (
	// SeverityInfo is informational (files written, header dropped).
	SeverityInfo Severity = 0
	// SeverityWarning means output is incomplete or altered.
	SeverityWarning Severity = 1
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	default:
		return "UNKNOWN"
	}
}
