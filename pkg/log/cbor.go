package log

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Diagnostics files are a plain sequence of CBOR items, one per event.
// Map keys are sorted so two runs over the same XML produce the same bytes
// apart from timestamps and run IDs.
var (
	diagEncMode = mustEncMode(cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	})
	diagDecMode = mustDecMode(cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic("log: diagnostics encoder options: " + err.Error())
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic("log: diagnostics decoder options: " + err.Error())
	}
	return dm
}

// NewEncoder returns an encoder that appends diagnostics events to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return diagEncMode.NewEncoder(w)
}

// NewDecoder returns a decoder that reads diagnostics events from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return diagDecMode.NewDecoder(r)
}
