package genicam

import (
	"errors"
	"fmt"
)

// ErrEnumEntryNoValue is returned for an EnumEntry without a Value element.
var ErrEnumEntryNoValue = errors.New("enum entry has no value")

// EnumEntry is one state of an Enumeration feature.
type EnumEntry struct {
	// Name is the entry's Name attribute.
	Name string

	// Value is the literal text of the entry's Value element.
	Value string
}

// EnumEntries returns the first limit EnumEntry children of an Enumeration
// node in document order, and how many further entries were left out.
// A negative limit returns all entries. Only the returned entries are
// checked for a Value.
func EnumEntries(n *Node, limit int) (entries []EnumEntry, dropped int, err error) {
	all := n.AllChildren("EnumEntry")
	if limit >= 0 && len(all) > limit {
		dropped = len(all) - limit
		all = all[:limit]
	}

	entries = make([]EnumEntry, 0, len(all))
	for _, e := range all {
		name := e.Name()
		value := e.Child("Value")
		if value == nil {
			return nil, 0, fmt.Errorf("EnumEntry %s in node %s: %w", name, n.Name(), ErrEnumEntryNoValue)
		}
		entries = append(entries, EnumEntry{Name: name, Value: value.Text()})
	}
	return entries, dropped, nil
}
