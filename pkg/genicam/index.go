package genicam

import (
	"fmt"

	"github.com/adgenicam/gcgen/pkg/log"
)

// Index is the name lookup built from a Document. It is read-only once
// NewIndex returns.
type Index struct {
	nodes      map[string]*Node
	records    map[string]string
	order      []string
	categories []string
}

// NewIndex walks the children of the document element. Group elements are
// descended into without being indexed; every other element with a Name
// attribute is indexed and given a record name. Nameless elements other
// than StructReg are reported to logger.
func NewIndex(doc *Document, logger log.Logger) *Index {
	idx := &Index{
		nodes:   make(map[string]*Node),
		records: make(map[string]string),
	}
	b := &indexBuilder{idx: idx, namer: NewRecordNamer(), logger: log.OrNoop(logger)}

	if doc != nil && doc.Root != nil {
		for _, n := range doc.Root.Children {
			b.add(n)
		}
	}
	return idx
}

type indexBuilder struct {
	idx    *Index
	namer  *RecordNamer
	logger log.Logger
}

func (b *indexBuilder) add(n *Node) {
	switch {
	case n.Type() == TypeGroup:
		for _, c := range n.Children {
			b.add(c)
		}

	case n.HasName():
		name := n.Name()
		if _, dup := b.idx.nodes[name]; dup {
			b.logger.Log(log.Event{
				Stage:    log.StageIndex,
				Kind:     log.KindDuplicateName,
				Severity: log.SeverityWarning,
				Node:     name,
				NodeType: n.Type(),
				Message:  fmt.Sprintf("Duplicate node name %s (%s), keeping the first", name, n.Type()),
			})
			return
		}
		b.idx.nodes[name] = n
		b.idx.records[name] = b.namer.Assign(name)
		b.idx.order = append(b.idx.order, name)
		if n.Type() == TypeCategory {
			b.idx.categories = append(b.idx.categories, name)
		}

	case n.Type() != TypeStructReg:
		b.logger.Log(log.Event{
			Stage:    log.StageIndex,
			Kind:     log.KindUnnamedNode,
			Severity: log.SeverityWarning,
			NodeType: n.Type(),
			Message:  fmt.Sprintf("Node has no Name attribute: <%s>", n.Type()),
		})
	}
}

// Lookup returns the node with the given Name.
func (idx *Index) Lookup(name string) (*Node, bool) {
	n, ok := idx.nodes[name]
	return n, ok
}

// RecordName returns the record name assigned to the named feature.
func (idx *Index) RecordName(name string) (string, bool) {
	r, ok := idx.records[name]
	return r, ok
}

// Names returns the indexed feature names in document order.
func (idx *Index) Names() []string {
	return append([]string(nil), idx.order...)
}

// Categories returns the names of Category nodes in document order.
func (idx *Index) Categories() []string {
	return append([]string(nil), idx.categories...)
}

// Len returns the number of indexed nodes.
func (idx *Index) Len() int {
	return len(idx.order)
}
