package genicam

// IsReadOnly reports whether a feature cannot be written.
//
// The child elements are scanned in order. An AccessMode of RO makes the
// node read-only. A pValue delegates the answer to the referenced node; a
// reference that cannot be resolved, or that loops back on itself, is
// treated as read-only. Only the first deciding child counts.
func (idx *Index) IsReadOnly(n *Node) bool {
	return idx.isReadOnly(n, make(map[*Node]bool))
}

func (idx *Index) isReadOnly(n *Node, seen map[*Node]bool) bool {
	if seen[n] {
		return true
	}
	seen[n] = true

	for _, c := range n.Children {
		switch c.Type() {
		case "AccessMode":
			if c.Text() == "RO" {
				return true
			}
		case "pValue":
			target, ok := idx.Lookup(c.Text())
			if !ok {
				return true
			}
			return idx.isReadOnly(target, seen)
		}
	}
	return false
}
