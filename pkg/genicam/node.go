package genicam

import (
	"encoding/xml"
	"strings"
)

// Node is a generic XML element of a GenICam document.
// The element name is the GenICam node type (Integer, Category, pValue...).
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []*Node    `xml:",any"`
}

// Type returns the local element name, e.g. "Integer" or "Category".
func (n *Node) Type() string {
	return n.XMLName.Local
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	v, _ := n.LookupAttr(name)
	return v
}

// LookupAttr returns the value of the named attribute and whether it exists.
func (n *Node) LookupAttr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Name returns the Name attribute.
func (n *Node) Name() string {
	return n.Attr("Name")
}

// HasName reports whether the node carries a Name attribute.
func (n *Node) HasName() bool {
	_, ok := n.LookupAttr("Name")
	return ok
}

// Child returns the first child element with the given local name.
func (n *Node) Child(localName string) *Node {
	for _, c := range n.Children {
		if c.XMLName.Local == localName {
			return c
		}
	}
	return nil
}

// AllChildren returns every child element with the given local name.
func (n *Node) AllChildren(localName string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.XMLName.Local == localName {
			out = append(out, c)
		}
	}
	return out
}

// Text returns the node's direct character data, trimmed.
// Text of child elements is not included.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Content)
}
