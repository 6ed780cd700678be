package genicam

// GenICam node types the generator knows about.
const (
	TypeCategory      = "Category"
	TypeGroup         = "Group"
	TypeStructReg     = "StructReg"
	TypeInteger       = "Integer"
	TypeIntConverter  = "IntConverter"
	TypeIntSwissKnife = "IntSwissKnife"
	TypeBoolean       = "Boolean"
	TypeFloat         = "Float"
	TypeConverter     = "Converter"
	TypeSwissKnife    = "SwissKnife"
	TypeString        = "String"
	TypeStringReg     = "StringReg"
	TypeCommand       = "Command"
	TypeEnumeration   = "Enumeration"
)

// Kind groups node types by how they map to records and widgets.
type Kind int

const (
	KindUnknown Kind = iota
	KindInteger
	KindBoolean
	KindFloat
	KindString
	KindCommand
	KindEnumeration
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindCommand:
		return "command"
	case KindEnumeration:
		return "enumeration"
	default:
		return "unknown"
	}
}

// KindOf classifies a node by its element name.
func KindOf(n *Node) Kind {
	switch n.Type() {
	case TypeInteger, TypeIntConverter, TypeIntSwissKnife:
		return KindInteger
	case TypeBoolean:
		return KindBoolean
	case TypeFloat, TypeConverter, TypeSwissKnife:
		return KindFloat
	case TypeString, TypeStringReg:
		return KindString
	case TypeCommand:
		return KindCommand
	case TypeEnumeration:
		return KindEnumeration
	default:
		return KindUnknown
	}
}

// Description returns the help text of a node: the text of its last
// ToolTip or Description child.
func Description(n *Node) string {
	desc := ""
	for _, c := range n.Children {
		switch c.Type() {
		case "ToolTip", "Description":
			desc = c.Text()
		}
	}
	return desc
}
