package markup

// Attr is a single name=value attribute pair from an element tag.
// A bare attribute (no '=') carries an empty Value.
type Attr struct {
	Key   string
	Value string
	Pos   Position
}

// Node is a parsed tree element: either a plain structural element or a
// component-backed wrapper. A node is a text leaf or has structural
// children, never both.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
	IsText   bool // true when Text is the node's literal body
	Pos      Position

	// Component is non-nil when Tag resolved against the registry.
	Component Component
}

// Attr looks up an attribute by key. Duplicate keys resolve to the last
// written value. Returns the value and true if found.
func (n *Node) Attr(key string) (string, bool) {
	for i := len(n.Attrs) - 1; i >= 0; i-- {
		if n.Attrs[i].Key == key {
			return n.Attrs[i].Value, true
		}
	}
	return "", false
}

// IsComponent reports whether this node is a component-backed wrapper.
func (n *Node) IsComponent() bool {
	return n.Component != nil
}
