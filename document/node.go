package document

// Comment holds the free-standing comment text attached to a node: any
// comment lines immediately preceding it, and any trailing comment on the
// same line after it.
type Comment struct {
	// Before is a comment that appears on the line(s) before the node, or
	// nil if none.
	Before []byte
	// After is a comment that appears on the same line, after the node, or
	// nil if none.
	After []byte
}

// Node is a single KDL node: a name, an optional type annotation, an
// ordered list of positional arguments, a set of properties, and an
// optional list of child nodes. Rendering a Node back to KDL text is the
// job of package printer, not of Node itself, so that a document can be
// built and inspected without ever pulling in formatting concerns.
type Node struct {
	// Name is the node's name, always a string Value (it may carry a type
	// annotation of its own? no — KDL node names are untyped strings).
	Name *Value
	// Type is the node's type annotation, or "" if none.
	Type string
	// Arguments is the node's positional argument list, in source order.
	Arguments []*Value
	// Properties is the node's property set.
	Properties *Properties
	// Children is the node's child node list, or nil if the node has no
	// children block at all (distinct from an empty children block such as
	// "node {}", which the parser stores as a non-nil, zero-length slice).
	Children []*Node
	// Comment holds any comment text associated with this node.
	Comment *Comment
}

// NewNode creates an empty, unnamed Node ready to be populated by a
// parser or builder.
func NewNode() *Node {
	return &Node{Properties: NewProperties()}
}

// ShallowCopy returns a copy of n whose slice and map fields alias n's;
// callers that intend to mutate Arguments, Children, or Properties on the
// copy must replace those fields first.
func (n *Node) ShallowCopy() *Node {
	r := &Node{}
	*r = *n
	return r
}

// ExpectChildren grows n.Children's capacity to hold count additional
// children without reallocating on each append.
func (n *Node) ExpectChildren(count int) {
	want := len(n.Children) + count
	if cap(n.Children) < want {
		c := make([]*Node, 0, want)
		c = append(c, n.Children...)
		n.Children = c
	}
}

// ExpectArguments grows n.Arguments's capacity to hold count additional
// arguments without reallocating on each append.
func (n *Node) ExpectArguments(count int) {
	want := len(n.Arguments) + count
	if cap(n.Arguments) < want {
		a := make([]*Value, 0, want)
		a = append(a, n.Arguments...)
		n.Arguments = a
	}
}

// AddNode appends child to n's children.
func (n *Node) AddNode(child *Node) {
	n.Children = append(n.Children, child)
}

// SetName sets the node's name to the untyped string name.
func (n *Node) SetName(name string) {
	n.Name = NewString(name)
}

// AddArgument appends a positional argument to n and returns it.
func (n *Node) AddArgument(value *Value) *Value {
	n.Arguments = append(n.Arguments, value)
	return value
}

// AddProperty sets the property key to value on n and returns value.
func (n *Node) AddProperty(key string, value *Value) *Value {
	if n.Properties == nil {
		n.Properties = NewProperties()
	}
	n.Properties.Set(key, value)
	return value
}
