package veccalc

// NodeKind is the type tag of a parse tree node.
type NodeKind int

const (
	// NodeList is an untyped grouping that is not a numeric value.
	NodeList NodeKind = iota
	// NodeScalar is a numeric literal leaf.
	NodeScalar
	// NodeVector is a uniform list of scalars.
	NodeVector
	// NodeMatrix is a uniform list of equal-length vectors, one per column.
	NodeMatrix
)

// String returns the name of the kind.
func (k NodeKind) String() string {
	switch k {
	case NodeList:
		return "List"
	case NodeScalar:
		return "Scalar"
	case NodeVector:
		return "Vector"
	case NodeMatrix:
		return "Matrix"
	default:
		return "Unknown"
	}
}

// Node is an element of the tree built by Parse. Nodes are never mutated after
// Parse returns.
type Node struct {
	Children []*Node  // Child nodes in source order, empty for scalars
	Kind     NodeKind // Type tag
	Begin    int      // Byte offset of the first character
	End      int      // Byte offset just past the last character
	Num      float64  // Literal value of a scalar
	Hex      bool     // Whether a scalar was written in hexadecimal
}

// Leaves returns all scalar leaves in left-to-right order.
func (n *Node) Leaves() []*Node {
	if n == nil {
		return nil
	}
	if n.Kind == NodeScalar {
		return []*Node{n}
	}

	var out []*Node
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}

	return out
}

// AllHex reports whether the tree has leaves and every one is hexadecimal.
func (n *Node) AllHex() bool {
	leaves := n.Leaves()
	if len(leaves) == 0 {
		return false
	}
	for _, l := range leaves {
		if !l.Hex {
			return false
		}
	}

	return true
}

// Value flattens the tree into a Value. The row count follows the top-level
// kind; an untyped list flattens to a vector of all its leaves. A tree without
// leaves yields Invalid.
func (n *Node) Value() Value {
	leaves := n.Leaves()
	if len(leaves) == 0 {
		return Invalid
	}

	nums := make([]float64, len(leaves))
	for i, l := range leaves {
		nums[i] = l.Num
	}

	rows := len(nums)
	switch n.Kind {
	case NodeScalar:
		rows = 1
	case NodeMatrix:
		rows = len(nums) / len(n.Children)
	}

	return Value{nums: nums, rows: rows}
}

// Text returns the source text spanned by the node.
func (n *Node) Text(src string) string {
	if n == nil || n.Begin < 0 || n.End > len(src) || n.Begin > n.End {
		return ""
	}

	return src[n.Begin:n.End]
}
