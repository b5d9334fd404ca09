package veccalc

import "unicode/utf8"

// Parse scans one line of text and returns the tree of numeric literals and
// bracket groupings it contains. Parse never fails: text without numbers
// yields an empty List, and unbalanced brackets are closed at end of input.
func Parse(text string, opt *ParseOptions) *Node {
	p := &parser{text: text, opt: opt.normalize()}
	return p.parse()
}

// parser holds the scan state for a single Parse call.
type parser struct {
	text  string       // Source text
	stack []*frame     // Open groupings, stack[0] is the root
	opt   ParseOptions // Options for literal matching
}

// frame is a grouping that has been opened but not closed yet.
type frame struct {
	children []*Node // Closed children in source order
	begin    int     // Offset of the opening delimiter
	closer   rune    // Delimiter that closes this frame, zero for the root
}

// parse runs the single left-to-right pass.
func (p *parser) parse() *Node {
	p.stack = []*frame{{}}
	skipping := false // inside a word or a rejected literal

	for i := 0; i < len(p.text); {
		r, size := utf8.DecodeRuneInString(p.text[i:])
		top := p.stack[len(p.stack)-1]

		if c := closerFor(r); c != 0 {
			p.stack = append(p.stack, &frame{begin: i, closer: c})
			skipping = false
			i += size
			continue
		}

		if top.closer != 0 && r == top.closer {
			p.pop(i + size)
			skipping = false
			i += size
			continue
		}

		if skipping {
			if isAlnum(r) {
				i += size
				continue
			}
			skipping = false
		}

		if isIdentStart(r) {
			// Words like e5x never contribute numbers.
			skipping = true
			i += size
			continue
		}

		if isNumberStart(r) {
			if lit, ok := matchLiteral(p.text, i, p.opt); ok {
				top.children = append(top.children, &Node{
					Kind:  NodeScalar,
					Begin: lit.Begin,
					End:   lit.End,
					Num:   lit.Num,
					Hex:   lit.Hex,
				})
				i = lit.End
				continue
			}
			skipping = true
		}

		i += size
	}

	// Lenient recovery: close whatever is still open at its last child.
	for len(p.stack) > 1 {
		top := p.stack[len(p.stack)-1]
		end := top.begin
		if n := len(top.children); n > 0 {
			end = top.children[n-1].End
		}
		p.pop(end)
	}

	root := p.stack[0].children
	if len(root) == 0 {
		return &Node{Kind: NodeList}
	}

	n := classify(root[0].Begin, root[len(root)-1].End, root)

	for n.Kind == NodeList && len(n.Children) == 1 {
		n = n.Children[0]
	}

	return n
}

// pop closes the top frame at offset end and appends the result to its parent.
// Empty groupings are discarded.
func (p *parser) pop(end int) {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	parent := p.stack[len(p.stack)-1]

	if n := classify(top.begin, end, top.children); n != nil {
		parent.children = append(parent.children, n)
	}
}

// classify builds the node for a closed grouping from its children.
// A single scalar or single vector child replaces the grouping itself.
// Uniform scalars form a vector, uniform equal-length vectors form a matrix,
// anything else stays an untyped list. It returns nil for an empty grouping.
func classify(begin, end int, children []*Node) *Node {
	if len(children) == 0 {
		return nil
	}

	allScalar, allVector := true, true
	width := len(children[0].Children)
	for _, c := range children {
		if c.Kind != NodeScalar {
			allScalar = false
		}
		if c.Kind != NodeVector || len(c.Children) != width {
			allVector = false
		}
	}

	kind := NodeList
	switch {
	case allScalar && len(children) == 1, allVector && len(children) == 1:
		return children[0]
	case allScalar:
		kind = NodeVector
	case allVector:
		kind = NodeMatrix
	}

	out := make([]*Node, len(children))
	copy(out, children)

	return &Node{Kind: kind, Begin: begin, End: end, Children: out}
}

// closerFor returns the closing delimiter for an opening one, or zero.
func closerFor(r rune) rune {
	switch r {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	default:
		return 0
	}
}
