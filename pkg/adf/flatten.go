package adf

// IsWrapper reports whether n is an inline wrapper that Flatten dissolves:
// a node with an inline-wrapper tag that currently holds child content.
func IsWrapper(n Node) bool {
	switch node := n.(type) {
	case *Span:
		return node.Content != nil
	case *Opaque:
		return node.Tag.IsInlineWrapper() && node.Content != nil
	default:
		return false
	}
}

// Flatten collapses nested inline wrappers below n into runs of leaves that
// carry the accumulated marks of every wrapper that contained them.
//
// A wrapper is replaced by its flattened descendants. Each descendant that
// already has marks gets the wrapper's marks appended after its own, and a
// descendant without marks adopts them, so marks end up ordered innermost
// wrapper first. Any other node is returned as the single element of the
// result with its children flattened in place. The input is not modified.
func Flatten(n Node) []Node {
	if n == nil {
		return nil
	}

	if IsWrapper(n) {
		wrapper, _ := n.(Marked)
		outer := wrapper.MarkList()

		parent, _ := n.(Parent)
		var out []Node
		for _, child := range parent.Children() {
			for _, leaf := range Flatten(child) {
				out = append(out, applyMarks(leaf, outer))
			}
		}
		return out
	}

	if parent, ok := n.(Parent); ok {
		children := parent.Children()
		if children == nil {
			return []Node{n}
		}
		return []Node{parent.WithChildren(flattenAll(children))}
	}

	return []Node{n}
}

// FlattenDocument returns a copy of doc with every top-level node flattened.
func FlattenDocument(doc *Document) *Document {
	if doc == nil {
		return NewDocument()
	}
	out := &Document{Version: doc.Version, Type: doc.Type, Content: flattenAll(doc.Content)}
	if out.Content == nil {
		out.Content = []Node{}
	}
	return out
}

func flattenAll(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Flatten(n)...)
	}
	return out
}

func applyMarks(leaf Node, outer []Mark) Node {
	if len(outer) == 0 {
		return leaf
	}

	marked, ok := leaf.(Marked)
	if !ok {
		return leaf
	}

	own := marked.MarkList()
	if len(own) == 0 {
		return marked.WithMarks(append([]Mark{}, outer...))
	}

	merged := make([]Mark, 0, len(own)+len(outer))
	merged = append(merged, own...)
	merged = append(merged, outer...)
	return marked.WithMarks(merged)
}
