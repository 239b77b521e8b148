package adf

import "errors"

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk. Return SkipChildren to keep
// walking without descending into the current node.
type WalkFunc func(n Node, depth int) error

// SkipChildren is returned by a WalkFunc to skip the current node's children.
var SkipChildren = errors.New("skip children") //nolint:revive,staticcheck // sentinel, not a failure

// Walk performs a pre-order traversal of the tree rooted at root.
func Walk(root Node, fn WalkFunc) error {
	return walk(root, 0, fn)
}

// WalkDocument walks every top-level node of doc in order.
func WalkDocument(doc *Document, fn WalkFunc) error {
	if doc == nil {
		return nil
	}
	for _, n := range doc.Content {
		if err := walk(n, 0, fn); err != nil {
			return err
		}
	}
	return nil
}

func walk(n Node, depth int, fn WalkFunc) error {
	if n == nil {
		return nil
	}

	if err := fn(n, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}

	parent, ok := n.(Parent)
	if !ok {
		return nil
	}
	for _, child := range parent.Children() {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// CountTypes returns how many nodes of each type doc contains.
func CountTypes(doc *Document) map[NodeType]int {
	counts := make(map[NodeType]int)
	//nolint:errcheck // the callback never fails
	_ = WalkDocument(doc, func(n Node, _ int) error {
		counts[n.Type()]++
		return nil
	})
	return counts
}

// PlainText concatenates the text of every leaf below n.
func PlainText(n Node) string {
	var text []byte
	//nolint:errcheck // the callback never fails
	_ = Walk(n, func(node Node, _ int) error {
		switch leaf := node.(type) {
		case *Text:
			text = append(text, leaf.Text...)
		case *CodeBlock:
			text = append(text, leaf.Text...)
		case *HardBreak:
			text = append(text, '\n')
		case *Opaque:
			if leaf.Text != nil {
				text = append(text, *leaf.Text...)
			}
		}
		return nil
	})
	return string(text)
}
