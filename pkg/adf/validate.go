package adf

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes one structural problem in a document.
type ValidationError struct {
	// Path locates the node, e.g. "content[1].content[0]".
	Path string

	// Type is the tag of the offending node.
	Type NodeType

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if e.Type != "" {
		parts = append(parts, string(e.Type))
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// Validate checks doc against the invariants the serializer relies on:
// heading levels between 1 and 6, no unflattened wrappers, lists holding
// only list items and tables whose rows match the header row's width.
// All problems are returned joined.
func Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}

	var v validator
	if doc.Type != TypeDoc {
		v.add("", doc.Type, "root type must be doc")
	}
	if doc.Version != Version {
		v.add("", TypeDoc, fmt.Sprintf("unsupported version %d", doc.Version))
	}
	if doc.Content == nil {
		v.add("", TypeDoc, "content must not be nil")
	}
	v.nodes(doc.Content, "content")

	return errors.Join(v.errs...)
}

type validator struct {
	errs []error
}

func (v *validator) add(path string, typ NodeType, msg string) {
	v.errs = append(v.errs, &ValidationError{Path: path, Type: typ, Message: msg})
}

func (v *validator) nodes(nodes []Node, path string) {
	for i, n := range nodes {
		v.node(n, fmt.Sprintf("%s[%d]", path, i))
	}
}

func (v *validator) node(n Node, path string) {
	if n == nil {
		v.add(path, "", "nil node")
		return
	}

	switch node := n.(type) {
	case *Heading:
		if node.Level < 1 || node.Level > 6 {
			v.add(path, TypeHeading, fmt.Sprintf("level %d out of range 1..6", node.Level))
		}
	case *Span:
		v.add(path, node.Type(), "inline wrapper was not flattened")
	case *OrderedList, *BulletList:
		for i, child := range n.(Parent).Children() {
			if _, ok := child.(*ListItem); !ok {
				v.add(fmt.Sprintf("%s.content[%d]", path, i), typeOf(child), "list child must be listItem")
			}
		}
	case *Table:
		v.table(node, path)
	case *Opaque:
		if IsWrapper(node) {
			v.add(path, node.Tag, "inline wrapper was not flattened")
		}
	}

	if parent, ok := n.(Parent); ok {
		v.nodes(parent.Children(), path+".content")
	}
}

func (v *validator) table(t *Table, path string) {
	width := -1
	for i, child := range t.Content {
		row, ok := child.(*TableRow)
		if !ok {
			v.add(fmt.Sprintf("%s.content[%d]", path, i), typeOf(child), "table child must be tableRow")
			continue
		}
		if width < 0 {
			width = len(row.Content)
			continue
		}
		if len(row.Content) != width {
			v.add(fmt.Sprintf("%s.content[%d]", path, i), TypeTableRow,
				fmt.Sprintf("row has %d cells, header has %d", len(row.Content), width))
		}
	}
}

func typeOf(n Node) NodeType {
	if n == nil {
		return ""
	}
	return n.Type()
}
