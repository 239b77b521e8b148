package adf

import "errors"

// Version is the only document format version in use.
const Version = 1

// UnimplementedText is the text of the placeholder leaf that stands in for
// Markdown constructs the converter has no mapping for.
const UnimplementedText = "-!- unimplemented markdown node -!-"

// Sentinel errors for decoding and validation.
var (
	// ErrInvalidDocument indicates a root object that is not a version 1 "doc".
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidAttribute indicates a missing or malformed node attribute.
	ErrInvalidAttribute = errors.New("invalid attribute")

	// ErrUnknownNode indicates a node value outside the closed node set.
	ErrUnknownNode = errors.New("unknown node")
)

// Document is the root of a document tree.
type Document struct {
	// Version is always 1.
	Version int

	// Type is always "doc".
	Type NodeType

	// Content holds the top-level blocks. It is never nil.
	Content []Node
}

// NewDocument returns a document holding nodes.
func NewDocument(nodes ...Node) *Document {
	return &Document{
		Version: Version,
		Type:    TypeDoc,
		Content: append([]Node{}, nodes...),
	}
}

// TextDocument returns a document with a single paragraph holding text as
// one unmarked leaf.
func TextDocument(text string) *Document {
	return NewDocument(NewParagraph(NewText(text)))
}

// Unimplemented returns a fresh placeholder leaf.
func Unimplemented() *Text {
	return NewText(UnimplementedText)
}

// IsEmpty reports whether the document has no blocks.
func (d *Document) IsEmpty() bool {
	return d == nil || len(d.Content) == 0
}
