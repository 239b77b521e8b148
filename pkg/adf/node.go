// Package adf models the Atlassian Document Format tree that Jira uses for
// rich-text fields such as issue descriptions and comments.
//
// Every node kind is its own Go type. Block containers hold ordered child
// slices, text leaves hold a string plus an ordered mark list, and void
// nodes hold nothing. Span is the one transient type: the Markdown parser
// produces it as an inline wrapper and Flatten removes it again.
package adf

// NodeType is the wire tag of a node ("paragraph", "text", ...).
type NodeType string

// Node tags understood by the converter.
const (
	TypeDoc         NodeType = "doc"
	TypeParagraph   NodeType = "paragraph"
	TypeBlockquote  NodeType = "blockquote"
	TypeHeading     NodeType = "heading"
	TypeOrderedList NodeType = "orderedList"
	TypeBulletList  NodeType = "bulletList"
	TypeListItem    NodeType = "listItem"
	TypeTable       NodeType = "table"
	TypeTableRow    NodeType = "tableRow"
	TypeTableCell   NodeType = "tableCell"
	TypeTableHeader NodeType = "tableHeader"
	TypeText        NodeType = "text"
	TypeCodeBlock   NodeType = "codeBlock"
	TypeRule        NodeType = "rule"
	TypeHardBreak   NodeType = "hardBreak"

	// Inline tags produced by Jira that the converter passes through.
	TypeCode       NodeType = "code"
	TypeInlineCard NodeType = "inlineCard"
	TypeMention    NodeType = "mention"
	TypeEmoji      NodeType = "emoji"
)

// IsInline reports whether a node of this type renders without a trailing
// newline when it falls through to the default Markdown rule.
func (t NodeType) IsInline() bool {
	switch t {
	case TypeText, TypeCode, TypeInlineCard, TypeMention, TypeEmoji,
		TypeListItem, TypeTableCell, TypeTableHeader, TypeTableRow, TypeTable:
		return true
	default:
		return false
	}
}

// IsInlineWrapper reports whether a node of this type becomes a flatten
// candidate when it carries child content.
func (t NodeType) IsInlineWrapper() bool {
	switch t {
	case TypeText, TypeCode, TypeInlineCard, TypeMention, TypeEmoji:
		return true
	default:
		return false
	}
}

// Node is one element of a document tree.
// The set of implementations is closed; see the concrete types below.
type Node interface {
	// Type returns the wire tag of the node.
	Type() NodeType

	sealed()
}

// Parent is implemented by nodes that own an ordered child sequence.
type Parent interface {
	Node

	// Children returns the child sequence. A nil slice means the node has
	// no content field at all.
	Children() []Node

	// WithChildren returns a shallow copy of the node holding children.
	WithChildren(children []Node) Node
}

// Marked is implemented by leaves that can carry marks.
type Marked interface {
	Node

	// MarkList returns the node's marks in nesting order.
	MarkList() []Mark

	// WithMarks returns a shallow copy of the node carrying marks.
	WithMarks(marks []Mark) Node
}

// Attrs on block nodes hold wire attributes the converter does not model,
// such as orderedList "order", table "layout" or tableCell "colspan", so
// they survive a JSON round trip. Modeled attributes (heading level, code
// block language) live in their own fields and never appear in Attrs.

// Paragraph is a block of inline content.
type Paragraph struct {
	Content []Node
	Attrs   map[string]any
}

// Blockquote is a quoted block.
type Blockquote struct {
	Content []Node
	Attrs   map[string]any
}

// Heading is a section heading. Level is between 1 and 6.
type Heading struct {
	Level   int
	Content []Node
	Attrs   map[string]any
}

// OrderedList is a numbered list of ListItem nodes.
type OrderedList struct {
	Content []Node
	Attrs   map[string]any
}

// BulletList is an unnumbered list of ListItem nodes.
type BulletList struct {
	Content []Node
	Attrs   map[string]any
}

// ListItem is one entry of a list.
type ListItem struct {
	Content []Node
	Attrs   map[string]any
}

// Table is a grid of TableRow nodes. The first row is the header row.
type Table struct {
	Content []Node
	Attrs   map[string]any
}

// TableRow is one row of a table.
type TableRow struct {
	Content []Node
	Attrs   map[string]any
}

// TableCell is one cell of a table row. Header cells use the "tableHeader"
// tag on the wire.
type TableCell struct {
	Header  bool
	Content []Node
	Attrs   map[string]any
}

// Text is a run of literal text carrying its complete mark list.
type Text struct {
	Text  string
	Marks []Mark
}

// CodeBlock is a block of preformatted code.
type CodeBlock struct {
	Text     string
	Language string
	Attrs    map[string]any
}

// Rule is a horizontal rule.
type Rule struct{}

// HardBreak is a forced line break inside inline content.
type HardBreak struct{}

// Span is an inline wrapper that applies Marks to every leaf in Content.
// The parser builds spans for emphasis, strikethrough and links; Flatten
// dissolves them into marked Text leaves.
type Span struct {
	Tag     NodeType
	Marks   []Mark
	Content []Node
}

// Opaque preserves a node whose tag the converter does not model, such as
// mentions, emoji, panels or media. Nil fields are absent on the wire.
type Opaque struct {
	Tag     NodeType
	Text    *string
	Marks   []Mark
	Attrs   map[string]any
	Content []Node
}

func (*Paragraph) Type() NodeType   { return TypeParagraph }
func (*Blockquote) Type() NodeType  { return TypeBlockquote }
func (*Heading) Type() NodeType     { return TypeHeading }
func (*OrderedList) Type() NodeType { return TypeOrderedList }
func (*BulletList) Type() NodeType  { return TypeBulletList }
func (*ListItem) Type() NodeType    { return TypeListItem }
func (*Table) Type() NodeType       { return TypeTable }
func (*TableRow) Type() NodeType    { return TypeTableRow }
func (*Text) Type() NodeType        { return TypeText }
func (*CodeBlock) Type() NodeType   { return TypeCodeBlock }
func (*Rule) Type() NodeType        { return TypeRule }
func (*HardBreak) Type() NodeType   { return TypeHardBreak }
func (o *Opaque) Type() NodeType    { return o.Tag }

func (c *TableCell) Type() NodeType {
	if c.Header {
		return TypeTableHeader
	}
	return TypeTableCell
}

func (s *Span) Type() NodeType {
	if s.Tag == "" {
		return TypeText
	}
	return s.Tag
}

func (*Paragraph) sealed()   {}
func (*Blockquote) sealed()  {}
func (*Heading) sealed()     {}
func (*OrderedList) sealed() {}
func (*BulletList) sealed()  {}
func (*ListItem) sealed()    {}
func (*Table) sealed()       {}
func (*TableRow) sealed()    {}
func (*TableCell) sealed()   {}
func (*Text) sealed()        {}
func (*CodeBlock) sealed()   {}
func (*Rule) sealed()        {}
func (*HardBreak) sealed()   {}
func (*Span) sealed()        {}
func (*Opaque) sealed()      {}

func (p *Paragraph) Children() []Node   { return p.Content }
func (b *Blockquote) Children() []Node  { return b.Content }
func (h *Heading) Children() []Node     { return h.Content }
func (l *OrderedList) Children() []Node { return l.Content }
func (l *BulletList) Children() []Node  { return l.Content }
func (i *ListItem) Children() []Node    { return i.Content }
func (t *Table) Children() []Node       { return t.Content }
func (r *TableRow) Children() []Node    { return r.Content }
func (c *TableCell) Children() []Node   { return c.Content }
func (s *Span) Children() []Node        { return s.Content }
func (o *Opaque) Children() []Node      { return o.Content }

func (p *Paragraph) WithChildren(children []Node) Node {
	cp := *p
	cp.Content = children
	return &cp
}

func (b *Blockquote) WithChildren(children []Node) Node {
	cp := *b
	cp.Content = children
	return &cp
}

func (h *Heading) WithChildren(children []Node) Node {
	cp := *h
	cp.Content = children
	return &cp
}

func (l *OrderedList) WithChildren(children []Node) Node {
	cp := *l
	cp.Content = children
	return &cp
}

func (l *BulletList) WithChildren(children []Node) Node {
	cp := *l
	cp.Content = children
	return &cp
}

func (i *ListItem) WithChildren(children []Node) Node {
	cp := *i
	cp.Content = children
	return &cp
}

func (t *Table) WithChildren(children []Node) Node {
	cp := *t
	cp.Content = children
	return &cp
}

func (r *TableRow) WithChildren(children []Node) Node {
	cp := *r
	cp.Content = children
	return &cp
}

func (c *TableCell) WithChildren(children []Node) Node {
	cp := *c
	cp.Content = children
	return &cp
}

func (s *Span) WithChildren(children []Node) Node {
	cp := *s
	cp.Content = children
	return &cp
}

func (o *Opaque) WithChildren(children []Node) Node {
	cp := *o
	cp.Content = children
	return &cp
}

func (t *Text) MarkList() []Mark   { return t.Marks }
func (s *Span) MarkList() []Mark   { return s.Marks }
func (o *Opaque) MarkList() []Mark { return o.Marks }

func (t *Text) WithMarks(marks []Mark) Node {
	cp := *t
	cp.Marks = marks
	return &cp
}

func (s *Span) WithMarks(marks []Mark) Node {
	cp := *s
	cp.Marks = marks
	return &cp
}

func (o *Opaque) WithMarks(marks []Mark) Node {
	cp := *o
	cp.Marks = marks
	return &cp
}

// NewText returns an unmarked text leaf.
func NewText(text string) *Text {
	return &Text{Text: text}
}

// NewParagraph returns a paragraph holding nodes.
func NewParagraph(nodes ...Node) *Paragraph {
	return &Paragraph{Content: append([]Node{}, nodes...)}
}
