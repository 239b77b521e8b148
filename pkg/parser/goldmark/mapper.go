package goldmark

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/jirascope/pkg/adf"
)

// mapper converts a goldmark AST into document nodes.
// Inline style nodes become adf.Span wrappers; Parse flattens them.
type mapper struct {
	content  []byte
	opts     options
	warnings []Warning
	err      error
}

// newMapper creates a new mapper for the given content.
func newMapper(content []byte, opts options) *mapper {
	return &mapper{content: content, opts: opts}
}

// mapChildren maps all children of a goldmark node. Adjacent unmarked text
// leaves are merged so one run of source text yields one leaf.
func (m *mapper) mapChildren(gmParent ast.Node) []adf.Node {
	out := make([]adf.Node, 0, gmParent.ChildCount())
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if m.err != nil {
			return out
		}
		for _, n := range m.mapNode(child) {
			out = appendMerged(out, n)
		}
	}
	return out
}

// mapNode converts a single goldmark node. Most kinds yield exactly one
// node; text followed by a hard line break yields the text and a break.
//
//nolint:cyclop,funlen // one case per node kind
func (m *mapper) mapNode(gmNode ast.Node) []adf.Node {
	var node adf.Node

	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *ast.Paragraph, *ast.TextBlock:
		node = &adf.Paragraph{Content: m.mapChildren(gmNode)}

	case *ast.Heading:
		node = &adf.Heading{Level: gmn.Level, Content: m.mapChildren(gmn)}

	case *ast.Blockquote:
		node = &adf.Blockquote{Content: m.mapChildren(gmn)}

	case *ast.List:
		if gmn.IsOrdered() {
			node = &adf.OrderedList{Content: m.mapChildren(gmn)}
		} else {
			node = &adf.BulletList{Content: m.mapChildren(gmn)}
		}

	case *ast.ListItem:
		node = &adf.ListItem{Content: m.mapChildren(gmn)}

	case *ast.FencedCodeBlock:
		node = m.mapCodeBlock(gmn, string(gmn.Language(m.content)))

	case *ast.CodeBlock:
		node = m.mapCodeBlock(gmn, "")

	case *ast.ThematicBreak:
		node = &adf.Rule{}

	// Inline-level nodes.
	case *ast.Text:
		return m.mapText(gmn)

	case *ast.String:
		node = adf.NewText(string(m.unescape(gmn.Value, gmn.IsRaw())))

	case *ast.CodeSpan:
		node = m.mapCodeSpan(gmn)

	case *ast.Emphasis:
		mark := adf.Em()
		if gmn.Level == 2 {
			mark = adf.Strong()
		}
		node = m.span(mark, gmn)

	case *ast.Link:
		mark := adf.Link(
			string(m.unescape(gmn.Destination, false)),
			string(m.unescape(gmn.Title, false)),
		)
		link := m.span(mark, gmn)
		if len(link.Content) == 0 {
			link.Content = []adf.Node{adf.NewText(mark.Href())}
		}
		node = link

	case *ast.AutoLink:
		url := string(gmn.URL(m.content))
		if gmn.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
			url = "mailto:" + url
		}
		node = &adf.Span{
			Tag:     adf.TypeText,
			Marks:   []adf.Mark{adf.Link(url, "")},
			Content: []adf.Node{adf.NewText(string(gmn.Label(m.content)))},
		}

	// GFM extension nodes.
	case *east.Strikethrough:
		node = m.span(adf.Strike(), gmn)

	case *east.Table:
		node = &adf.Table{Content: m.mapChildren(gmn)}

	case *east.TableHeader:
		node = &adf.TableRow{Content: m.mapChildren(gmn)}

	case *east.TableRow:
		node = &adf.TableRow{Content: m.mapChildren(gmn)}

	case *east.TableCell:
		node = &adf.TableCell{Content: m.mapChildren(gmn)}

	default:
		node = m.unsupported(gmNode)
	}

	if node == nil {
		return nil
	}
	return []adf.Node{node}
}

// span wraps the mapped children of gmNode in a single-mark wrapper.
func (m *mapper) span(mark adf.Mark, gmNode ast.Node) *adf.Span {
	return &adf.Span{
		Tag:     adf.TypeText,
		Marks:   []adf.Mark{mark},
		Content: m.mapChildren(gmNode),
	}
}

// mapText converts a goldmark Text node. A soft line break is kept as a
// newline inside the text; a hard line break becomes a hardBreak node.
func (m *mapper) mapText(textNode *ast.Text) []adf.Node {
	value := m.unescape(textNode.Segment.Value(m.content), textNode.IsRaw())
	if textNode.SoftLineBreak() {
		value = append(value, '\n')
	}

	nodes := make([]adf.Node, 0, 2)
	if len(value) > 0 {
		nodes = append(nodes, adf.NewText(string(value)))
	}
	if textNode.HardLineBreak() {
		nodes = append(nodes, &adf.HardBreak{})
	}
	return nodes
}

// mapCodeSpan converts inline code into a true leaf carrying the code mark.
// Line endings inside the span are rendered as spaces.
func (m *mapper) mapCodeSpan(codeSpan *ast.CodeSpan) adf.Node {
	var code []byte
	for child := codeSpan.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			value := c.Segment.Value(m.content)
			if bytes.HasSuffix(value, []byte("\n")) {
				value = append(value[:len(value)-1:len(value)-1], ' ')
			}
			code = append(code, value...)
		case *ast.String:
			code = append(code, c.Value...)
		}
	}
	return &adf.Text{Text: string(code), Marks: []adf.Mark{adf.Code()}}
}

// mapCodeBlock joins the block's lines and drops the final line ending.
func (m *mapper) mapCodeBlock(block ast.Node, language string) adf.Node {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		buf.Write(line.Value(m.content))
	}
	code := strings.TrimSuffix(buf.String(), "\n")

	if language == "" && m.opts.detect != nil {
		if lang, ok := m.opts.detect([]byte(code)); ok {
			language = lang
		}
	}

	return &adf.CodeBlock{Text: code, Language: language}
}

// unsupported handles node kinds with no document equivalent. Block-level
// placeholders are wrapped in a paragraph so the document stays valid.
func (m *mapper) unsupported(gmNode ast.Node) adf.Node {
	kind := gmNode.Kind().String()
	line := m.lineOf(gmNode)

	if m.opts.strict {
		m.err = &UnsupportedNodeError{Kind: kind, Line: line}
		return nil
	}

	m.warnings = append(m.warnings, Warning{
		Kind:    kind,
		Line:    line,
		Message: "unsupported markdown node " + kind + " replaced by placeholder",
	})

	if gmNode.Type() == ast.TypeBlock {
		return adf.NewParagraph(adf.Unimplemented())
	}
	return adf.Unimplemented()
}

// unescape resolves backslash escapes and character references the way a
// renderer would when writing text.
func (m *mapper) unescape(value []byte, raw bool) []byte {
	if raw || len(value) == 0 {
		return append([]byte(nil), value...)
	}
	out := util.UnescapePunctuations(value)
	out = util.ResolveNumericReferences(out)
	out = util.ResolveEntityNames(out)
	return append([]byte(nil), out...)
}

// lineOf returns the 1-based line of the nearest block ancestor that has
// source lines, or 0 when none is found.
func (m *mapper) lineOf(gmNode ast.Node) int {
	for n := gmNode; n != nil; n = n.Parent() {
		if n.Type() != ast.TypeBlock {
			continue
		}
		lines := n.Lines()
		if lines == nil || lines.Len() == 0 {
			continue
		}
		start := lines.At(0).Start
		if start > len(m.content) {
			return 0
		}
		return bytes.Count(m.content[:start], []byte("\n")) + 1
	}
	return 0
}

// appendMerged appends n to nodes, merging it into the previous node when
// both are unmarked text leaves. Placeholders are never merged.
func appendMerged(nodes []adf.Node, n adf.Node) []adf.Node {
	if len(nodes) == 0 || !isPlainText(n) || !isPlainText(nodes[len(nodes)-1]) {
		return append(nodes, n)
	}
	prev, _ := nodes[len(nodes)-1].(*adf.Text)
	next, _ := n.(*adf.Text)
	prev.Text += next.Text
	return nodes
}

func isPlainText(n adf.Node) bool {
	t, ok := n.(*adf.Text)
	return ok && len(t.Marks) == 0 && t.Text != adf.UnimplementedText
}
