// Package markdown renders adf documents as Markdown text.
package markdown

import (
	"strconv"
	"strings"

	"github.com/yaklabco/jirascope/pkg/adf"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithBlockSpacing separates sibling blocks of the document and of
// blockquotes with a blank line, so consecutive paragraphs stay distinct
// when the output is parsed again. Rules then render as a bare "---" line.
func WithBlockSpacing(enabled bool) Option {
	return func(r *Renderer) {
		r.blockSpacing = enabled
	}
}

// Renderer converts document trees to Markdown.
// A Renderer is immutable and safe for concurrent use.
type Renderer struct {
	blockSpacing bool
}

// New creates a renderer configured with opts.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render converts doc to Markdown with the default renderer.
func Render(doc *adf.Document) string {
	return New().Render(doc)
}

// Render converts doc to Markdown. It never fails: nodes it has no rule for
// render their text and children.
func (r *Renderer) Render(doc *adf.Document) string {
	if doc == nil {
		return ""
	}
	var w writer
	w.Renderer = r
	w.blocks(doc.Content)
	return w.String()
}

// RenderNode converts a single node to Markdown.
func (r *Renderer) RenderNode(n adf.Node) string {
	var w writer
	w.Renderer = r
	w.node(n)
	return w.String()
}

// writer accumulates the output of one render call.
type writer struct {
	*Renderer
	strings.Builder
}

func (w *writer) sub(n adf.Node) string {
	inner := writer{Renderer: w.Renderer}
	inner.node(n)
	return inner.String()
}

// blocks renders a sequence of sibling blocks.
func (w *writer) blocks(nodes []adf.Node) {
	for i, n := range nodes {
		if w.blockSpacing && i > 0 && w.Len() > 0 && !strings.HasSuffix(w.String(), "\n\n") {
			w.WriteString("\n")
		}
		w.node(n)
	}
}

//nolint:cyclop // one case per node kind
func (w *writer) node(n adf.Node) {
	switch node := n.(type) {
	case nil:
	case *adf.CodeBlock:
		w.codeBlock(node)
	case *adf.Blockquote:
		w.blockquote(node)
	case *adf.Heading:
		w.heading(node)
	case *adf.OrderedList:
		for i, child := range node.Content {
			w.listItem(strconv.Itoa(i+1)+". ", child)
		}
	case *adf.BulletList:
		for _, child := range node.Content {
			w.listItem("* ", child)
		}
	case *adf.Table:
		w.table(node)
	case *adf.TableRow:
		w.tableRow(node)
	case *adf.Rule:
		if w.blockSpacing {
			w.WriteString("---\n")
		} else {
			w.WriteString("\n---\n\n")
		}
	case *adf.HardBreak:
		w.WriteString("\n")
	default:
		w.standard(n)
	}
}

// standard is the fallback rule: open the node's marks in order, write its
// text and children, close the marks in reverse and end the line unless the
// node is inline.
func (w *writer) standard(n adf.Node) {
	var marks []adf.Mark
	if marked, ok := n.(adf.Marked); ok {
		marks = marked.MarkList()
	}

	for _, m := range marks {
		w.WriteString(openDelimiter(m))
	}

	switch leaf := n.(type) {
	case *adf.Text:
		w.WriteString(leaf.Text)
	case *adf.Opaque:
		if leaf.Text != nil {
			w.WriteString(*leaf.Text)
		}
	}

	if parent, ok := n.(adf.Parent); ok {
		for _, child := range parent.Children() {
			w.node(child)
		}
	}

	for i := len(marks) - 1; i >= 0; i-- {
		w.WriteString(closeDelimiter(marks[i]))
	}

	if !n.Type().IsInline() {
		w.WriteString("\n")
	}
}

func (w *writer) codeBlock(block *adf.CodeBlock) {
	fence := codeFence(block.Text)
	w.WriteString(fence)
	w.WriteString(block.Language)
	w.WriteString("\n")
	w.WriteString(block.Text)
	w.WriteString("\n")
	w.WriteString(fence)
	w.WriteString("\n")
}

// codeFence returns a backtick fence longer than any backtick run in code.
func codeFence(code string) string {
	longest, run := 0, 0
	for i := range len(code) {
		if code[i] == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return strings.Repeat("`", max(3, longest+1))
}

func (w *writer) blockquote(quote *adf.Blockquote) {
	inner := writer{Renderer: w.Renderer}
	inner.blocks(quote.Content)
	w.WriteString(prefixLines(inner.String(), "> ", ">"))
}

func (w *writer) heading(h *adf.Heading) {
	level := min(max(h.Level, 1), 6)
	w.WriteString(strings.Repeat("#", level))
	w.WriteString(" ")
	for _, child := range h.Content {
		w.node(child)
	}
	w.WriteString("\n")
}

// listItem writes one list entry. The first line carries the marker and
// continuation lines are indented by the marker's width so nested blocks
// stay inside the item.
func (w *writer) listItem(marker string, item adf.Node) {
	body := w.sub(item)
	if body == "" {
		w.WriteString(strings.TrimRight(marker, " "))
		w.WriteString("\n")
		return
	}

	indent := strings.Repeat(" ", len(marker))
	lines := splitLines(body)
	for i, line := range lines {
		switch {
		case i == 0:
			w.WriteString(marker)
		case line != "":
			w.WriteString(indent)
		}
		w.WriteString(line)
		w.WriteString("\n")
	}
}

// prefixLines prefixes every line of s. Empty lines get emptyPrefix.
func prefixLines(s, prefix, emptyPrefix string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range splitLines(s) {
		if line == "" {
			b.WriteString(emptyPrefix)
		} else {
			b.WriteString(prefix)
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// splitLines splits s into lines, ignoring one trailing line ending.
func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
