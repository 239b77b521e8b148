// Package goldmark parses GFM Markdown into an adf.Document using the
// goldmark library.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/jirascope/pkg/adf"
)

// Parser converts Markdown into document trees.
// A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	opts options
	md   goldmark.Markdown
}

// Result is the outcome of a successful parse.
type Result struct {
	// Document is the flattened document tree.
	Document *adf.Document

	// Warnings lists constructs that were replaced by placeholders.
	Warnings []Warning
}

// New creates a parser configured with opts.
func New(opts ...Option) *Parser {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{
		opts: o,
		md:   newGoldmarkInstance(),
	}
}

// Parse converts Markdown source into a document.
//
// The method:
//  1. Checks for context cancellation.
//  2. Parses src with goldmark (GFM tables, strikethrough and autolinks).
//  3. Maps every goldmark node onto a document node, using inline wrapper
//     spans for emphasis, strikethrough and links.
//  4. Flattens every top-level node so marks sit on the leaves.
//
// In strict mode an unsupported construct aborts the parse with an
// *UnsupportedNodeError. Otherwise it becomes a placeholder leaf and a
// Warning.
func (p *Parser) Parse(ctx context.Context, src []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	reader := text.NewReader(src)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	m := newMapper(src, p.opts)
	nodes := m.mapChildren(gmDoc)
	if m.err != nil {
		return nil, m.err
	}

	doc := adf.NewDocument()
	for _, n := range nodes {
		doc.Content = append(doc.Content, adf.Flatten(n)...)
	}

	return &Result{Document: doc, Warnings: m.warnings}, nil
}

// ParseString is Parse for string input.
func (p *Parser) ParseString(ctx context.Context, src string) (*Result, error) {
	return p.Parse(ctx, []byte(src))
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
// Task lists are left out so "[ ]" stays literal text.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
		),
	)
}
