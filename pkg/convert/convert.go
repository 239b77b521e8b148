// Package convert is the entry point for converting between Markdown and
// Atlassian Document Format trees.
//
// The package-level functions use default settings: unsupported Markdown
// becomes a visible placeholder and rendering never fails. A Converter
// exposes the stricter and optional behaviors.
package convert

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/jirascope/pkg/adf"
	"github.com/yaklabco/jirascope/pkg/markdown"
	"github.com/yaklabco/jirascope/pkg/parser/goldmark"
)

// Options configures a Converter.
type Options struct {
	// Strict fails parses that meet a Markdown construct with no document
	// equivalent instead of inserting a placeholder.
	Strict bool

	// DetectLanguages guesses the language of code blocks that lack one.
	DetectLanguages bool

	// BlockSpacing separates rendered sibling blocks with blank lines.
	BlockSpacing bool
}

// DefaultOptions returns the options used by the package-level functions.
func DefaultOptions() Options {
	return Options{}
}

// Converter converts in both directions. It is safe for concurrent use.
type Converter struct {
	opts     Options
	parser   *goldmark.Parser
	renderer *markdown.Renderer
}

// Result is the outcome of a Markdown parse.
type Result struct {
	Document *adf.Document
	Warnings []goldmark.Warning
}

// New creates a Converter.
func New(opts Options) *Converter {
	return &Converter{
		opts: opts,
		parser: goldmark.New(
			goldmark.WithStrict(opts.Strict),
			goldmark.WithLanguageDetection(opts.DetectLanguages),
		),
		renderer: markdown.New(markdown.WithBlockSpacing(opts.BlockSpacing)),
	}
}

// Options returns the converter's configuration.
func (c *Converter) Options() Options {
	return c.opts
}

// FromMarkdown parses Markdown into a document.
func (c *Converter) FromMarkdown(ctx context.Context, md string) (*Result, error) {
	res, err := c.parser.ParseString(ctx, md)
	if err != nil {
		return nil, fmt.Errorf("from markdown: %w", err)
	}
	return &Result{Document: res.Document, Warnings: res.Warnings}, nil
}

// ToMarkdown renders doc as Markdown.
func (c *Converter) ToMarkdown(doc *adf.Document) string {
	return c.renderer.Render(doc)
}

// ToMarkdown renders doc as Markdown.
func ToMarkdown(doc *adf.Document) string {
	return markdown.Render(doc)
}

// FromMarkdown parses Markdown into a document. Constructs with no document
// equivalent become placeholder leaves reading adf.UnimplementedText.
func FromMarkdown(md string) *adf.Document {
	res, err := goldmark.New().ParseString(context.Background(), md)
	if err != nil {
		// Unreachable: a non-strict parse with a live context cannot fail.
		return adf.NewDocument(adf.NewParagraph(adf.Unimplemented()))
	}
	return res.Document
}

// Text returns a single-paragraph document holding text unformatted.
func Text(text string) *adf.Document {
	return adf.TextDocument(text)
}

// DecodeJSON decodes an Atlassian Document Format document.
func DecodeJSON(data []byte) (*adf.Document, error) {
	var doc adf.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode adf: %w", err)
	}
	return &doc, nil
}

// EncodeJSON encodes doc as Atlassian Document Format, indented with two
// spaces when indent is set.
func EncodeJSON(doc *adf.Document, indent bool) ([]byte, error) {
	if doc == nil {
		doc = adf.NewDocument()
	}

	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("encode adf: %w", err)
	}
	return data, nil
}
