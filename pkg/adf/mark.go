package adf

import "slices"

// MarkType is the wire tag of a mark.
type MarkType string

// Mark types with a Markdown rendering.
const (
	MarkStrong MarkType = "strong"
	MarkEm     MarkType = "em"
	MarkStrike MarkType = "strike"
	MarkCode   MarkType = "code"
	MarkLink   MarkType = "link"
)

// Mark is an inline style applied to a text leaf.
// The order of marks on a leaf defines Markdown delimiter nesting.
type Mark struct {
	Type  MarkType
	Attrs *MarkAttrs
}

// MarkAttrs carries link attributes. A nil Href or Title is absent from
// the wire, which differs from a present empty string. Extra holds any
// attribute the converter does not model so it survives a JSON round trip.
type MarkAttrs struct {
	Href  *string
	Title *string
	Extra map[string]any
}

// Strong returns a bold mark.
func Strong() Mark { return Mark{Type: MarkStrong} }

// Em returns an italic mark.
func Em() Mark { return Mark{Type: MarkEm} }

// Strike returns a strikethrough mark.
func Strike() Mark { return Mark{Type: MarkStrike} }

// Code returns an inline code mark.
func Code() Mark { return Mark{Type: MarkCode} }

// Link returns a link mark. An empty title is omitted.
func Link(href, title string) Mark {
	attrs := &MarkAttrs{Href: &href}
	if title != "" {
		attrs.Title = &title
	}
	return Mark{Type: MarkLink, Attrs: attrs}
}

// Href returns the link target, or "" when the mark has none.
func (m Mark) Href() string {
	if m.Attrs == nil || m.Attrs.Href == nil {
		return ""
	}
	return *m.Attrs.Href
}

// Title returns the link title, or "" when the mark has none.
func (m Mark) Title() string {
	if m.Attrs == nil || m.Attrs.Title == nil {
		return ""
	}
	return *m.Attrs.Title
}

// HasMark reports whether marks contains a mark of type t.
func HasMark(marks []Mark, t MarkType) bool {
	return slices.ContainsFunc(marks, func(m Mark) bool { return m.Type == t })
}
