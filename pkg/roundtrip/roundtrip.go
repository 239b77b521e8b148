// Package roundtrip checks that Markdown survives a trip through the
// document tree: parse, render, parse again and compare.
package roundtrip

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/yaklabco/jirascope/pkg/adf"
	"github.com/yaklabco/jirascope/pkg/convert"
	"github.com/yaklabco/jirascope/pkg/parser/goldmark"
)

// Report is the outcome of checking one Markdown source.
type Report struct {
	// Name identifies the source, usually a file path.
	Name string

	// Original is the input Markdown.
	Original string

	// Rendered is the Markdown produced from the parsed document.
	Rendered string

	// Document is the tree parsed from Original.
	Document *adf.Document

	// Warnings lists constructs replaced by placeholders.
	Warnings []goldmark.Warning

	// Stable reports whether parsing Rendered yields the same tree as
	// parsing Original.
	Stable bool

	// Identical reports whether Rendered equals Original byte for byte.
	Identical bool

	// Diffs holds the line diff from Original to Rendered.
	Diffs []diffmatchpatch.Diff
}

// Check runs one round trip of md through conv.
func Check(ctx context.Context, conv *convert.Converter, name, md string) (*Report, error) {
	first, err := conv.FromMarkdown(ctx, md)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	rendered := conv.ToMarkdown(first.Document)

	second, err := conv.FromMarkdown(ctx, rendered)
	if err != nil {
		return nil, fmt.Errorf("%s: reparse: %w", name, err)
	}

	return &Report{
		Name:      name,
		Original:  md,
		Rendered:  rendered,
		Document:  first.Document,
		Warnings:  first.Warnings,
		Stable:    reflect.DeepEqual(first.Document, second.Document),
		Identical: md == rendered,
		Diffs:     LineDiff(md, rendered),
	}, nil
}

// LineDiff diffs a and b line by line.
func LineDiff(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	runesA, runesB, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffMainRunes(runesA, runesB, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	return dmp.DiffCleanupSemantic(diffs)
}

// Changed reports whether diffs contain any insertion or deletion.
func Changed(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

// FormatDiff renders diffs with "-", "+" and " " line prefixes.
func FormatDiff(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffEqual:
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(prefix)
			b.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
