package convert_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jirascope/pkg/adf"
	"github.com/yaklabco/jirascope/pkg/convert"
	"github.com/yaklabco/jirascope/pkg/parser/goldmark"
)

func TestMarkdownRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		md   string
	}{
		{"empty", ""},
		{"paragraph", "Hello, world!\n"},
		{"strong", "**Hello, world!**\n"},
		{"em", "*Hello, world!*\n"},
		{"strike", "~~Hello, world!~~\n"},
		{"code", "`Hello, world!`\n"},
		{"link", "[text](https://example.com)\n"},
		{"link with title", "[text](https://example.com \"title\")\n"},
		{"heading 1", "# Heading\n"},
		{"heading 2", "## Heading\n"},
		{"heading 3", "### Heading\n"},
		{"heading 4", "#### Heading\n"},
		{"heading 5", "##### Heading\n"},
		{"heading 6", "###### Heading\n"},
		{"thematic break", "Hello\n\n---\n\nworld!\n"},
		{"multiline blockquote", "> Hello, world!\n> Hello, world!\n"},
		{"code block", "```rust\nHello, world!\n```\n"},
		{"ordered list", "1. Hello, world!\n2. Hello, world!\n"},
		{"bullet list", "* Hello, world!\n* Hello, world!\n"},
		{"nested list", "* Hello, world!\n  * Hello, world!\n  * Hello, world!\n* Hello, world!\n"},
		{"table", "| A | B | C |\n|---|---|---|\n| 1 | 2 | 3 |\n| 4 | 5 | 6 |\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := convert.FromMarkdown(tt.md)
			assert.Equal(t, tt.md, convert.ToMarkdown(doc))
		})
	}
}

func TestStackedMarksRenderPerLeaf(t *testing.T) {
	t.Parallel()

	doc := convert.FromMarkdown("***Hello**, ~~world!~~*")
	require.Len(t, doc.Content, 1)

	assert.Equal(t, "***Hello****, *~~*world!*~~\n", convert.ToMarkdown(doc))
}

func TestText(t *testing.T) {
	t.Parallel()

	doc := convert.Text("Hello, world!")
	assert.Equal(t, adf.NewDocument(adf.NewParagraph(adf.NewText("Hello, world!"))), doc)
	assert.Equal(t, "Hello, world!\n", convert.ToMarkdown(doc))
}

func TestFromMarkdownPlaceholder(t *testing.T) {
	t.Parallel()

	doc := convert.FromMarkdown("![diagram](d.png)")
	assert.Equal(t, adf.UnimplementedText+"\n", convert.ToMarkdown(doc))
}

func TestConverterStrict(t *testing.T) {
	t.Parallel()

	c := convert.New(convert.Options{Strict: true})

	_, err := c.FromMarkdown(context.Background(), "<b>html</b>")
	require.ErrorIs(t, err, goldmark.ErrUnsupportedNode)

	res, err := c.FromMarkdown(context.Background(), "**fine**")
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "**fine**\n", c.ToMarkdown(res.Document))
}

func TestConverterWarnings(t *testing.T) {
	t.Parallel()

	c := convert.New(convert.DefaultOptions())

	res, err := c.FromMarkdown(context.Background(), "text <b>html</b>")
	require.NoError(t, err)
	require.NotEmpty(t, res.Warnings)
	assert.Equal(t, "RawHTML", res.Warnings[0].Kind)
}

func TestConverterBlockSpacing(t *testing.T) {
	t.Parallel()

	c := convert.New(convert.Options{BlockSpacing: true})
	md := "one\n\ntwo\n"

	res, err := c.FromMarkdown(context.Background(), md)
	require.NoError(t, err)
	assert.Equal(t, md, c.ToMarkdown(res.Document))
	assert.True(t, c.Options().BlockSpacing)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	doc := convert.FromMarkdown("# Title\n\nSome **bold** text.\n")

	compact, err := convert.EncodeJSON(doc, false)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")

	indented, err := convert.EncodeJSON(doc, true)
	require.NoError(t, err)
	assert.Contains(t, string(indented), "\n  \"type\": \"doc\"")

	decoded, err := convert.DecodeJSON(indented)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)

	_, err = convert.DecodeJSON([]byte(`{"type":"doc","version":1,"content":[{"type":"heading"}]}`))
	require.ErrorIs(t, err, adf.ErrInvalidAttribute)

	empty, err := convert.EncodeJSON(nil, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"type":"doc","content":[]}`, string(empty))
}
