package pretty_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jirascope/internal/ui/pretty"
	"github.com/yaklabco/jirascope/pkg/convert"
	"github.com/yaklabco/jirascope/pkg/parser/goldmark"
	"github.com/yaklabco/jirascope/pkg/roundtrip"
)

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	a := "1\n2\n3\n4\n5\nold\n6\n7\n8\n9\n"
	b := "1\n2\n3\n4\n5\nnew\n6\n7\n8\n9\n"
	diffs := roundtrip.LineDiff(a, b)

	assert.Equal(t, " ...\n 4\n 5\n-old\n+new\n 6\n 7\n ...\n", styles.FormatDiff(diffs, 2))
	assert.Equal(t, " 1\n 2\n 3\n 4\n 5\n-old\n+new\n 6\n 7\n 8\n 9\n", styles.FormatDiff(diffs, -1))
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	conv := convert.New(convert.DefaultOptions())

	report, err := roundtrip.Check(context.Background(), conv, "notes.md", "![x](y.png)\n\n- a\n")
	require.NoError(t, err)

	got := styles.FormatReport(report, 3)
	assert.True(t, strings.HasPrefix(got, "notes.md (changed)\n"), got)
	assert.Contains(t, got, "notes.md:1  warning")
	assert.Contains(t, got, "(Image)")
	assert.Contains(t, got, "--- markdown\n+++ rendered\n")
	assert.Contains(t, got, "+* a\n")

	same, err := roundtrip.Check(context.Background(), conv, "same.md", "plain\n")
	require.NoError(t, err)
	assert.Equal(t, "same.md (identical)\n", styles.FormatReport(same, 3))
}

func TestFormatWarning(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	w := goldmark.Warning{Kind: "HTMLBlock", Line: 4, Message: "unsupported markdown node HTMLBlock replaced by placeholder"}

	assert.Equal(t,
		"  a.md:4  warning  unsupported markdown node HTMLBlock replaced by placeholder  (HTMLBlock)\n",
		styles.FormatWarning("a.md", w))
	assert.Equal(t, "  -  warning  m  (K)\n", styles.FormatWarning("-", goldmark.Warning{Kind: "K", Message: "m"}))
}

func TestFormatCensus(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Empty(t, styles.FormatCensus(nil, 80))

	got := styles.FormatCensus(map[string]int{"text": 4, "paragraph": 2, "doc": 1}, 0)
	assert.Contains(t, got, "NODE")
	assert.Contains(t, got, "COUNT")
	assert.Less(t, strings.Index(got, "text"), strings.Index(got, "paragraph"))
	assert.Less(t, strings.Index(got, "paragraph"), strings.Index(got, "doc"))
	assert.Contains(t, got, "total")
	assert.Contains(t, got, "7")

	rows := pretty.CensusRows(map[string]int{"b": 1, "a": 1, "c": 2})
	assert.Equal(t, []pretty.CensusRow{{"c", 2}, {"a", 1}, {"b", 1}}, rows)
}
