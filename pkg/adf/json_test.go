package adf_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jirascope/pkg/adf"
)

func TestDocumentJSONRoundTrip(t *testing.T) {
	t.Parallel()

	doc := adf.NewDocument(
		&adf.Heading{Level: 3, Content: []adf.Node{adf.NewText("Title")}},
		adf.NewParagraph(
			adf.NewText("plain "),
			&adf.Text{Text: "link", Marks: []adf.Mark{adf.Strong(), adf.Link("https://example.com", "Example")}},
			&adf.HardBreak{},
		),
		&adf.CodeBlock{Text: "x := 1", Language: "go"},
		&adf.CodeBlock{Text: "plain"},
		&adf.Rule{},
		&adf.Table{Content: []adf.Node{
			&adf.TableRow{Content: []adf.Node{
				&adf.TableCell{Header: true, Content: []adf.Node{adf.NewParagraph(adf.NewText("A"))}},
			}},
			&adf.TableRow{Content: []adf.Node{
				&adf.TableCell{Content: []adf.Node{adf.NewParagraph(adf.NewText("1"))}},
			}},
		}},
		&adf.Blockquote{Content: []adf.Node{adf.NewParagraph()}},
	)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var got adf.Document
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, doc, &got)
}

func TestDocumentJSONShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  *adf.Document
		want string
	}{
		{
			name: "empty document keeps content array",
			doc:  adf.NewDocument(),
			want: `{"version":1,"type":"doc","content":[]}`,
		},
		{
			name: "text document",
			doc:  adf.TextDocument("Hello"),
			want: `{"version":1,"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Hello"}]}]}`,
		},
		{
			name: "heading level is a string",
			doc:  adf.NewDocument(&adf.Heading{Level: 2}),
			want: `{"version":1,"type":"doc","content":[{"type":"heading","content":[],"attrs":{"level":"2"}}]}`,
		},
		{
			name: "void nodes carry no fields",
			doc:  adf.NewDocument(&adf.Rule{}),
			want: `{"version":1,"type":"doc","content":[{"type":"rule"}]}`,
		},
		{
			name: "link title omitted when empty",
			doc: adf.NewDocument(adf.NewParagraph(
				&adf.Text{Text: "x", Marks: []adf.Mark{adf.Link("u", "")}},
			)),
			want: `{"version":1,"type":"doc","content":[{"type":"paragraph","content":[` +
				`{"type":"text","text":"x","marks":[{"type":"link","attrs":{"href":"u"}}]}]}]}`,
		},
		{
			name: "code block language omitted when empty",
			doc:  adf.NewDocument(&adf.CodeBlock{Text: "x"}),
			want: `{"version":1,"type":"doc","content":[{"type":"codeBlock","text":"x"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.doc)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestDocumentUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    *adf.Document
		wantErr error
	}{
		{
			name:  "string heading level",
			input: `{"version":1,"type":"doc","content":[{"type":"heading","attrs":{"level":"4"},"content":[]}]}`,
			want:  adf.NewDocument(&adf.Heading{Level: 4, Content: []adf.Node{}}),
		},
		{
			name:    "missing heading level",
			input:   `{"version":1,"type":"doc","content":[{"type":"heading","content":[]}]}`,
			wantErr: adf.ErrInvalidAttribute,
		},
		{
			name:    "heading level out of range",
			input:   `{"version":1,"type":"doc","content":[{"type":"heading","attrs":{"level":7}}]}`,
			wantErr: adf.ErrInvalidAttribute,
		},
		{
			name:    "wrong root type",
			input:   `{"version":1,"type":"paragraph","content":[]}`,
			wantErr: adf.ErrInvalidDocument,
		},
		{
			name:    "wrong version",
			input:   `{"version":2,"type":"doc","content":[]}`,
			wantErr: adf.ErrInvalidDocument,
		},
		{
			name:    "node without type",
			input:   `{"version":1,"type":"doc","content":[{"text":"x"}]}`,
			wantErr: adf.ErrUnknownNode,
		},
		{
			name:  "missing content decodes empty",
			input: `{"version":1,"type":"doc"}`,
			want:  adf.NewDocument(),
		},
		{
			name:  "jira code block with text children",
			input: `{"version":1,"type":"doc","content":[{"type":"codeBlock","attrs":{"language":"go"},"content":[{"type":"text","text":"a\n"},{"type":"text","text":"b"}]}]}`,
			want:  adf.NewDocument(&adf.CodeBlock{Text: "a\nb", Language: "go"}),
		},
		{
			name:  "text with content is a span",
			input: `{"version":1,"type":"doc","content":[{"type":"text","marks":[{"type":"em"}],"content":[{"type":"text","text":"x"}]}]}`,
			want: adf.NewDocument(&adf.Span{
				Tag:     adf.TypeText,
				Marks:   []adf.Mark{adf.Em()},
				Content: []adf.Node{adf.NewText("x")},
			}),
		},
		{
			name:  "table header cell",
			input: `{"version":1,"type":"doc","content":[{"type":"tableHeader","content":[]}]}`,
			want:  adf.NewDocument(&adf.TableCell{Header: true, Content: []adf.Node{}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got adf.Document
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, &got)
		})
	}
}

func TestOpaqueNodesSurviveRoundTrip(t *testing.T) {
	t.Parallel()

	input := `{"version":1,"type":"doc","content":[{"type":"paragraph","content":[` +
		`{"type":"mention","attrs":{"id":"5b10ac8d82e05b22cc7d4ef5","text":"@Bob","accessLevel":""}},` +
		`{"type":"text","text":" see "},` +
		`{"type":"emoji","attrs":{"shortName":":grinning:","id":"1f600"}},` +
		`{"type":"text","text":"x","marks":[{"type":"textColor","attrs":{"color":"#ff0000"}}]}` +
		`]},{"type":"panel","attrs":{"panelType":"info","order":12345678901},"content":[` +
		`{"type":"paragraph","content":[{"type":"text","text":"note"}]}]}]}`

	var doc adf.Document
	require.NoError(t, json.Unmarshal([]byte(input), &doc))

	require.Len(t, doc.Content, 2)
	panel, ok := doc.Content[1].(*adf.Opaque)
	require.True(t, ok)
	assert.Equal(t, adf.NodeType("panel"), panel.Type())
	require.Len(t, panel.Content, 1)

	para, ok := doc.Content[0].(*adf.Paragraph)
	require.True(t, ok)
	colored, ok := para.Content[3].(*adf.Text)
	require.True(t, ok)
	require.Len(t, colored.Marks, 1)
	assert.Equal(t, adf.MarkType("textColor"), colored.Marks[0].Type)
	assert.Equal(t, "#ff0000", colored.Marks[0].Attrs.Extra["color"])

	out, err := json.Marshal(&doc)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestAttributesSurviveRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty link href",
			input: `{"type":"text","text":"x","marks":[{"type":"link","attrs":{"href":""}}]}`,
		},
		{
			name:  "empty link title",
			input: `{"type":"text","text":"x","marks":[{"type":"link","attrs":{"href":"u","title":""}}]}`,
		},
		{
			name:  "link without href",
			input: `{"type":"text","text":"x","marks":[{"type":"link","attrs":{"title":"t"}}]}`,
		},
		{
			name: "ordered list order",
			input: `{"type":"orderedList","attrs":{"order":3},"content":[` +
				`{"type":"listItem","content":[{"type":"paragraph","content":[]}]}]}`,
		},
		{
			name: "table cell span",
			input: `{"type":"table","attrs":{"layout":"default"},"content":[{"type":"tableRow","content":[` +
				`{"type":"tableHeader","attrs":{"colspan":2},"content":[]},` +
				`{"type":"tableCell","attrs":{"background":"#fff"},"content":[]}]}]}`,
		},
		{
			name:  "heading extra attrs",
			input: `{"type":"heading","attrs":{"level":"3","localId":"h1"},"content":[]}`,
		},
		{
			name:  "code block extra attrs",
			input: `{"type":"codeBlock","text":"x","attrs":{"language":"go","uniqueId":"c1"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node, err := adf.DecodeNode([]byte(tt.input))
			require.NoError(t, err)

			out, err := adf.EncodeNode(node)
			require.NoError(t, err)
			assert.JSONEq(t, tt.input, string(out))
		})
	}
}

func TestLinkAttributePresence(t *testing.T) {
	t.Parallel()

	node, err := adf.DecodeNode([]byte(`{"type":"text","text":"x","marks":[{"type":"link","attrs":{"href":""}}]}`))
	require.NoError(t, err)

	text, ok := node.(*adf.Text)
	require.True(t, ok)
	require.Len(t, text.Marks, 1)

	attrs := text.Marks[0].Attrs
	require.NotNil(t, attrs.Href)
	assert.Empty(t, *attrs.Href)
	assert.Nil(t, attrs.Title)
	assert.Empty(t, text.Marks[0].Title())
}

func TestContainerAttrs(t *testing.T) {
	t.Parallel()

	node, err := adf.DecodeNode([]byte(`{"type":"orderedList","attrs":{"order":3},"content":[]}`))
	require.NoError(t, err)

	list, ok := node.(*adf.OrderedList)
	require.True(t, ok)
	assert.Equal(t, json.Number("3"), list.Attrs["order"])

	plain, err := adf.DecodeNode([]byte(`{"type":"paragraph","content":[]}`))
	require.NoError(t, err)
	assert.Nil(t, plain.(*adf.Paragraph).Attrs)

	heading, err := adf.DecodeNode([]byte(`{"type":"heading","attrs":{"level":2},"content":[]}`))
	require.NoError(t, err)
	assert.Nil(t, heading.(*adf.Heading).Attrs)
}

func TestEncodeDecodeNode(t *testing.T) {
	t.Parallel()

	node := &adf.BulletList{Content: []adf.Node{
		&adf.ListItem{Content: []adf.Node{adf.NewParagraph(adf.NewText("a"))}},
	}}

	data, err := adf.EncodeNode(node)
	require.NoError(t, err)

	got, err := adf.DecodeNode(data)
	require.NoError(t, err)
	assert.Equal(t, node, got)

	_, err = adf.EncodeNode(nil)
	require.ErrorIs(t, err, adf.ErrUnknownNode)
}
