package adf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

type wireDoc struct {
	Version int        `json:"version"`
	Type    NodeType   `json:"type"`
	Content []wireNode `json:"content"`
}

type wireNode struct {
	Type    NodeType       `json:"type"`
	Content *[]wireNode    `json:"content,omitempty"`
	Text    *string        `json:"text,omitempty"`
	Marks   []wireMark     `json:"marks,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
}

type wireMark struct {
	Type  MarkType       `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// MarshalJSON encodes the document in Atlassian Document Format.
func (d *Document) MarshalJSON() ([]byte, error) {
	nodes, err := encodeNodes(d.Content)
	if err != nil {
		return nil, err
	}

	version, tag := d.Version, d.Type
	if version == 0 {
		version = Version
	}
	if tag == "" {
		tag = TypeDoc
	}

	return json.Marshal(wireDoc{Version: version, Type: tag, Content: nodes})
}

// UnmarshalJSON decodes an Atlassian Document Format document.
func (d *Document) UnmarshalJSON(data []byte) error {
	var wire wireDoc
	if err := decodeStrict(data, &wire); err != nil {
		return err
	}

	if wire.Type != TypeDoc {
		return fmt.Errorf("%w: type %q", ErrInvalidDocument, wire.Type)
	}
	if wire.Version != Version {
		return fmt.Errorf("%w: version %d", ErrInvalidDocument, wire.Version)
	}

	nodes, err := decodeNodes(wire.Content, "content")
	if err != nil {
		return err
	}

	d.Version = wire.Version
	d.Type = wire.Type
	d.Content = nodes
	if d.Content == nil {
		d.Content = []Node{}
	}
	return nil
}

// EncodeNode encodes a single node.
func EncodeNode(n Node) ([]byte, error) {
	wire, err := encodeNode(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// DecodeNode decodes a single node.
func DecodeNode(data []byte) (Node, error) {
	var wire wireNode
	if err := decodeStrict(data, &wire); err != nil {
		return nil, err
	}
	return decodeNode(wire, "node")
}

// decodeStrict decodes with json.Number so integer attributes of opaque
// nodes survive a round trip without float conversion.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

func encodeNodes(nodes []Node) ([]wireNode, error) {
	out := make([]wireNode, 0, len(nodes))
	for i, n := range nodes {
		wire, err := encodeNode(n)
		if err != nil {
			return nil, fmt.Errorf("content[%d]: %w", i, err)
		}
		out = append(out, wire)
	}
	return out, nil
}

func encodeContent(nodes []Node) (*[]wireNode, error) {
	out, err := encodeNodes(nodes)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

//nolint:cyclop,funlen // one case per node kind
func encodeNode(n Node) (wireNode, error) {
	wire := wireNode{}
	if n == nil {
		return wire, fmt.Errorf("%w: nil node", ErrUnknownNode)
	}
	wire.Type = n.Type()

	var err error
	switch node := n.(type) {
	case *Text:
		text := node.Text
		wire.Text = &text
		wire.Marks = encodeMarks(node.Marks)

	case *CodeBlock:
		text := node.Text
		wire.Text = &text
		wire.Attrs = withAttr(node.Attrs, "language", node.Language, node.Language != "")

	case *Heading:
		wire.Attrs = withAttr(node.Attrs, "level", strconv.Itoa(node.Level), true)
		wire.Content, err = encodeContent(node.Content)

	case *Span:
		wire.Marks = encodeMarks(node.Marks)
		wire.Content, err = encodeContent(node.Content)

	case *Opaque:
		if node.Text != nil {
			text := *node.Text
			wire.Text = &text
		}
		wire.Marks = encodeMarks(node.Marks)
		if len(node.Attrs) > 0 {
			wire.Attrs = node.Attrs
		}
		if node.Content != nil {
			wire.Content, err = encodeContent(node.Content)
		}

	case *Rule, *HardBreak:

	case Parent:
		wire.Attrs = withAttr(blockAttrs(node), "", nil, false)
		wire.Content, err = encodeContent(node.Children())

	default:
		return wire, fmt.Errorf("%w: %T", ErrUnknownNode, n)
	}

	return wire, err
}

// withAttr copies extra and sets key to value when set is true. It
// returns nil when the result would be empty so attrs stays off the wire.
func withAttr(extra map[string]any, key string, value any, set bool) map[string]any {
	if len(extra) == 0 && !set {
		return nil
	}
	out := make(map[string]any, len(extra)+1)
	for k, v := range extra {
		out[k] = v
	}
	if set {
		out[key] = value
	}
	return out
}

// withoutAttr returns attrs minus key, or nil when nothing remains.
func withoutAttr(attrs map[string]any, key string) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if k != key {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func blockAttrs(n Node) map[string]any {
	switch node := n.(type) {
	case *Paragraph:
		return node.Attrs
	case *Blockquote:
		return node.Attrs
	case *OrderedList:
		return node.Attrs
	case *BulletList:
		return node.Attrs
	case *ListItem:
		return node.Attrs
	case *Table:
		return node.Attrs
	case *TableRow:
		return node.Attrs
	case *TableCell:
		return node.Attrs
	}
	return nil
}

func encodeMarks(marks []Mark) []wireMark {
	if len(marks) == 0 {
		return nil
	}

	out := make([]wireMark, 0, len(marks))
	for _, m := range marks {
		wm := wireMark{Type: m.Type}
		if m.Attrs != nil {
			attrs := make(map[string]any, len(m.Attrs.Extra)+2)
			for k, v := range m.Attrs.Extra {
				attrs[k] = v
			}
			if m.Attrs.Href != nil {
				attrs["href"] = *m.Attrs.Href
			}
			if m.Attrs.Title != nil {
				attrs["title"] = *m.Attrs.Title
			}
			if len(attrs) > 0 {
				wm.Attrs = attrs
			}
		}
		out = append(out, wm)
	}
	return out
}

func decodeNodes(wires []wireNode, path string) ([]Node, error) {
	if wires == nil {
		return nil, nil
	}

	out := make([]Node, 0, len(wires))
	for i, wire := range wires {
		n, err := decodeNode(wire, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// decodeContent decodes a container's children. A missing content field
// yields an empty slice because containers always own a sequence.
func decodeContent(wire wireNode, path string) ([]Node, error) {
	if wire.Content == nil {
		return []Node{}, nil
	}
	nodes, err := decodeNodes(*wire.Content, path+".content")
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = []Node{}
	}
	return nodes, nil
}

//nolint:cyclop,funlen,gocognit // one case per node kind
func decodeNode(wire wireNode, path string) (Node, error) {
	marks, err := decodeMarks(wire.Marks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	switch wire.Type {
	case TypeText:
		if wire.Content != nil {
			content, err := decodeContent(wire, path)
			if err != nil {
				return nil, err
			}
			return &Span{Tag: TypeText, Marks: marks, Content: content}, nil
		}
		text := ""
		if wire.Text != nil {
			text = *wire.Text
		}
		return &Text{Text: text, Marks: marks}, nil

	case TypeCodeBlock:
		return decodeCodeBlock(wire, path)

	case TypeHeading:
		level, err := decodeLevel(wire.Attrs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		content, err := decodeContent(wire, path)
		if err != nil {
			return nil, err
		}
		return &Heading{Level: level, Content: content, Attrs: withoutAttr(wire.Attrs, "level")}, nil

	case TypeRule:
		return &Rule{}, nil

	case TypeHardBreak:
		return &HardBreak{}, nil

	case TypeParagraph, TypeBlockquote, TypeOrderedList, TypeBulletList, TypeListItem,
		TypeTable, TypeTableRow, TypeTableCell, TypeTableHeader:
		content, err := decodeContent(wire, path)
		if err != nil {
			return nil, err
		}
		return newContainer(wire.Type, content, withoutAttr(wire.Attrs, "")), nil

	case "":
		return nil, fmt.Errorf("%s: %w: missing type", path, ErrUnknownNode)

	default:
		op := &Opaque{Tag: wire.Type, Marks: marks, Attrs: wire.Attrs}
		if wire.Text != nil {
			text := *wire.Text
			op.Text = &text
		}
		if wire.Content != nil {
			op.Content, err = decodeContent(wire, path)
			if err != nil {
				return nil, err
			}
		}
		return op, nil
	}
}

func newContainer(tag NodeType, content []Node, attrs map[string]any) Node {
	switch tag {
	case TypeParagraph:
		return &Paragraph{Content: content, Attrs: attrs}
	case TypeBlockquote:
		return &Blockquote{Content: content, Attrs: attrs}
	case TypeOrderedList:
		return &OrderedList{Content: content, Attrs: attrs}
	case TypeBulletList:
		return &BulletList{Content: content, Attrs: attrs}
	case TypeListItem:
		return &ListItem{Content: content, Attrs: attrs}
	case TypeTable:
		return &Table{Content: content, Attrs: attrs}
	case TypeTableRow:
		return &TableRow{Content: content, Attrs: attrs}
	case TypeTableHeader:
		return &TableCell{Header: true, Content: content, Attrs: attrs}
	default:
		return &TableCell{Content: content, Attrs: attrs}
	}
}

// decodeCodeBlock accepts both the text-field form and the form Jira
// emits, where the code is held by child text nodes.
func decodeCodeBlock(wire wireNode, path string) (Node, error) {
	block := &CodeBlock{Attrs: withoutAttr(wire.Attrs, "language")}
	if lang, ok := wire.Attrs["language"]; ok && lang != nil {
		s, ok := lang.(string)
		if !ok {
			return nil, fmt.Errorf("%s: %w: language %v", path, ErrInvalidAttribute, lang)
		}
		block.Language = s
	}

	if wire.Text != nil {
		block.Text = *wire.Text
		return block, nil
	}

	if wire.Content != nil {
		var buf bytes.Buffer
		for _, child := range *wire.Content {
			if child.Text != nil {
				buf.WriteString(*child.Text)
			}
		}
		block.Text = buf.String()
	}
	return block, nil
}

func decodeLevel(attrs map[string]any) (int, error) {
	raw, ok := attrs["level"]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w: heading level missing", ErrInvalidAttribute)
	}

	var (
		level int64
		err   error
	)
	switch v := raw.(type) {
	case json.Number:
		level, err = v.Int64()
	case string:
		level, err = strconv.ParseInt(v, 10, 0)
	case int:
		level = int64(v)
	case float64:
		level = int64(v)
		if float64(level) != v {
			err = errors.New("not an integer")
		}
	default:
		err = fmt.Errorf("unexpected %T", raw)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: heading level %v: %w", ErrInvalidAttribute, raw, err)
	}
	if level < 1 || level > 6 {
		return 0, fmt.Errorf("%w: heading level %d out of range", ErrInvalidAttribute, level)
	}
	return int(level), nil
}

func decodeMarks(wires []wireMark) ([]Mark, error) {
	if wires == nil {
		return nil, nil
	}

	out := make([]Mark, 0, len(wires))
	for _, wm := range wires {
		if wm.Type == "" {
			return nil, fmt.Errorf("%w: mark without type", ErrInvalidAttribute)
		}
		m := Mark{Type: wm.Type}
		if wm.Attrs != nil {
			attrs := &MarkAttrs{}
			for k, v := range wm.Attrs {
				switch k {
				case "href", "title":
					s, ok := v.(string)
					if !ok {
						return nil, fmt.Errorf("%w: %s mark %s %v", ErrInvalidAttribute, wm.Type, k, v)
					}
					if k == "href" {
						attrs.Href = &s
					} else {
						attrs.Title = &s
					}
				default:
					if attrs.Extra == nil {
						attrs.Extra = make(map[string]any)
					}
					attrs.Extra[k] = v
				}
			}
			m.Attrs = attrs
		}
		out = append(out, m)
	}
	return out, nil
}
