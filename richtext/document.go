// Package richtext models Contentful rich-text documents and renders them
// as HTML templ components.
package richtext

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Node types used by the Contentful rich-text format.
const (
	Document           = "document"
	Paragraph          = "paragraph"
	Heading1           = "heading-1"
	Heading2           = "heading-2"
	Heading3           = "heading-3"
	Heading4           = "heading-4"
	Heading5           = "heading-5"
	Heading6           = "heading-6"
	UnorderedList      = "unordered-list"
	OrderedList        = "ordered-list"
	ListItem           = "list-item"
	Quote              = "blockquote"
	HR                 = "hr"
	Table              = "table"
	TableRow           = "table-row"
	TableCell          = "table-cell"
	TableHeaderCell    = "table-header-cell"
	Hyperlink          = "hyperlink"
	EntryHyperlink     = "entry-hyperlink"
	AssetHyperlink     = "asset-hyperlink"
	EmbeddedEntryBlock = "embedded-entry-block"
	EmbeddedEntry      = "embedded-entry-inline"
	EmbeddedAssetBlock = "embedded-asset-block"
	Text               = "text"
)

// Mark types applied to text nodes.
const (
	MarkBold        = "bold"
	MarkItalic      = "italic"
	MarkUnderline   = "underline"
	MarkCode        = "code"
	MarkSuperscript = "superscript"
	MarkSubscript   = "subscript"
)

// Mark is a formatting mark on a text node.
type Mark struct {
	Type string `json:"type"`
}

// Node is one node of a rich-text document tree.
type Node struct {
	NodeType string         `json:"nodeType"`
	Value    string         `json:"value,omitempty"`
	Marks    []Mark         `json:"marks,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
	Content  []*Node        `json:"content,omitempty"`
}

// Parse converts a decoded JSON value (as found in entry fields) into a
// document tree. A nil value yields a nil document and no error.
func Parse(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *Node:
		return t, nil
	case string:
		// Plain string fields are treated as a single paragraph.
		return Doc(P(t)), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("richtext: encode: %w", err)
	}
	var n Node
	if err := json.Unmarshal(b, &n); err != nil {
		return nil, fmt.Errorf("richtext: decode: %w", err)
	}
	if n.NodeType != Document {
		return nil, fmt.Errorf("richtext: unexpected root node %q", n.NodeType)
	}
	return &n, nil
}

// Doc builds a document node from block nodes.
func Doc(blocks ...*Node) *Node {
	return &Node{NodeType: Document, Content: blocks}
}

// P builds a paragraph containing a single unformatted text run.
func P(text string) *Node {
	return &Node{NodeType: Paragraph, Content: []*Node{T(text)}}
}

// H builds a heading of the given level (1-6).
func H(level int, text string) *Node {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return &Node{NodeType: fmt.Sprintf("heading-%d", level), Content: []*Node{T(text)}}
}

// T builds a text node with optional marks.
func T(value string, marks ...string) *Node {
	n := &Node{NodeType: Text, Value: value}
	for _, m := range marks {
		n.Marks = append(n.Marks, Mark{Type: m})
	}
	return n
}

// UL builds an unordered list with one paragraph per item.
func UL(items ...string) *Node {
	list := &Node{NodeType: UnorderedList}
	for _, it := range items {
		list.Content = append(list.Content, &Node{NodeType: ListItem, Content: []*Node{P(it)}})
	}
	return list
}

// OL builds an ordered list with one paragraph per item.
func OL(items ...string) *Node {
	list := UL(items...)
	list.NodeType = OrderedList
	return list
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{NodeType: n.NodeType, Value: n.Value}
	if n.Marks != nil {
		c.Marks = append([]Mark(nil), n.Marks...)
	}
	if n.Data != nil {
		c.Data = cloneValue(n.Data).(map[string]any)
	}
	if n.Content != nil {
		c.Content = make([]*Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = child.Clone()
		}
	}
	return c
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, x := range t {
			m[k] = cloneValue(x)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, x := range t {
			s[i] = cloneValue(x)
		}
		return s
	default:
		return v
	}
}

// PlainText returns the text content of n with blocks separated by a single
// space.
func PlainText(n *Node) string {
	if n == nil {
		return ""
	}
	var parts []string
	collectText(n, &parts)
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func collectText(n *Node, parts *[]string) {
	if n.NodeType == Text {
		*parts = append(*parts, n.Value)
		return
	}
	for _, c := range n.Content {
		if c != nil {
			collectText(c, parts)
		}
	}
}

// WordCount counts whitespace-separated words in the document.
func WordCount(n *Node) int {
	return len(strings.Fields(PlainText(n)))
}

// ReadingMinutes estimates reading time at 200 words per minute, rounding up.
// Non-empty documents take at least one minute.
func ReadingMinutes(n *Node) int {
	words := WordCount(n)
	if words == 0 {
		return 0
	}
	return (words + 199) / 200
}
