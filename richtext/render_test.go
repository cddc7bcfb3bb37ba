package richtext

import (
	"bytes"
	"strings"
	"testing"
)

func render(r Renderer, doc *Node) string {
	var buf bytes.Buffer
	r.Render(&buf, doc)
	return buf.String()
}

func TestRenderHeadings(t *testing.T) {
	tests := []struct {
		level    int
		expected string
	}{
		{1, "<h1>Τίτλος</h1>"},
		{2, "<h2>Τίτλος</h2>"},
		{3, "<h3>Τίτλος</h3>"},
		{9, "<h6>Τίτλος</h6>"},
	}
	for _, tt := range tests {
		got := render(Renderer{}, Doc(H(tt.level, "Τίτλος")))
		if got != tt.expected {
			t.Errorf("H(%d) = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestRenderMarks(t *testing.T) {
	tests := []struct {
		node     *Node
		expected string
	}{
		{T("bold", MarkBold), "<strong>bold</strong>"},
		{T("italic", MarkItalic), "<em>italic</em>"},
		{T("code", MarkCode), "<code>code</code>"},
		{T("both", MarkBold, MarkItalic), "<em><strong>both</strong></em>"},
		{T("<script>"), "&lt;script&gt;"},
		{T("a\nb"), "a<br/>b"},
	}
	for _, tt := range tests {
		got := render(Renderer{}, Doc(&Node{NodeType: Paragraph, Content: []*Node{tt.node}}))
		want := "<p>" + tt.expected + "</p>"
		if got != want {
			t.Errorf("render(%q) = %q, want %q", tt.node.Value, got, want)
		}
	}
}

func TestRenderLists(t *testing.T) {
	got := render(Renderer{}, Doc(UL("ένα", "δύο")))
	expected := "<ul><li><p>ένα</p></li><li><p>δύο</p></li></ul>"
	if got != expected {
		t.Errorf("UL = %q, want %q", got, expected)
	}
	got = render(Renderer{}, Doc(OL("first")))
	if got != "<ol><li><p>first</p></li></ol>" {
		t.Errorf("OL = %q", got)
	}
}

func TestRenderHyperlink(t *testing.T) {
	link := func(uri string) *Node {
		return Doc(&Node{
			NodeType: Paragraph,
			Content: []*Node{{
				NodeType: Hyperlink,
				Data:     map[string]any{"uri": uri},
				Content:  []*Node{T("link")},
			}},
		})
	}
	tests := []struct {
		uri      string
		expected string
	}{
		{"https://example.com/a_b", `<p><a href="https://example.com/a_b" class="underline decoration-2 underline-offset-4" target="_blank" rel="noopener noreferrer">link</a></p>`},
		{"/contact/", `<p><a href="/contact/" class="underline decoration-2 underline-offset-4">link</a></p>`},
		{"javascript:alert(1)", `<p>link</p>`},
	}
	for _, tt := range tests {
		got := render(Renderer{}, link(tt.uri))
		if got != tt.expected {
			t.Errorf("hyperlink(%q)\n  got:  %q\n  want: %q", tt.uri, got, tt.expected)
		}
	}
}

func TestRenderEntryHyperlink(t *testing.T) {
	doc := Doc(&Node{
		NodeType: Paragraph,
		Content: []*Node{{
			NodeType: EntryHyperlink,
			Data: map[string]any{"target": map[string]any{
				"fields": map[string]any{"slug": "seo-gia-iatrous"},
			}},
			Content: []*Node{T("άρθρο")},
		}},
	})

	got := render(Renderer{}, doc)
	if got != "<p>άρθρο</p>" {
		t.Errorf("without EntryHref = %q", got)
	}

	r := Renderer{EntryHref: func(f map[string]any) string {
		slug, _ := f["slug"].(string)
		return "/blog/" + slug + "/"
	}}
	got = render(r, doc)
	if !strings.Contains(got, `href="/blog/seo-gia-iatrous/"`) {
		t.Errorf("with EntryHref = %q", got)
	}
}

func TestRenderEmbeddedAsset(t *testing.T) {
	asset := func(contentType string) *Node {
		return &Node{
			NodeType: EmbeddedAssetBlock,
			Data: map[string]any{"target": map[string]any{
				"fields": map[string]any{
					"title": "Ιατρείο",
					"file": map[string]any{
						"url":         "//images.ctfassets.net/x/clinic.jpg",
						"contentType": contentType,
						"details": map[string]any{
							"image": map[string]any{"width": float64(1200), "height": float64(800)},
						},
					},
				},
			}},
		}
	}
	r := Renderer{AssetURL: func(s string) string { return "https:" + s }}

	got := render(r, Doc(asset("image/jpeg"), asset("image/png")))
	if !strings.Contains(got, `src="https://images.ctfassets.net/x/clinic.jpg"`) {
		t.Errorf("missing rewritten src: %q", got)
	}
	if !strings.Contains(got, `width="1200" height="800"`) {
		t.Errorf("missing dimensions: %q", got)
	}
	if strings.Count(got, `fetchpriority="high"`) != 1 || strings.Count(got, `loading="lazy"`) != 1 {
		t.Errorf("only the first image should be high priority: %q", got)
	}

	if got := render(r, Doc(asset("application/pdf"))); got != "" {
		t.Errorf("non-image asset rendered: %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	cell := func(typ, text string) *Node {
		return &Node{NodeType: typ, Content: []*Node{P(text)}}
	}
	doc := Doc(&Node{NodeType: Table, Content: []*Node{
		{NodeType: TableRow, Content: []*Node{cell(TableHeaderCell, "A")}},
		{NodeType: TableRow, Content: []*Node{cell(TableCell, "1")}},
	}})
	expected := "<table><tbody><tr><th><p>A</p></th></tr><tr><td><p>1</p></td></tr></tbody></table>"
	if got := render(Renderer{}, doc); got != expected {
		t.Errorf("table = %q, want %q", got, expected)
	}
}

func TestRenderNilDocument(t *testing.T) {
	if got := render(Renderer{}, nil); got != "" {
		t.Errorf("nil document = %q", got)
	}
}

func TestParse(t *testing.T) {
	raw := map[string]any{
		"nodeType": "document",
		"data":     map[string]any{},
		"content": []any{
			map[string]any{
				"nodeType": "paragraph",
				"content": []any{
					map[string]any{"nodeType": "text", "value": "Γεια", "marks": []any{map[string]any{"type": "bold"}}},
				},
			},
		},
	}
	doc, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := render(Renderer{}, doc); got != "<p><strong>Γεια</strong></p>" {
		t.Errorf("parsed render = %q", got)
	}

	if doc, err := Parse(nil); err != nil || doc != nil {
		t.Errorf("Parse(nil) = %v, %v", doc, err)
	}
	if _, err := Parse(map[string]any{"nodeType": "paragraph"}); err == nil {
		t.Error("expected error for non-document root")
	}
	doc, err = Parse("απλό κείμενο")
	if err != nil || PlainText(doc) != "απλό κείμενο" {
		t.Errorf("Parse(string) = %v, %v", doc, err)
	}
}

func TestPlainTextAndReadingTime(t *testing.T) {
	doc := Doc(H(2, "Τίτλος"), P("ένα δύο"), UL("τρία"))
	if got := PlainText(doc); got != "Τίτλος ένα δύο τρία" {
		t.Errorf("PlainText = %q", got)
	}
	if got := WordCount(doc); got != 4 {
		t.Errorf("WordCount = %d, want 4", got)
	}
	if got := ReadingMinutes(doc); got != 1 {
		t.Errorf("ReadingMinutes = %d, want 1", got)
	}
	if got := ReadingMinutes(Doc()); got != 0 {
		t.Errorf("ReadingMinutes(empty) = %d, want 0", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"mailto:info@example.com", "mailto:info@example.com"},
		{"/blog/", "/blog/"},
		{"javascript:alert(1)", ""},
		{"example.com", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Doc(P("αρχικό"), &Node{
		NodeType: EmbeddedAssetBlock,
		Data:     map[string]any{"target": map[string]any{"id": "a1"}},
	})
	c := orig.Clone()
	c.Content[0].Content[0].Value = "changed"
	c.Content[1].Data["target"].(map[string]any)["id"] = "changed"

	if got := orig.Content[0].Content[0].Value; got != "αρχικό" {
		t.Errorf("text = %q, want %q", got, "αρχικό")
	}
	if got := orig.Content[1].Data["target"].(map[string]any)["id"]; got != "a1" {
		t.Errorf("target id = %v, want a1", got)
	}
	if (*Node)(nil).Clone() != nil {
		t.Errorf("Clone of nil should be nil")
	}
}
