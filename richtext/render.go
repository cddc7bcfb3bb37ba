package richtext

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Renderer turns documents into HTML. Embedded assets and entries are
// resolved through the optional hooks; without them they are skipped or
// rendered as plain text.
type Renderer struct {
	// AssetURL rewrites an asset file URL before it is used as an img src.
	AssetURL func(string) string
	// EntryHref returns the link target for a linked entry's fields, or "".
	EntryHref func(fields map[string]any) string
}

// Component returns a templ.Component that renders doc as HTML.
func (r Renderer) Component(doc *Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		r.Render(&buf, doc)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Render writes the HTML representation of doc to buf.
func (r Renderer) Render(buf *bytes.Buffer, doc *Node) {
	if doc == nil {
		return
	}
	imageCount := 0
	for _, n := range doc.Content {
		r.renderNode(buf, n, &imageCount)
	}
}

func (r Renderer) renderChildren(buf *bytes.Buffer, n *Node, imageCount *int) {
	for _, c := range n.Content {
		r.renderNode(buf, c, imageCount)
	}
}

func (r Renderer) renderNode(buf *bytes.Buffer, n *Node, imageCount *int) {
	if n == nil {
		return
	}
	switch n.NodeType {
	case Text:
		buf.WriteString(formatText(n))
	case Paragraph:
		r.wrap(buf, "p", n, imageCount)
	case Heading1, Heading2, Heading3, Heading4, Heading5, Heading6:
		r.wrap(buf, "h"+n.NodeType[len(n.NodeType)-1:], n, imageCount)
	case UnorderedList:
		r.wrap(buf, "ul", n, imageCount)
	case OrderedList:
		r.wrap(buf, "ol", n, imageCount)
	case ListItem:
		r.wrap(buf, "li", n, imageCount)
	case Quote:
		r.wrap(buf, "blockquote", n, imageCount)
	case HR:
		buf.WriteString("<hr/>")
	case Table:
		buf.WriteString("<table><tbody>")
		r.renderChildren(buf, n, imageCount)
		buf.WriteString("</tbody></table>")
	case TableRow:
		r.wrap(buf, "tr", n, imageCount)
	case TableHeaderCell:
		r.wrap(buf, "th", n, imageCount)
	case TableCell:
		r.wrap(buf, "td", n, imageCount)
	case Hyperlink:
		href := SafeURL(dataString(n.Data, "uri"))
		if href == "" {
			r.renderChildren(buf, n, imageCount)
			return
		}
		attrs := `class="underline decoration-2 underline-offset-4"`
		if isExternal(href) {
			attrs += ` target="_blank" rel="noopener noreferrer"`
		}
		buf.WriteString(`<a href="` + href + `" ` + attrs + `>`)
		r.renderChildren(buf, n, imageCount)
		buf.WriteString("</a>")
	case EntryHyperlink:
		href := ""
		if r.EntryHref != nil {
			href = SafeURL(r.EntryHref(targetFields(n.Data)))
		}
		if href == "" {
			r.renderChildren(buf, n, imageCount)
			return
		}
		buf.WriteString(`<a href="` + href + `" class="underline decoration-2 underline-offset-4">`)
		r.renderChildren(buf, n, imageCount)
		buf.WriteString("</a>")
	case AssetHyperlink:
		href := SafeURL(r.assetURL(targetFields(n.Data)))
		if href == "" {
			r.renderChildren(buf, n, imageCount)
			return
		}
		buf.WriteString(`<a href="` + href + `" target="_blank" rel="noopener noreferrer">`)
		r.renderChildren(buf, n, imageCount)
		buf.WriteString("</a>")
	case EmbeddedAssetBlock:
		r.renderImage(buf, targetFields(n.Data), imageCount)
	case EmbeddedEntryBlock, EmbeddedEntry:
		// Embedded entries need content-type specific components.
	default:
		r.renderChildren(buf, n, imageCount)
	}
}

func (r Renderer) wrap(buf *bytes.Buffer, tag string, n *Node, imageCount *int) {
	buf.WriteString("<" + tag + ">")
	r.renderChildren(buf, n, imageCount)
	buf.WriteString("</" + tag + ">")
}

func (r Renderer) assetURL(fields map[string]any) string {
	file, _ := fields["file"].(map[string]any)
	raw, _ := file["url"].(string)
	if raw == "" {
		return ""
	}
	if r.AssetURL != nil {
		return r.AssetURL(raw)
	}
	return raw
}

func (r Renderer) renderImage(buf *bytes.Buffer, fields map[string]any, imageCount *int) {
	src := SafeURL(r.assetURL(fields))
	if src == "" {
		return
	}
	file, _ := fields["file"].(map[string]any)
	if ct, _ := file["contentType"].(string); ct != "" && !strings.HasPrefix(ct, "image/") {
		return
	}
	alt, _ := fields["title"].(string)
	if d, _ := fields["description"].(string); d != "" {
		alt = d
	}
	width, height := "1024", "768"
	if details, ok := file["details"].(map[string]any); ok {
		if img, ok := details["image"].(map[string]any); ok {
			w, wok := img["width"].(float64)
			h, hok := img["height"].(float64)
			if wok && hok {
				width = strconv.Itoa(int(w))
				height = strconv.Itoa(int(h))
			}
		}
	}

	*imageCount++
	loadAttr := `loading="lazy"`
	if *imageCount == 1 {
		loadAttr = `fetchpriority="high"`
	}
	buf.WriteString(`<img ` + loadAttr + ` width="` + width + `" height="` + height + `" alt="` + html.EscapeString(alt) + `" src="` + src + `" decoding="async"/>`)
}

func formatText(n *Node) string {
	s := html.EscapeString(n.Value)
	s = strings.ReplaceAll(s, "\n", "<br/>")
	for _, m := range n.Marks {
		switch m.Type {
		case MarkBold:
			s = "<strong>" + s + "</strong>"
		case MarkItalic:
			s = "<em>" + s + "</em>"
		case MarkUnderline:
			s = "<u>" + s + "</u>"
		case MarkCode:
			s = "<code>" + s + "</code>"
		case MarkSuperscript:
			s = "<sup>" + s + "</sup>"
		case MarkSubscript:
			s = "<sub>" + s + "</sub>"
		}
	}
	return s
}

func dataString(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

func targetFields(data map[string]any) map[string]any {
	target, _ := data["target"].(map[string]any)
	fields, _ := target["fields"].(map[string]any)
	return fields
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// SafeURL validates and sanitizes a URL for use in HTML attributes.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
