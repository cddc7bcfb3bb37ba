package contentful

// linker replaces link objects in entry fields with the entries and assets
// shipped in the response's includes, bounded by the requested depth.
type linker struct {
	entries map[string]rawItem
	assets  map[string]rawItem
}

func newLinker(resp *entriesResponse) *linker {
	l := &linker{
		entries: make(map[string]rawItem, len(resp.Items)+len(resp.Includes.Entry)),
		assets:  make(map[string]rawItem, len(resp.Includes.Asset)),
	}
	for _, it := range resp.Items {
		l.entries[it.Sys.ID] = it
	}
	for _, it := range resp.Includes.Entry {
		l.entries[it.Sys.ID] = it
	}
	for _, it := range resp.Includes.Asset {
		l.assets[it.Sys.ID] = it
	}
	return l
}

func (l *linker) entry(it rawItem, depth int) *Entry {
	return &Entry{Sys: it.Sys, Fields: l.fields(it.Fields, depth)}
}

func (l *linker) fields(f map[string]any, depth int) map[string]any {
	out := make(map[string]any, len(f))
	for k, v := range f {
		out[k] = l.value(v, depth)
	}
	return out
}

func (l *linker) value(v any, depth int) any {
	switch t := v.(type) {
	case map[string]any:
		if link, ok := asLink(t); ok {
			return l.resolve(link, depth)
		}
		if _, ok := t["nodeType"]; ok {
			return l.richText(t, depth)
		}
		return t
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = l.value(t[i], depth)
		}
		return out
	default:
		return v
	}
}

func (l *linker) resolve(link Link, depth int) any {
	if depth <= 0 {
		return link
	}
	switch link.LinkType {
	case "Entry":
		if it, ok := l.entries[link.ID]; ok {
			return l.entry(it, depth-1)
		}
	case "Asset":
		if it, ok := l.assets[link.ID]; ok {
			return &Asset{Sys: it.Sys, Fields: it.Fields}
		}
	}
	return link
}

// richText copies a rich-text node, inlining link targets found under
// data.target as plain {"sys", "fields"} maps so the tree stays
// JSON-encodable.
func (l *linker) richText(node map[string]any, depth int) map[string]any {
	out := make(map[string]any, len(node))
	for k, v := range node {
		out[k] = v
	}
	if data, ok := node["data"].(map[string]any); ok {
		if target, ok := data["target"].(map[string]any); ok {
			if link, ok := asLink(target); ok && depth > 0 {
				if it, found := l.lookup(link); found {
					d := make(map[string]any, len(data))
					for k, v := range data {
						d[k] = v
					}
					d["target"] = map[string]any{
						"sys":    map[string]any{"id": it.Sys.ID, "type": link.LinkType},
						"fields": it.Fields,
					}
					out["data"] = d
				}
			}
		}
	}
	if content, ok := node["content"].([]any); ok {
		cs := make([]any, len(content))
		for i, c := range content {
			if m, ok := c.(map[string]any); ok {
				cs[i] = l.richText(m, depth)
			} else {
				cs[i] = c
			}
		}
		out["content"] = cs
	}
	return out
}

func (l *linker) lookup(link Link) (rawItem, bool) {
	switch link.LinkType {
	case "Entry":
		it, ok := l.entries[link.ID]
		return it, ok
	case "Asset":
		it, ok := l.assets[link.ID]
		return it, ok
	}
	return rawItem{}, false
}

func asLink(m map[string]any) (Link, bool) {
	sys, ok := m["sys"].(map[string]any)
	if !ok || len(m) != 1 {
		return Link{}, false
	}
	if typ, _ := sys["type"].(string); typ != "Link" {
		return Link{}, false
	}
	linkType, _ := sys["linkType"].(string)
	id, _ := sys["id"].(string)
	if id == "" {
		return Link{}, false
	}
	return Link{LinkType: linkType, ID: id}, true
}
