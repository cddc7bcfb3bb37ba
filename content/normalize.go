package content

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/doctordigital/drdigital/contentful"
	"github.com/doctordigital/drdigital/richtext"
)

// Fallback image dimensions used when an asset carries no image details.
const (
	DefaultImageWidth  = 800
	DefaultImageHeight = 600
)

const excerptLength = 160

// publishedDateFields lists the canonical field name followed by the legacy
// names found in older entries, in priority order.
var publishedDateFields = []string{"publishedDate", "publishDate", "Published date"}

// RichText renders post bodies: asset URLs are made absolute and links to
// other posts point at their blog URL.
var RichText = richtext.Renderer{
	AssetURL:  NormalizeAssetURL,
	EntryHref: entryHref,
}

func entryHref(fields map[string]any) string {
	if slug := Lookup(fields, "slug").String(); slug != "" {
		return "/blog/" + slug + "/"
	}
	return ""
}

// CoalescePublishedDate returns the first present value among the
// published-date field names.
func CoalescePublishedDate(fields map[string]any) (any, bool) {
	for _, name := range publishedDateFields {
		if v, ok := fields[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// NormalizeFields returns a copy of fields with legacy field names
// coalesced into their canonical names. Entries that already use the
// canonical names are returned unchanged.
func NormalizeFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	if v, ok := CoalescePublishedDate(fields); ok {
		out["publishedDate"] = v
	}
	return out
}

// NormalizeAssetURL makes CMS asset URLs absolute https URLs.
// Protocol-relative URLs get an https: prefix and URLs without a scheme get
// https://. URLs that already start with a scheme are left alone, and so are
// site-relative paths such as "/public/images/a.jpg": those point at this
// site's own static files, and prefixing them would turn the first path
// segment into a host name.
func NormalizeAssetURL(raw string) string {
	u := strings.TrimSpace(raw)
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "/"):
		return u
	case hasScheme(u):
		return u
	default:
		return "https://" + u
	}
}

var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// hasScheme reports whether u starts with a URL scheme. "host:port/path" is
// not taken for a scheme.
func hasScheme(u string) bool {
	m := schemePrefix.FindString(u)
	if m == "" {
		return false
	}
	rest := u[len(m):]
	if strings.HasPrefix(rest, "//") {
		return true
	}
	return rest == "" || rest[0] < '0' || rest[0] > '9'
}

// ImageFrom builds an Image from an asset value. The alt text is the asset
// title, or defaultAlt when the title is empty; dimensions come from the
// file details when both are numeric, otherwise width x height (or the
// package defaults when those are zero). It returns nil when v is not a
// resolved asset (or inlined asset object) with a file URL.
func ImageFrom(v Value, defaultAlt string, width, height int) *Image {
	if k := v.Kind(); k != KindAsset && k != KindObject {
		return nil
	}
	u := NormalizeAssetURL(v.Get("file").Get("url").String())
	if u == "" {
		return nil
	}
	if width <= 0 || height <= 0 {
		width, height = DefaultImageWidth, DefaultImageHeight
	}
	img := &Image{URL: u, Alt: defaultAlt, Width: width, Height: height}
	if title := strings.TrimSpace(v.Get("title").String()); title != "" {
		img.Alt = title
	}
	dims := v.Get("file").Get("details").Get("image")
	w, wok := dims.Get("width").Float()
	h, hok := dims.Get("height").Float()
	if wok && hok && w > 0 && h > 0 {
		img.Width, img.Height = int(w), int(h)
	}
	return img
}

// NormalizePost maps a blogPost entry into a BlogPost. It never panics on
// missing or unresolved fields; the caller checks validity.
func NormalizePost(e *contentful.Entry) BlogPost {
	if e == nil {
		return BlogPost{}
	}
	fields := NormalizeFields(e.Fields)
	p := BlogPost{
		ID:            e.Sys.ID,
		Slug:          strings.TrimSpace(Lookup(fields, "slug").String()),
		Title:         strings.TrimSpace(Lookup(fields, "title").String()),
		Subtitle:      strings.TrimSpace(Lookup(fields, "subtitle").String()),
		Excerpt:       strings.TrimSpace(Lookup(fields, "excerpt").String()),
		PublishedDate: strings.TrimSpace(Lookup(fields, "publishedDate").String()),
		CreatedAt:     e.Sys.CreatedAt,
		UpdatedAt:     e.Sys.UpdatedAt,
	}
	if doc, err := richtext.Parse(fields["content"]); err == nil {
		p.Content = doc
	}
	if p.Excerpt == "" {
		p.Excerpt = Summarize(richtext.PlainText(p.Content), excerptLength)
	}
	p.ReadingMinutes = richtext.ReadingMinutes(p.Content)
	p.Tags = Lookup(fields, "tags").Strings()
	p.FeaturedImage = ImageFrom(Lookup(fields, "featuredImage"), p.Title, 0, 0)
	p.Author = authorFrom(Lookup(fields, "author"))
	p.SEO = seoFrom(Lookup(fields, "seoFields"), p.Title)
	for _, rel := range Lookup(fields, "relatedBlogPosts").List() {
		slug := strings.TrimSpace(rel.Get("slug").String())
		if slug == "" || slug == p.Slug {
			continue
		}
		p.Related = append(p.Related, RelatedPost{Slug: slug, Title: rel.Get("title").String()})
	}
	return p
}

func authorFrom(v Value) *Author {
	name := strings.TrimSpace(v.Get("name").String())
	if name == "" {
		return nil
	}
	a := &Author{
		Name:   name,
		Avatar: ImageFrom(v.Get("avatar"), name, 96, 96),
	}
	if doc, err := richtext.Parse(v.Get("bio").Raw()); err == nil {
		a.Bio = doc
	}
	return a
}

func seoFrom(v Value, title string) *SEO {
	if v.Kind() != KindEntry {
		return nil
	}
	s := &SEO{
		Title:       strings.TrimSpace(v.Get("seoTitle").String()),
		Description: strings.TrimSpace(v.Get("seoDescription").String()),
		Canonical:   strings.TrimSpace(v.Get("canonical").String()),
		OGImage:     ImageFrom(v.Get("ogImage"), title, 1200, 630),
	}
	if *s == (SEO{}) {
		return nil
	}
	return s
}

// Summarize shortens text to at most max runes, cutting at a word boundary
// and appending an ellipsis when it had to cut.
func Summarize(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:max])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
