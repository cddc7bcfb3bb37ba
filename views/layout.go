// Package views holds the default page components of the site. Sites can
// replace any of them through drdigital.ViewFuncs.
package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/doctordigital/drdigital/schema"
)

var navItems = []struct{ href, label string }{
	{"/", "Αρχική"},
	{"/services/", "Υπηρεσίες"},
	{"/case-studies/", "Case studies"},
	{"/blog/", "Blog"},
	{"/about/", "Σχετικά"},
	{"/contact/", "Επικοινωνία"},
}

// Layout wraps body in the site's HTML document. JSON-LD objects of the page
// are emitted in <head>, one script tag each.
func Layout(p Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeHead(&buf, p)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if err := schema.Scripts(p.Schemas...).Render(ctx, w); err != nil {
			return err
		}

		buf.Reset()
		buf.WriteString("</head><body>")
		if p.Preview {
			buf.WriteString(`<div class="preview-banner">Προεπισκόπηση πρόχειρου περιεχομένου. <a href="/api/exit-preview">Έξοδος</a></div>`)
		}
		buf.WriteString(`<header class="site-header">`)
		link(&buf, "/", "brand", p.SiteName)
		buf.WriteString("<nav>")
		for _, it := range navItems {
			link(&buf, it.href, "", it.label)
		}
		buf.WriteString("</nav></header><main>")
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		buf.Reset()
		buf.WriteString(`</main><footer class="site-footer">`)
		tag(&buf, "p", "", "© "+p.SiteName)
		buf.WriteString("</footer></body></html>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeHead(buf *bytes.Buffer, p Page) {
	m := p.Meta
	buf.WriteString(`<!DOCTYPE html><html lang="el"><head><meta charset="utf-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	title := m.Title
	if title == "" {
		title = p.SiteName
	}
	tag(buf, "title", "", title)
	if m.Description != "" {
		buf.WriteString(`<meta name="description" content="` + esc(m.Description) + `">`)
	}
	if m.NoIndex {
		buf.WriteString(`<meta name="robots" content="noindex">`)
	}
	if m.URL != "" {
		buf.WriteString(`<link rel="canonical" href="` + esc(m.URL) + `">`)
		buf.WriteString(`<meta property="og:url" content="` + esc(m.URL) + `">`)
	}
	ogType := m.OGType
	if ogType == "" {
		ogType = "website"
	}
	buf.WriteString(`<meta property="og:type" content="` + esc(ogType) + `">`)
	buf.WriteString(`<meta property="og:title" content="` + esc(title) + `">`)
	if m.Description != "" {
		buf.WriteString(`<meta property="og:description" content="` + esc(m.Description) + `">`)
	}
	if m.Image != "" {
		buf.WriteString(`<meta property="og:image" content="` + esc(m.Image) + `">`)
	}
	if p.SiteName != "" {
		buf.WriteString(`<meta property="og:site_name" content="` + esc(p.SiteName) + `">`)
	}
	buf.WriteString(`<link rel="alternate" type="application/rss+xml" href="/feed.xml">`)
	buf.WriteString(`<link rel="stylesheet" href="/public/styles.css">`)
}
