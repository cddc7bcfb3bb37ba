package views

import "github.com/doctordigital/drdigital/schema"

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image, absolute
	NoIndex     bool
}

// Page is what every page component receives besides its own data.
type Page struct {
	SiteName string
	SiteURL  string
	Meta     PageMeta
	Schemas  []schema.Object // one <script type="application/ld+json"> each
	Preview  bool            // draft content is being shown
}
