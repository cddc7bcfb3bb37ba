// Package schema builds schema.org JSON-LD objects for the site's pages.
//
// Every generator is a pure function of its input and the static site
// identity. Optional properties are left out of the result entirely when
// their input is empty.
package schema

import (
	"encoding/json"
	"strings"
)

const Context = "https://schema.org"

// Object is a JSON-LD node.
type Object = map[string]any

// Site is the organization identity the generators describe pages of.
type Site struct {
	Name        string
	URL         string // absolute, no trailing slash needed
	Logo        string // absolute or site-relative
	Description string
	Language    string
	SameAs      []string
	Phone       string
	Email       string
	Address     *Address
}

// Address is a postal address.
type Address struct {
	Street     string
	Locality   string
	Region     string
	PostalCode string
	Country    string
}

// Generator builds schema objects for one site.
type Generator struct {
	site Site
}

// NewGenerator returns a generator for site.
func NewGenerator(site Site) *Generator {
	site.URL = strings.TrimRight(strings.TrimSpace(site.URL), "/")
	return &Generator{site: site}
}

// Site returns the identity the generator was created with.
func (g *Generator) Site() Site { return g.site }

// Abs resolves a site-relative URL against the site URL. Absolute URLs and
// empty strings are returned unchanged.
func (g *Generator) Abs(u string) string {
	u = strings.TrimSpace(u)
	if u == "" || strings.Contains(u, "://") {
		return u
	}
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return g.site.URL + u
}

func newObject(typ string) Object {
	return Object{"@context": Context, "@type": typ}
}

// set stores v under key unless it is empty.
func set(o Object, key string, v any) {
	switch t := v.(type) {
	case nil:
		return
	case string:
		if strings.TrimSpace(t) == "" {
			return
		}
	case []string:
		if len(t) == 0 {
			return
		}
	case Object:
		if len(t) == 0 {
			return
		}
	case int:
		if t == 0 {
			return
		}
	case float64:
		if t == 0 {
			return
		}
	}
	o[key] = v
}

// Marshal encodes o for embedding in a script tag. It returns "{}" when o
// cannot be encoded.
func Marshal(o Object) string {
	b, err := json.Marshal(o)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Crumb is one breadcrumb step.
type Crumb struct {
	Name string
	URL  string
}

// Breadcrumb builds a BreadcrumbList. Positions start at 1 and follow the
// order of items.
func (g *Generator) Breadcrumb(items []Crumb) Object {
	list := make([]Object, 0, len(items))
	for i, it := range items {
		el := Object{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		set(el, "item", g.Abs(it.URL))
		list = append(list, el)
	}
	o := newObject("BreadcrumbList")
	o["itemListElement"] = list
	return o
}

// QA is a question and its answer.
type QA struct {
	Question string
	Answer   string
}

// FAQ builds an FAQPage. mainEntity is always a list, empty for no input.
func (g *Generator) FAQ(qas []QA) Object {
	list := make([]Object, 0, len(qas))
	for _, qa := range qas {
		list = append(list, Object{
			"@type": "Question",
			"name":  qa.Question,
			"acceptedAnswer": Object{
				"@type": "Answer",
				"text":  qa.Answer,
			},
		})
	}
	o := newObject("FAQPage")
	o["mainEntity"] = list
	return o
}

// Image is an image reference for ImageObject nodes.
type Image struct {
	URL    string
	Width  int
	Height int
}

func (g *Generator) image(img *Image) Object {
	if img == nil || img.URL == "" {
		return nil
	}
	o := Object{"@type": "ImageObject", "url": g.Abs(img.URL)}
	set(o, "width", img.Width)
	set(o, "height", img.Height)
	return o
}

func person(name string) Object {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	return Object{"@type": "Person", "name": name}
}

// organizationRef is the compact organization node nested in other objects.
func (g *Generator) organizationRef() Object {
	o := Object{"@type": "Organization", "name": g.site.Name}
	set(o, "url", g.site.URL)
	if g.site.Logo != "" {
		set(o, "logo", g.image(&Image{URL: g.site.Logo}))
	}
	return o
}

// Post is the input of BlogPosting.
type Post struct {
	Headline      string
	Description   string
	URL           string
	Image         *Image
	DatePublished string
	DateModified  string
	AuthorName    string
	Keywords      []string
	WordCount     int
}

// BlogPosting builds a BlogPosting. dateModified defaults to datePublished;
// the author falls back to the organization.
func (g *Generator) BlogPosting(p Post) Object {
	o := newObject("BlogPosting")
	o["headline"] = p.Headline
	set(o, "description", p.Description)
	if u := g.Abs(p.URL); u != "" {
		o["url"] = u
		o["mainEntityOfPage"] = Object{"@type": "WebPage", "@id": u}
	}
	set(o, "image", g.image(p.Image))
	set(o, "datePublished", p.DatePublished)
	modified := p.DateModified
	if modified == "" {
		modified = p.DatePublished
	}
	set(o, "dateModified", modified)
	if a := person(p.AuthorName); a != nil {
		o["author"] = a
	} else {
		o["author"] = g.organizationRef()
	}
	o["publisher"] = g.organizationRef()
	if len(p.Keywords) > 0 {
		o["keywords"] = strings.Join(p.Keywords, ", ")
	}
	set(o, "wordCount", p.WordCount)
	set(o, "inLanguage", g.site.Language)
	return o
}

// Service is the input of Service. A nil Provider means the site's own
// organization.
type Service struct {
	Name        string
	Description string
	URL         string
	ServiceType string
	AreaServed  string
	Image       *Image
	Provider    Object
}

// Service builds a Service.
func (g *Generator) Service(s Service) Object {
	o := newObject("Service")
	o["name"] = s.Name
	set(o, "description", s.Description)
	set(o, "url", g.Abs(s.URL))
	set(o, "serviceType", s.ServiceType)
	set(o, "image", g.image(s.Image))
	if s.AreaServed != "" {
		o["areaServed"] = Object{"@type": "Place", "name": s.AreaServed}
	}
	if s.Provider != nil {
		o["provider"] = s.Provider
	} else {
		o["provider"] = g.organizationRef()
	}
	return o
}

// Organization builds the site's Organization.
func (g *Generator) Organization() Object {
	o := newObject("Organization")
	o["name"] = g.site.Name
	set(o, "url", g.site.URL)
	set(o, "description", g.site.Description)
	if g.site.Logo != "" {
		o["logo"] = g.image(&Image{URL: g.site.Logo})
	}
	set(o, "email", g.site.Email)
	set(o, "telephone", g.site.Phone)
	set(o, "sameAs", g.site.SameAs)
	if g.site.Phone != "" || g.site.Email != "" {
		cp := Object{"@type": "ContactPoint", "contactType": "customer service"}
		set(cp, "telephone", g.site.Phone)
		set(cp, "email", g.site.Email)
		set(cp, "availableLanguage", g.site.Language)
		o["contactPoint"] = cp
	}
	if a := g.site.Address; a != nil {
		addr := Object{"@type": "PostalAddress"}
		set(addr, "streetAddress", a.Street)
		set(addr, "addressLocality", a.Locality)
		set(addr, "addressRegion", a.Region)
		set(addr, "postalCode", a.PostalCode)
		set(addr, "addressCountry", a.Country)
		if len(addr) > 1 {
			o["address"] = addr
		}
	}
	return o
}

// Review is the input of Review. Rating is on a 1..BestRating scale;
// BestRating defaults to 5.
type Review struct {
	Author        string
	Body          string
	Rating        float64
	BestRating    float64
	DatePublished string
	ItemReviewed  Object
}

// Review builds a Review of the organization, or of ItemReviewed when set.
func (g *Generator) Review(r Review) Object {
	o := newObject("Review")
	set(o, "author", person(r.Author))
	set(o, "reviewBody", r.Body)
	set(o, "datePublished", r.DatePublished)
	if r.Rating > 0 {
		best := r.BestRating
		if best <= 0 {
			best = 5
		}
		o["reviewRating"] = Object{
			"@type":       "Rating",
			"ratingValue": r.Rating,
			"bestRating":  best,
			"worstRating": 1,
		}
	}
	if r.ItemReviewed != nil {
		o["itemReviewed"] = r.ItemReviewed
	} else {
		o["itemReviewed"] = g.organizationRef()
	}
	return o
}

// WebSite builds the WebSite object for the home page.
func (g *Generator) WebSite() Object {
	o := newObject("WebSite")
	o["name"] = g.site.Name
	set(o, "url", g.site.URL)
	set(o, "description", g.site.Description)
	set(o, "inLanguage", g.site.Language)
	o["publisher"] = g.organizationRef()
	return o
}
