package drdigital

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/doctordigital/drdigital/content"
	"github.com/doctordigital/drdigital/site"
)

// SitemapEntry is one URL of the sitemap.
type SitemapEntry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}

// PostLister returns the posts to list in the sitemap.
type PostLister func(ctx context.Context) ([]content.BlogPost, error)

type staticRoute struct {
	path       string
	changeFreq string
	priority   float64
}

func staticRoutes() []staticRoute {
	routes := []staticRoute{
		{"/", "weekly", 1.0},
		{"/services/", "monthly", 0.9},
	}
	for _, s := range site.Services() {
		routes = append(routes, staticRoute{s.Path(), "monthly", 0.8})
	}
	return append(routes,
		staticRoute{"/case-studies/", "monthly", 0.7},
		staticRoute{"/blog/", "weekly", 0.8},
		staticRoute{"/about/", "yearly", 0.5},
		staticRoute{"/contact/", "yearly", 0.6},
	)
}

// BuildSitemap returns the static routes followed by one entry per post.
// A failing lister contributes no entries; the sitemap itself never fails.
func BuildSitemap(ctx context.Context, baseURL string, list PostLister, now time.Time) []SitemapEntry {
	base := strings.TrimRight(baseURL, "/")
	routes := staticRoutes()
	entries := make([]SitemapEntry, 0, len(routes))
	for _, r := range routes {
		entries = append(entries, SitemapEntry{
			URL:             base + r.path,
			LastModified:    now,
			ChangeFrequency: r.changeFreq,
			Priority:        r.priority,
		})
	}
	if list == nil {
		return entries
	}

	posts, err := safeList(ctx, list)
	if err != nil {
		return entries
	}
	for _, p := range posts {
		if p.Slug == "" {
			continue
		}
		entries = append(entries, SitemapEntry{
			URL:             base + p.Path(),
			LastModified:    p.Modified(),
			ChangeFrequency: "monthly",
			Priority:        0.6,
		})
	}
	return entries
}

// ResolverLister lists the published CMS posts through r. It never returns
// fallback posts, so an unreachable CMS leaves the sitemap with its static
// routes only.
func ResolverLister(r *content.Resolver, timeout time.Duration) PostLister {
	return func(ctx context.Context) ([]content.BlogPost, error) {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return r.GetAllBlogPosts(ctx, false).Items, nil
	}
}

func safeList(ctx context.Context, list PostLister) (posts []content.BlogPost, err error) {
	defer func() {
		if r := recover(); r != nil {
			posts, err = nil, fmt.Errorf("drdigital: list posts: %v", r)
		}
	}()
	return list(ctx)
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func (a *App) handleSitemap(c echo.Context) error {
	lister := ResolverLister(a.Content, a.Config.FetchTimeout)
	entries := BuildSitemap(c.Request().Context(), a.Config.URL, lister, a.now())
	urls := make([]sitemapURL, 0, len(entries))
	for _, e := range entries {
		u := sitemapURL{
			Loc:        e.URL,
			ChangeFreq: e.ChangeFrequency,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		}
		if !e.LastModified.IsZero() {
			u.LastMod = e.LastModified.UTC().Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	return renderXML(c, "application/xml; charset=utf-8", sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}
