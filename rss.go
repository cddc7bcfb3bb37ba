package drdigital

import (
	"encoding/xml"
	"time"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Author      string `xml:"author,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// handleFeed lists CMS posts only. Fallback posts stay out of the feed even
// with ListFallback set, as they do in the sitemap.
func (a *App) handleFeed(c echo.Context) error {
	posts, _ := ResolverLister(a.Content, a.Config.FetchTimeout)(c.Request().Context())

	items := make([]rssItem, 0, len(posts))
	var newest time.Time
	for _, p := range posts {
		postURL := a.absURL(p.Path())
		it := rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Excerpt,
			GUID:        postURL,
		}
		if t, ok := p.Published(); ok {
			it.PubDate = t.Format(time.RFC1123Z)
			if t.After(newest) {
				newest = t
			}
		}
		if p.Author != nil && a.Config.Email != "" {
			it.Author = a.Config.Email + " (" + p.Author.Name + ")"
		}
		items = append(items, it)
	}

	ch := rssChannel{
		Title:       a.Config.Name,
		Link:        a.Config.URL + "/",
		Description: a.Config.Description,
		Language:    a.Config.Language,
		Items:       items,
	}
	if !newest.IsZero() {
		ch.LastBuildDate = newest.Format(time.RFC1123Z)
	}
	return renderXML(c, "application/rss+xml; charset=utf-8", rssXML{Version: "2.0", Channel: ch})
}
