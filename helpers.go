package drdigital

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/doctordigital/drdigital/content"
	"github.com/doctordigital/drdigital/richtext"
	"github.com/doctordigital/drdigital/schema"
	"github.com/doctordigital/drdigital/views"
)

func (a *App) absURL(p string) string {
	if p == "" || strings.Contains(p, "://") {
		return p
	}
	return a.Config.URL + "/" + strings.TrimLeft(p, "/")
}

// PostMeta derives the page metadata of a post. Values from the post's SEO
// override win over derived ones.
func PostMeta(post content.BlogPost, cfg SiteConfig) views.PageMeta {
	base := strings.TrimRight(cfg.URL, "/")
	abs := func(p string) string {
		if p == "" || strings.Contains(p, "://") {
			return p
		}
		return base + "/" + strings.TrimLeft(p, "/")
	}

	m := views.PageMeta{
		Title:       post.Title + " | " + cfg.Name,
		Description: post.Excerpt,
		URL:         abs(post.Path()),
		OGType:      "article",
	}
	if post.FeaturedImage != nil {
		m.Image = abs(post.FeaturedImage.URL)
	}
	if s := post.SEO; s != nil {
		if s.Title != "" {
			m.Title = s.Title
		}
		if s.Description != "" {
			m.Description = s.Description
		}
		if s.Canonical != "" {
			m.URL = abs(s.Canonical)
		}
		if s.OGImage != nil {
			m.Image = abs(s.OGImage.URL)
		}
	}
	return m
}

// PostSchema maps a post to the BlogPosting generator input.
func PostSchema(post content.BlogPost, meta views.PageMeta) schema.Post {
	sp := schema.Post{
		Headline:    post.Title,
		Description: meta.Description,
		URL:         meta.URL,
		WordCount:   richtext.WordCount(post.Content),
		Keywords:    post.Tags,
	}
	if t, ok := post.Published(); ok {
		sp.DatePublished = t.Format("2006-01-02")
	}
	if !post.UpdatedAt.IsZero() {
		sp.DateModified = post.UpdatedAt.UTC().Format("2006-01-02")
	}
	if post.Author != nil {
		sp.AuthorName = post.Author.Name
	}
	img := post.FeaturedImage
	if img == nil && post.SEO != nil {
		img = post.SEO.OGImage
	}
	if img != nil {
		sp.Image = &schema.Image{URL: img.URL, Width: img.Width, Height: img.Height}
	}
	return sp
}

// page builds the common page data for c.
func (a *App) page(c echo.Context, meta views.PageMeta, schemas ...schema.Object) views.Page {
	if meta.URL == "" {
		meta.URL = a.absURL(c.Request().URL.Path)
	}
	if meta.Title == "" {
		meta.Title = a.Config.Name
	}
	if meta.Description == "" {
		meta.Description = a.Config.Description
	}
	return views.Page{
		SiteName: a.Config.Name,
		SiteURL:  a.Config.URL,
		Meta:     meta,
		Schemas:  schemas,
		Preview:  IsPreview(c),
	}
}

// listPosts returns the posts of list views. When the CMS returns none and
// ListFallback is set, the fallback posts are listed instead.
func (a *App) listPosts(ctx context.Context, preview bool) []content.BlogPost {
	ctx, cancel := context.WithTimeout(ctx, a.Config.FetchTimeout)
	defer cancel()
	posts := a.Content.GetAllBlogPosts(ctx, preview).Items
	if len(posts) == 0 && a.Config.ListFallback {
		return content.GetAllFallbackPosts()
	}
	return posts
}

func (a *App) crumbs(items ...schema.Crumb) schema.Object {
	return a.Schema.Breadcrumb(append([]schema.Crumb{{Name: "Αρχική", URL: "/"}}, items...))
}
