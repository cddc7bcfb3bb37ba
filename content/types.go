// Package content resolves blog content from the CMS into stable types,
// degrading to empty results or static fallback posts when the CMS fails.
package content

import (
	"time"

	"github.com/doctordigital/drdigital/richtext"
)

// BlogPost is a normalized blog post, whether it came from the CMS or from
// the fallback set.
type BlogPost struct {
	ID             string
	Slug           string
	Title          string
	Subtitle       string
	Excerpt        string
	Content        *richtext.Node
	PublishedDate  string // ISO-8601 date as stored, "" when absent
	CreatedAt      time.Time
	UpdatedAt      time.Time
	FeaturedImage  *Image
	Author         *Author
	SEO            *SEO
	Related        []RelatedPost
	Tags           []string
	ReadingMinutes int
	Fallback       bool
}

// Published parses PublishedDate. Both full timestamps and plain dates are
// accepted.
func (p BlogPost) Published() (time.Time, bool) {
	return parseDate(p.PublishedDate)
}

// Modified returns the last modification time, falling back to the
// published date.
func (p BlogPost) Modified() time.Time {
	if !p.UpdatedAt.IsZero() {
		return p.UpdatedAt
	}
	t, _ := p.Published()
	return t
}

// Path is the site-relative URL of the post.
func (p BlogPost) Path() string {
	return "/blog/" + p.Slug + "/"
}

// clone returns a copy of p sharing no pointers with it.
func (p BlogPost) clone() BlogPost {
	c := p
	c.Content = p.Content.Clone()
	c.FeaturedImage = p.FeaturedImage.clone()
	if p.Author != nil {
		a := *p.Author
		a.Avatar = p.Author.Avatar.clone()
		a.Bio = p.Author.Bio.Clone()
		c.Author = &a
	}
	if p.SEO != nil {
		seo := *p.SEO
		seo.OGImage = p.SEO.OGImage.clone()
		c.SEO = &seo
	}
	if p.Related != nil {
		c.Related = append([]RelatedPost(nil), p.Related...)
	}
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	return c
}

func (p BlogPost) valid() bool {
	return p.Slug != "" && p.Title != ""
}

// Author is the normalized author of a post.
type Author struct {
	Name   string
	Avatar *Image
	Bio    *richtext.Node
}

// Image is a normalized asset reference with absolute URL, alt text and
// dimensions always set.
type Image struct {
	URL    string
	Alt    string
	Width  int
	Height int
}

func (img *Image) clone() *Image {
	if img == nil {
		return nil
	}
	c := *img
	return &c
}

// SEO holds per-post metadata overrides. Empty fields mean "derive".
type SEO struct {
	Title       string
	Description string
	Canonical   string
	OGImage     *Image
}

// RelatedPost is a reference to another post linked from a post.
type RelatedPost struct {
	Slug  string
	Title string
}

// BlogPostCollection is one page of posts. Total is the server-side match
// count.
type BlogPostCollection struct {
	Total int
	Skip  int
	Limit int
	Items []BlogPost
}

func emptyCollection() BlogPostCollection {
	return BlogPostCollection{Items: []BlogPost{}}
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00", "2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
