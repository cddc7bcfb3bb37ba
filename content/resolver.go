package content

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/doctordigital/drdigital/contentful"
)

// BlogPostType is the CMS content type id of blog posts.
const BlogPostType = "blogPost"

// MinInclude is the minimum link depth requested so that post->author and
// post->seoFields->ogImage arrive resolved.
const MinInclude = 2

const defaultPageSize = 100

// Source fetches entries from the CMS. *contentful.Clients implements it.
type Source interface {
	Entries(ctx context.Context, preview bool, q contentful.Query) (*contentful.EntryCollection, error)
}

// Resolver is the read API for blog content. Its public methods never
// return errors: failures are logged and reported as an empty collection or
// a nil post, and callers decide what to show instead.
type Resolver struct {
	src      Source
	log      zerolog.Logger
	include  int
	pageSize int
	locale   string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithInclude sets the link resolution depth. Values below MinInclude are
// raised to MinInclude.
func WithInclude(depth int) Option {
	return func(r *Resolver) {
		if depth > r.include {
			r.include = depth
		}
	}
}

// WithPageSize sets how many posts GetAllBlogPosts requests.
func WithPageSize(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.pageSize = n
		}
	}
}

// WithLocale requests a specific CMS locale.
func WithLocale(locale string) Option {
	return func(r *Resolver) {
		r.locale = locale
	}
}

// NewResolver creates a Resolver reading from src.
func NewResolver(src Source, log zerolog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		src:      src,
		log:      log.With().Str("component", "content").Logger(),
		include:  MinInclude,
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type result[T any] struct {
	val T
	err error
}

func (r *Resolver) fetchPosts(ctx context.Context, preview bool, q contentful.Query) (res result[BlogPostCollection]) {
	defer func() {
		if p := recover(); p != nil {
			res = result[BlogPostCollection]{err: fmt.Errorf("content: normalize: %v", p)}
		}
	}()
	if r.src == nil {
		return result[BlogPostCollection]{err: errors.New("content: no content source")}
	}

	q.ContentType = BlogPostType
	q.Include = r.include
	q.Locale = r.locale
	col, err := r.src.Entries(ctx, preview, q)
	if err != nil {
		return result[BlogPostCollection]{err: err}
	}
	if col == nil {
		return result[BlogPostCollection]{err: errors.New("content: empty response")}
	}

	out := BlogPostCollection{
		Total: col.Total,
		Skip:  col.Skip,
		Limit: col.Limit,
		Items: make([]BlogPost, 0, len(col.Items)),
	}
	for _, e := range col.Items {
		p := NormalizePost(e)
		if !p.valid() {
			r.log.Warn().Str("entry", e.Sys.ID).Msg("skipping blog post without title or slug")
			continue
		}
		out.Items = append(out.Items, p)
	}
	return result[BlogPostCollection]{val: out}
}

// GetAllBlogPosts returns the published (or, in preview, draft) posts,
// newest first. On any failure it logs and returns an empty collection; it
// never substitutes fallback posts.
func (r *Resolver) GetAllBlogPosts(ctx context.Context, preview bool) BlogPostCollection {
	res := r.fetchPosts(ctx, preview, contentful.Query{
		Limit: r.pageSize,
		Order: "-sys.createdAt",
	})
	if res.err != nil {
		r.logFailure(res.err, "GetAllBlogPosts", preview, "")
		return emptyCollection()
	}
	SortByPublished(res.val.Items)
	return res.val
}

// GetBlogPostBySlug returns the post with exactly this slug, or nil when it
// does not exist or the CMS call fails. Callers consult the fallback set
// before treating the post as missing.
func (r *Resolver) GetBlogPostBySlug(ctx context.Context, slug string, preview bool) *BlogPost {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	res := r.fetchPosts(ctx, preview, contentful.Query{
		Fields: map[string]string{"slug": slug},
		Limit:  1,
	})
	if res.err != nil {
		r.logFailure(res.err, "GetBlogPostBySlug", preview, slug)
		return nil
	}
	if len(res.val.Items) == 0 {
		r.log.Debug().Str("op", "GetBlogPostBySlug").Str("slug", slug).Msg("blog post not found")
		return nil
	}
	p := res.val.Items[0]
	return &p
}

// GetRelatedPosts returns up to limit posts to show next to post: the ones
// it links to first, then the most recent others. Linked posts are fetched
// by slug alongside the recent list, so links to posts outside the first
// page still resolve.
func (r *Resolver) GetRelatedPosts(ctx context.Context, post BlogPost, limit int, preview bool) []BlogPost {
	if limit <= 0 {
		return nil
	}
	links := post.Related
	if len(links) > limit {
		links = links[:limit]
	}

	var (
		recent BlogPostCollection
		linked = make([]*BlogPost, len(links))
		g      errgroup.Group
	)
	g.Go(func() error {
		recent = r.GetAllBlogPosts(ctx, preview)
		return nil
	})
	for i, rel := range links {
		g.Go(func() error {
			linked[i] = r.GetBlogPostBySlug(ctx, rel.Slug, preview)
			return nil
		})
	}
	_ = g.Wait()

	candidates := make([]BlogPost, 0, len(linked)+len(recent.Items))
	for _, p := range linked {
		if p != nil {
			candidates = append(candidates, *p)
		}
	}
	candidates = append(candidates, recent.Items...)
	return PickRelated(post, candidates, limit)
}

// PickRelated selects up to limit posts from candidates: explicitly related
// posts in link order, then the remaining candidates in their given order.
// The post itself is never included.
func PickRelated(post BlogPost, candidates []BlogPost, limit int) []BlogPost {
	bySlug := make(map[string]BlogPost, len(candidates))
	for _, c := range candidates {
		bySlug[c.Slug] = c
	}
	seen := map[string]bool{post.Slug: true}
	var out []BlogPost
	for _, rel := range post.Related {
		if len(out) == limit {
			return out
		}
		if c, ok := bySlug[rel.Slug]; ok && !seen[rel.Slug] {
			seen[rel.Slug] = true
			out = append(out, c)
		}
	}
	for _, c := range candidates {
		if len(out) == limit {
			break
		}
		if !seen[c.Slug] {
			seen[c.Slug] = true
			out = append(out, c)
		}
	}
	return out
}

// SortByPublished orders posts newest first by published date, then by
// creation time. Posts without a date sort last.
func SortByPublished(posts []BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, iok := posts[i].Published()
		tj, jok := posts[j].Published()
		if iok != jok {
			return iok
		}
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func (r *Resolver) logFailure(err error, op string, preview bool, slug string) {
	ev := r.log.Error()
	if contentful.IsNotFound(err) {
		// Unknown space or content type: still an outage for this site.
		ev = ev.Str("reason", "not_found")
	}
	if errors.Is(err, contentful.ErrConfig) {
		ev = ev.Str("reason", "config")
	}
	ev = ev.Err(err).Str("op", op).Bool("preview", preview)
	if slug != "" {
		ev = ev.Str("slug", slug)
	}
	ev.Msg("contentful fetch failed")
}
