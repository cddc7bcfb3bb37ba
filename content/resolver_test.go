package content

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctordigital/drdigital/contentful"
)

type fakeSource struct {
	mu      sync.Mutex
	col     *contentful.EntryCollection
	list    *contentful.EntryCollection // answers list queries when set
	err     error
	queries []contentful.Query
	preview []bool
}

func (f *fakeSource) Entries(_ context.Context, preview bool, q contentful.Query) (*contentful.EntryCollection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	f.preview = append(f.preview, preview)
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := q.Fields["slug"]; !ok && f.list != nil {
		return f.list, nil
	}
	if slug, ok := q.Fields["slug"]; ok && f.col != nil {
		out := &contentful.EntryCollection{}
		for _, e := range f.col.Items {
			if e.Fields["slug"] == slug {
				out.Items = append(out.Items, e)
				out.Total++
			}
		}
		return out, nil
	}
	return f.col, nil
}

func postEntry(id, slug, title, date string) *contentful.Entry {
	fields := map[string]any{"slug": slug, "title": title}
	if date != "" {
		fields["publishedDate"] = date
	}
	return &contentful.Entry{
		Sys:    contentful.Sys{ID: id, Type: "Entry", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		Fields: fields,
	}
}

func collection(items ...*contentful.Entry) *contentful.EntryCollection {
	return &contentful.EntryCollection{Total: len(items), Limit: 100, Items: items}
}

func TestGetAllBlogPostsSortsAndNormalizes(t *testing.T) {
	src := &fakeSource{col: collection(
		postEntry("1", "old", "Old", "2023-01-10"),
		postEntry("2", "new", "New", "2024-05-01T09:00:00Z"),
		postEntry("3", "", "No slug", "2024-06-01"),
		postEntry("4", "mid", "Mid", "2023-11-20"),
	)}
	r := NewResolver(src, zerolog.Nop())

	got := r.GetAllBlogPosts(context.Background(), false)
	require.Len(t, got.Items, 3)
	assert.Equal(t, "new", got.Items[0].Slug)
	assert.Equal(t, "mid", got.Items[1].Slug)
	assert.Equal(t, "old", got.Items[2].Slug)
	assert.Equal(t, 4, got.Total)

	require.Len(t, src.queries, 1)
	q := src.queries[0]
	assert.Equal(t, BlogPostType, q.ContentType)
	assert.GreaterOrEqual(t, q.Include, 2)
	assert.False(t, src.preview[0])
}

func TestGetAllBlogPostsFailureReturnsEmpty(t *testing.T) {
	failures := []error{
		errors.New("dial tcp: connection refused"),
		&contentful.APIError{StatusCode: 401, ID: "AccessTokenInvalid"},
		&contentful.APIError{StatusCode: 404, ID: "NotFound"},
		contentful.ErrPreviewUnavailable,
	}
	for _, ferr := range failures {
		t.Run(ferr.Error(), func(t *testing.T) {
			var buf bytes.Buffer
			r := NewResolver(&fakeSource{err: ferr}, zerolog.New(&buf))

			got := r.GetAllBlogPosts(context.Background(), true)
			assert.Equal(t, 0, got.Total)
			require.NotNil(t, got.Items)
			assert.Empty(t, got.Items)
			assert.Contains(t, buf.String(), `"op":"GetAllBlogPosts"`)
			assert.Contains(t, buf.String(), `"level":"error"`)
		})
	}
}

func TestGetAllBlogPostsNeverUsesFallback(t *testing.T) {
	r := NewResolver(&fakeSource{col: collection()}, zerolog.Nop())
	got := r.GetAllBlogPosts(context.Background(), false)
	assert.Empty(t, got.Items)
}

func TestGetBlogPostBySlug(t *testing.T) {
	src := &fakeSource{col: collection(
		postEntry("1", "seo-gia-iatrous", "SEO για ιατρούς", "2024-01-01"),
		postEntry("2", "allo", "Άλλο", "2024-02-01"),
	)}
	r := NewResolver(src, zerolog.Nop(), WithInclude(3))

	p := r.GetBlogPostBySlug(context.Background(), "seo-gia-iatrous", false)
	require.NotNil(t, p)
	assert.Equal(t, "seo-gia-iatrous", p.Slug)
	assert.False(t, p.Fallback)

	q := src.queries[0]
	assert.Equal(t, map[string]string{"slug": "seo-gia-iatrous"}, q.Fields)
	assert.Equal(t, 1, q.Limit)
	assert.Equal(t, 3, q.Include)

	assert.Nil(t, r.GetBlogPostBySlug(context.Background(), "missing", false))
}

func TestGetBlogPostBySlugEmptySlugSkipsFetch(t *testing.T) {
	src := &fakeSource{col: collection()}
	r := NewResolver(src, zerolog.Nop())
	assert.Nil(t, r.GetBlogPostBySlug(context.Background(), "  ", false))
	assert.Empty(t, src.queries)
}

func TestGetBlogPostBySlugFailureLogsSlug(t *testing.T) {
	var buf bytes.Buffer
	r := NewResolver(&fakeSource{err: errors.New("timeout")}, zerolog.New(&buf))

	assert.Nil(t, r.GetBlogPostBySlug(context.Background(), "kati", true))
	assert.Contains(t, buf.String(), `"slug":"kati"`)
	assert.Contains(t, buf.String(), `"preview":true`)
}

func TestWithIncludeKeepsMinimum(t *testing.T) {
	src := &fakeSource{col: collection()}
	r := NewResolver(src, zerolog.Nop(), WithInclude(0))
	r.GetAllBlogPosts(context.Background(), false)
	assert.Equal(t, MinInclude, src.queries[0].Include)
}

func TestResolverSurvivesNilSource(t *testing.T) {
	r := NewResolver(nil, zerolog.Nop())
	assert.Empty(t, r.GetAllBlogPosts(context.Background(), false).Items)
	assert.Nil(t, r.GetBlogPostBySlug(context.Background(), "x", false))
}

func TestFallbackScenarioWhenCMSUnreachable(t *testing.T) {
	const slug = "pos-na-veltiosete-tin-katataksi-tou-iatrikou-sas-istotopou-sti-google"
	r := NewResolver(&fakeSource{err: errors.New("no such host")}, zerolog.Nop())

	p := r.GetBlogPostBySlug(context.Background(), slug, false)
	require.Nil(t, p)

	p = GetFallbackPostBySlug(slug)
	require.NotNil(t, p)
	assert.Equal(t, "Πώς να βελτιώσετε την κατάταξη του ιατρικού σας ιστότοπου στη Google", p.Title)
	assert.True(t, p.Fallback)
}

func TestGetRelatedPosts(t *testing.T) {
	a := postEntry("a", "a", "A", "2024-01-01")
	b := postEntry("b", "b", "B", "2024-02-01")
	c := postEntry("c", "c", "C", "2024-03-01")
	d := postEntry("d", "d", "D", "2024-04-01")
	src := &fakeSource{col: collection(a, b, c, d)}
	r := NewResolver(src, zerolog.Nop())

	post := BlogPost{Slug: "c", Related: []RelatedPost{{Slug: "a"}, {Slug: "gone"}}}
	got := r.GetRelatedPosts(context.Background(), post, 2, false)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Slug)
	assert.Equal(t, "d", got[1].Slug)

	assert.Nil(t, r.GetRelatedPosts(context.Background(), post, 0, false))
}

func TestGetRelatedPostsFetchesLinkedPostsOutsideRecentPage(t *testing.T) {
	old := postEntry("a", "palio", "Παλιό", "2022-01-01")
	b := postEntry("b", "b", "B", "2024-02-01")
	c := postEntry("c", "c", "C", "2024-03-01")
	src := &fakeSource{col: collection(old, b, c), list: collection(b, c)}
	r := NewResolver(src, zerolog.Nop())

	post := BlogPost{Slug: "c", Related: []RelatedPost{{Slug: "palio"}}}
	got := r.GetRelatedPosts(context.Background(), post, 3, false)
	require.Len(t, got, 2)
	assert.Equal(t, "palio", got[0].Slug)
	assert.Equal(t, "b", got[1].Slug)
}
