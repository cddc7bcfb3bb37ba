package drdigital

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctordigital/drdigital/content"
	"github.com/doctordigital/drdigital/contentful"
)

func TestBuildSitemapFailOpen(t *testing.T) {
	listers := map[string]PostLister{
		"error": func(context.Context) ([]content.BlogPost, error) {
			return nil, errors.New("cms unreachable")
		},
		"panic": func(context.Context) ([]content.BlogPost, error) {
			panic("boom")
		},
		"nil": nil,
	}
	for name, list := range listers {
		t.Run(name, func(t *testing.T) {
			entries := BuildSitemap(context.Background(), "https://doctordigital.gr", list, testNow)
			require.Len(t, entries, 10)
			for _, e := range entries {
				if strings.HasPrefix(e.URL, "https://doctordigital.gr/blog/") {
					assert.Equal(t, "https://doctordigital.gr/blog/", e.URL, "no post entries expected")
				}
			}
		})
	}
}

func TestBuildSitemapStaticRoutes(t *testing.T) {
	entries := BuildSitemap(context.Background(), "https://doctordigital.gr/", nil, testNow)
	urls := make([]string, len(entries))
	for i, e := range entries {
		urls[i] = e.URL
		assert.Equal(t, testNow, e.LastModified)
		assert.Greater(t, e.Priority, 0.0)
	}
	assert.Equal(t, "https://doctordigital.gr/", urls[0])
	assert.Contains(t, urls, "https://doctordigital.gr/blog/")
	assert.Contains(t, urls, "https://doctordigital.gr/services/seo-gia-iatrous/")
	assert.Contains(t, urls, "https://doctordigital.gr/contact/")
}

func TestBuildSitemapPosts(t *testing.T) {
	updated := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	list := func(context.Context) ([]content.BlogPost, error) {
		return []content.BlogPost{
			{Slug: "a", Title: "A", UpdatedAt: updated},
			{Slug: "", Title: "no slug"},
			{Slug: "b", Title: "B", PublishedDate: "2024-02-03"},
		}, nil
	}
	entries := BuildSitemap(context.Background(), "https://doctordigital.gr", list, testNow)
	require.Len(t, entries, 12)

	a := entries[10]
	assert.Equal(t, "https://doctordigital.gr/blog/a/", a.URL)
	assert.Equal(t, updated, a.LastModified)
	assert.Equal(t, 0.6, a.Priority)
	assert.Equal(t, "monthly", a.ChangeFrequency)

	b := entries[11]
	assert.Equal(t, time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), b.LastModified)
}

func TestSitemapHandler(t *testing.T) {
	src := &fakeSource{entries: []*contentful.Entry{cmsPost("seo-gia-iatrous", "SEO", "2024-05-01")}}
	a := newTestApp(t, src)

	rec := get(t, a, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")

	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))
	require.Len(t, set.URLs, 11)
	last := set.URLs[10]
	assert.Equal(t, "https://doctordigital.gr/blog/seo-gia-iatrous/", last.Loc)
	assert.Equal(t, "2024-06-01", last.LastMod)
	assert.Equal(t, "0.6", last.Priority)
	assert.Equal(t, "1.0", set.URLs[0].Priority)
}

func TestSitemapHandlerCMSDown(t *testing.T) {
	for _, listFallback := range []bool{false, true} {
		a := newTestApp(t, &fakeSource{err: errors.New("dial tcp: i/o timeout")},
			func(c *SiteConfig) { c.ListFallback = listFallback })

		rec := get(t, a, "/sitemap.xml")
		require.Equal(t, http.StatusOK, rec.Code)
		var set sitemapURLSet
		require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))
		assert.Len(t, set.URLs, 10, "ListFallback=%v", listFallback)
		for _, u := range set.URLs {
			assert.NotContains(t, u.Loc, "/blog/pos-na-veltiosete", "ListFallback=%v", listFallback)
		}
	}
}
