package drdigital

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctordigital/drdigital/contentful"
)

const testPreviewSecret = "preview-secret-123"

func previewConfig(c *SiteConfig) {
	c.PreviewSecret = testPreviewSecret
	c.SessionSecret = "0123456789abcdef0123456789abcdef"
}

func TestPreviewFlow(t *testing.T) {
	src := &fakeSource{
		preview: true,
		drafts:  []*contentful.Entry{cmsPost("draft-post", "Πρόχειρο", "2024-09-01")},
	}
	a := newTestApp(t, src, previewConfig)

	// Drafts are invisible without a preview session.
	rec := get(t, a, "/blog/draft-post/")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, a, "/api/preview?secret="+testPreviewSecret+"&slug=draft-post")
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/blog/draft-post/", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = get(t, a, "/blog/draft-post/", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)
	assert.Equal(t, "Πρόχειρο", doc.Find("article.post h1").Text())
	assert.Equal(t, 1, doc.Find(".preview-banner").Length())
	assert.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.True(t, src.sawPreview())

	rec = get(t, a, "/api/exit-preview", cookies...)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	exit := rec.Result().Cookies()
	require.NotEmpty(t, exit)
	assert.Less(t, exit[0].MaxAge, 0)
}

func TestPreviewRejectsWrongSecret(t *testing.T) {
	a := newTestApp(t, &fakeSource{preview: true}, previewConfig)

	for i := 0; i < 5; i++ {
		rec := get(t, a, "/api/preview?secret=wrong")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	}
	rec := get(t, a, "/api/preview?secret="+testPreviewSecret)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestPreviewUnknownSlug(t *testing.T) {
	a := newTestApp(t, &fakeSource{preview: true}, previewConfig)
	rec := get(t, a, "/api/preview?secret="+testPreviewSecret+"&slug=nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestPreviewUnavailableWithoutPreviewToken(t *testing.T) {
	a := newTestApp(t, &fakeSource{preview: false}, previewConfig)
	rec := get(t, a, "/api/preview?secret="+testPreviewSecret)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestPreviewDisabledWithoutSecret(t *testing.T) {
	a := newTestApp(t, &fakeSource{preview: true})
	rec := get(t, a, "/api/preview?secret=")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
