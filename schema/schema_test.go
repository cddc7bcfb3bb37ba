package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator() *Generator {
	return NewGenerator(Site{
		Name:     "Doctor Digital",
		URL:      "https://doctordigital.gr/",
		Logo:     "/public/logo.png",
		Language: "el",
		SameAs:   []string{"https://www.facebook.com/doctordigital"},
		Phone:    "+30 210 0000000",
	})
}

func TestBreadcrumbPreservesOrder(t *testing.T) {
	g := testGenerator()
	o := g.Breadcrumb([]Crumb{{Name: "Αρχική", URL: "/"}, {Name: "Blog", URL: "/blog"}})

	assert.Equal(t, "BreadcrumbList", o["@type"])
	items := o["itemListElement"].([]Object)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0]["position"])
	assert.Equal(t, "Αρχική", items[0]["name"])
	assert.Equal(t, "https://doctordigital.gr/", items[0]["item"])
	assert.Equal(t, 2, items[1]["position"])
	assert.Equal(t, "Blog", items[1]["name"])
	assert.Equal(t, "https://doctordigital.gr/blog", items[1]["item"])
}

func TestFAQEmptyInput(t *testing.T) {
	g := testGenerator()
	for _, in := range [][]QA{nil, {}} {
		o := g.FAQ(in)
		require.NotNil(t, o)
		assert.Equal(t, "FAQPage", o["@type"])
		list, ok := o["mainEntity"].([]Object)
		require.True(t, ok)
		assert.Empty(t, list)
		assert.Contains(t, Marshal(o), `"mainEntity":[]`)
	}
}

func TestFAQ(t *testing.T) {
	o := testGenerator().FAQ([]QA{
		{Question: "Πόσο κοστίζει;", Answer: "Ανάλογα με το πακέτο."},
		{Question: "Πόσο διαρκεί;", Answer: "Τρεις μήνες."},
	})
	list := o["mainEntity"].([]Object)
	require.Len(t, list, 2)
	assert.Equal(t, "Πόσο κοστίζει;", list[0]["name"])
	assert.Equal(t, "Τρεις μήνες.", list[1]["acceptedAnswer"].(Object)["text"])
}

func TestBlogPostingDefaults(t *testing.T) {
	g := testGenerator()
	o := g.BlogPosting(Post{
		Headline:      "Τίτλος",
		URL:           "/blog/titlos/",
		DatePublished: "2024-05-01",
		Image:         &Image{URL: "https://images.ctfassets.net/a.jpg", Width: 800, Height: 600},
		AuthorName:    "Δρ. Παπαδόπουλος",
	})

	assert.Equal(t, "2024-05-01", o["dateModified"])
	assert.Equal(t, "https://doctordigital.gr/blog/titlos/", o["url"])
	assert.Equal(t, "ImageObject", o["image"].(Object)["@type"])
	assert.Equal(t, "Person", o["author"].(Object)["@type"])
	pub := o["publisher"].(Object)
	assert.Equal(t, "Organization", pub["@type"])
	assert.Equal(t, "https://doctordigital.gr/public/logo.png", pub["logo"].(Object)["url"])

	for _, key := range []string{"description", "keywords", "wordCount"} {
		_, ok := o[key]
		assert.False(t, ok, "%s should be omitted", key)
	}
}

func TestBlogPostingWithoutAuthorUsesOrganization(t *testing.T) {
	o := testGenerator().BlogPosting(Post{Headline: "x", DatePublished: "2024-01-01", DateModified: "2024-02-01"})
	assert.Equal(t, "Organization", o["author"].(Object)["@type"])
	assert.Equal(t, "2024-02-01", o["dateModified"])
	_, ok := o["image"]
	assert.False(t, ok)
}

func TestServiceProviderDefaultsToOrganization(t *testing.T) {
	g := testGenerator()
	o := g.Service(Service{Name: "SEO για ιατρούς", URL: "/services/seo/"})
	assert.Equal(t, "Doctor Digital", o["provider"].(Object)["name"])
	_, ok := o["areaServed"]
	assert.False(t, ok)

	custom := Object{"@type": "Person", "name": "Άλλος"}
	o = g.Service(Service{Name: "x", Provider: custom, AreaServed: "Ελλάδα"})
	assert.Equal(t, custom, o["provider"])
	assert.Equal(t, "Ελλάδα", o["areaServed"].(Object)["name"])
}

func TestOrganization(t *testing.T) {
	o := testGenerator().Organization()
	assert.Equal(t, "https://doctordigital.gr", o["url"])
	assert.Equal(t, []string{"https://www.facebook.com/doctordigital"}, o["sameAs"])
	cp := o["contactPoint"].(Object)
	assert.Equal(t, "+30 210 0000000", cp["telephone"])
	_, ok := cp["email"]
	assert.False(t, ok)
	_, ok = o["address"]
	assert.False(t, ok)

	bare := NewGenerator(Site{Name: "x"}).Organization()
	for _, key := range []string{"url", "logo", "sameAs", "contactPoint", "description"} {
		_, ok := bare[key]
		assert.False(t, ok, key)
	}
}

func TestReview(t *testing.T) {
	o := testGenerator().Review(Review{Author: "Μαρία", Body: "Εξαιρετική συνεργασία.", Rating: 5})
	rating := o["reviewRating"].(Object)
	assert.Equal(t, 5.0, rating["ratingValue"])
	assert.Equal(t, 5.0, rating["bestRating"])
	assert.Equal(t, "Organization", o["itemReviewed"].(Object)["@type"])

	noRating := testGenerator().Review(Review{Author: "Γιώργος"})
	_, ok := noRating["reviewRating"]
	assert.False(t, ok)
}

func TestNoNullsInOutput(t *testing.T) {
	g := NewGenerator(Site{Name: "x", URL: "https://x.gr"})
	objs := []Object{
		g.BlogPosting(Post{Headline: "h"}),
		g.Service(Service{Name: "s"}),
		g.Organization(),
		g.Review(Review{}),
		g.WebSite(),
	}
	for _, o := range objs {
		s := Marshal(o)
		assert.NotContains(t, s, "null", s)
		assert.NotContains(t, s, `""`, s)
	}
}

func TestScriptsEmitSiblingTags(t *testing.T) {
	g := testGenerator()
	var buf bytes.Buffer
	err := Scripts(g.Organization(), g.WebSite(), nil).Render(context.Background(), &buf)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	scripts := doc.Find(`script[type="application/ld+json"]`)
	require.Equal(t, 2, scripts.Length())

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(scripts.First().Text()), &first))
	assert.Equal(t, "Organization", first["@type"])
	assert.Equal(t, Context, first["@context"])
}

func TestScriptEscapesClosingTags(t *testing.T) {
	var buf bytes.Buffer
	o := Object{"@type": "Thing", "name": "</script><b>x</b>"}
	require.NoError(t, Script(o).Render(context.Background(), &buf))
	assert.Equal(t, 1, strings.Count(buf.String(), "</script>"))
}
