package drdigital

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/doctordigital/drdigital/content"
	"github.com/doctordigital/drdigital/schema"
	"github.com/doctordigital/drdigital/site"
	"github.com/doctordigital/drdigital/views"
)

func (a *App) handleHome(c echo.Context) error {
	posts := a.listPosts(c.Request().Context(), IsPreview(c))
	if len(posts) > a.Config.HomePosts {
		posts = posts[:a.Config.HomePosts]
	}
	p := a.page(c, views.PageMeta{
		Title:  a.Config.Name + " | Ψηφιακό marketing για ιατρούς",
		URL:    a.Config.URL + "/",
		OGType: "website",
	}, a.Schema.Organization(), a.Schema.WebSite())
	return Render(c, a.Views.Home(p, posts, site.Services(), site.Reviews()))
}

func (a *App) handleServices(c echo.Context) error {
	p := a.page(c, views.PageMeta{Title: "Υπηρεσίες | " + a.Config.Name},
		a.crumbs(schema.Crumb{Name: "Υπηρεσίες", URL: "/services/"}))
	return Render(c, a.Views.Services(p, site.Services()))
}

func (a *App) handleService(c echo.Context) error {
	svc, ok := site.ServiceBySlug(c.Param("slug"))
	if !ok {
		return echo.ErrNotFound
	}
	schemas := []schema.Object{
		a.Schema.Service(schema.Service{
			Name:        svc.Name,
			Description: svc.Description,
			URL:         svc.Path(),
			ServiceType: svc.Name,
			AreaServed:  "Ελλάδα",
			Image:       &schema.Image{URL: svc.Image},
		}),
		a.crumbs(
			schema.Crumb{Name: "Υπηρεσίες", URL: "/services/"},
			schema.Crumb{Name: svc.Name, URL: svc.Path()},
		),
	}
	if len(svc.FAQs) > 0 {
		schemas = append(schemas, a.Schema.FAQ(svc.FAQs))
	}
	p := a.page(c, views.PageMeta{
		Title:       svc.Name + " | " + a.Config.Name,
		Description: svc.Summary,
		Image:       a.absURL(svc.Image),
	}, schemas...)
	return Render(c, a.Views.Service(p, svc))
}

func (a *App) handleBlog(c echo.Context) error {
	posts := a.listPosts(c.Request().Context(), IsPreview(c))
	p := a.page(c, views.PageMeta{Title: "Blog | " + a.Config.Name},
		a.crumbs(schema.Crumb{Name: "Blog", URL: "/blog/"}))
	return Render(c, a.Views.Blog(p, posts))
}

// handlePost resolves the post from the CMS, then from the fallback set.
// A slug found in neither renders the NotFound view.
func (a *App) handlePost(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	preview := IsPreview(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), a.Config.FetchTimeout)
	defer cancel()

	post := a.Content.GetBlogPostBySlug(ctx, slug, preview)
	if post == nil {
		post = content.GetFallbackPostBySlug(slug)
		if post == nil {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		a.Log.Info().Str("slug", slug).Msg("serving fallback post")
	}
	related := a.Content.GetRelatedPosts(ctx, *post, a.Config.RelatedPosts, preview)
	if len(related) == 0 && post.Fallback {
		related = content.PickRelated(*post, content.GetAllFallbackPosts(), a.Config.RelatedPosts)
	}

	meta := PostMeta(*post, a.Config)
	p := a.page(c, meta,
		a.Schema.BlogPosting(PostSchema(*post, meta)),
		a.crumbs(
			schema.Crumb{Name: "Blog", URL: "/blog/"},
			schema.Crumb{Name: post.Title, URL: post.Path()},
		),
	)
	if preview {
		p.Meta.NoIndex = true
	}
	return Render(c, a.Views.Post(p, *post, related))
}

func (a *App) handleCaseStudies(c echo.Context) error {
	p := a.page(c, views.PageMeta{Title: "Case studies | " + a.Config.Name},
		a.crumbs(schema.Crumb{Name: "Case studies", URL: "/case-studies/"}))
	return Render(c, a.Views.CaseStudies(p, site.CaseStudies()))
}

func (a *App) handleAbout(c echo.Context) error {
	reviews := site.Reviews()
	schemas := []schema.Object{
		a.Schema.Organization(),
		a.crumbs(schema.Crumb{Name: "Σχετικά", URL: "/about/"}),
	}
	for _, r := range reviews {
		schemas = append(schemas, a.Schema.Review(schema.Review{
			Author:        r.Author,
			Body:          r.Body,
			Rating:        r.Rating,
			DatePublished: r.Date,
		}))
	}
	p := a.page(c, views.PageMeta{Title: "Σχετικά | " + a.Config.Name}, schemas...)
	return Render(c, a.Views.About(p, reviews))
}

func (a *App) handleContact(c echo.Context) error {
	faqs := site.FAQs()
	p := a.page(c, views.PageMeta{Title: "Επικοινωνία | " + a.Config.Name},
		a.Schema.FAQ(faqs),
		a.crumbs(schema.Crumb{Name: "Επικοινωνία", URL: "/contact/"}))
	return Render(c, a.Views.Contact(p, faqs))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\nDisallow: /api/\n\n")
	b.WriteString("Sitemap: " + a.Config.URL + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error().Err(err).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Str("path", c.Request().URL.Path).
			Msg("server error")
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
