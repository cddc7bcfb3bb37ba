// Package drdigital is the Doctor Digital site engine: brochure pages, a
// CMS-backed blog with static fallback posts, JSON-LD structured data, RSS
// and a sitemap, served with Echo and templ.
//
// Sites provide their own templ components via the ViewFuncs struct; any
// component left nil uses the default from the views package.
package drdigital

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/doctordigital/drdigital/content"
	"github.com/doctordigital/drdigital/schema"
	"github.com/doctordigital/drdigital/site"
	"github.com/doctordigital/drdigital/views"
)

// ViewFuncs holds the templ components the app calls when rendering pages.
type ViewFuncs struct {
	Home        func(p views.Page, posts []content.BlogPost, services []site.Service, reviews []site.Review) templ.Component
	Services    func(p views.Page, services []site.Service) templ.Component
	Service     func(p views.Page, svc site.Service) templ.Component
	Blog        func(p views.Page, posts []content.BlogPost) templ.Component
	Post        func(p views.Page, post content.BlogPost, related []content.BlogPost) templ.Component
	CaseStudies func(p views.Page, studies []site.CaseStudy) templ.Component
	About       func(p views.Page, reviews []site.Review) templ.Component
	Contact     func(p views.Page, faqs []schema.QA) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// DefaultViews returns the components of the views package.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		Services:    views.Services,
		Service:     views.Service,
		Blog:        views.Blog,
		Post:        views.Post,
		CaseStudies: views.CaseStudies,
		About:       views.About,
		Contact:     views.Contact,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

func (v ViewFuncs) withDefaults() ViewFuncs {
	d := DefaultViews()
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.Services == nil {
		v.Services = d.Services
	}
	if v.Service == nil {
		v.Service = d.Service
	}
	if v.Blog == nil {
		v.Blog = d.Blog
	}
	if v.Post == nil {
		v.Post = d.Post
	}
	if v.CaseStudies == nil {
		v.CaseStudies = d.CaseStudies
	}
	if v.About == nil {
		v.About = d.About
	}
	if v.Contact == nil {
		v.Contact = d.Contact
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
	return v
}

// App wires together the content resolver, handlers, middleware and
// templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Content *content.Resolver
	Schema  *schema.Generator
	Views   ViewFuncs
	Log     zerolog.Logger

	src            content.Source
	resolverOpts   []content.Option
	previewLimiter *AttemptLimiter
	customRoutes   []func(*App)
	staticDir      string
	now            func() time.Time
	ready          bool
}

// New creates an App reading blog content from src. *contentful.Clients is
// the production source.
func New(cfg SiteConfig, src content.Source, v ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     v.withDefaults(),
		Log:       zerolog.Nop(),
		src:       src,
		staticDir: "public",
		now:       time.Now,
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	a.Content = content.NewResolver(src, a.Log, a.resolverOpts...)
	a.Schema = schema.NewGenerator(cfg.schemaSite())
	return a
}

// Setup validates the configuration and registers middleware and routes.
// Start calls it; tests call it before using Echo as an http.Handler.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if a.src == nil {
		return errors.New("drdigital: content source is required")
	}
	a.previewLimiter = NewAttemptLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		a.Log.Info().Str("addr", a.Config.Addr).Msg("listening")
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("drdigital: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/services/", a.handleServices)
	e.GET("/services/:slug/", a.handleService)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/case-studies/", a.handleCaseStudies)
	e.GET("/about/", a.handleAbout)
	e.GET("/contact/", a.handleContact)

	e.GET("/api/preview", a.handlePreview)
	e.GET("/api/exit-preview", a.handleExitPreview)
}

// Close releases the content source.
func (a *App) Close() error {
	if c, ok := a.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
