package drdigital

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rs/zerolog"

	"github.com/doctordigital/drdigital/content"
	"github.com/doctordigital/drdigital/schema"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string // Site name (default "Doctor Digital")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags, RSS and JSON-LD
	Logo        string // Logo path or URL for the Organization schema
	Phone       string
	Email       string
	SameAs      []string // social profile URLs
	Language    string   // default "el"

	// Address is the office address of the Organization schema. It is
	// published only when a street or locality is set.
	Address schema.Address

	Addr string // Listen address (default ":3000")

	PreviewSecret string // Shared secret of /api/preview; empty disables preview mode
	SessionSecret string // Required when PreviewSecret is set
	CookieSecure  bool   // Set true for HTTPS

	// ListFallback makes list views show the fallback posts when the CMS
	// returns no posts. Single post views always consult the fallback set.
	ListFallback bool

	RelatedPosts int           // related posts on a post page (default 3)
	HomePosts    int           // latest posts on the home page (default 3)
	FetchTimeout time.Duration // per-request CMS budget (default 8s)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Doctor Digital"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Language == "" {
		c.Language = "el"
	}
	if c.RelatedPosts == 0 {
		c.RelatedPosts = 3
	}
	if c.HomePosts == 0 {
		c.HomePosts = 3
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 8 * time.Second
	}
}

// Validate checks the configuration after defaults have been applied.
func (c SiteConfig) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.URL, validation.Required, is.URL),
		validation.Field(&c.Email, is.EmailFormat),
		validation.Field(&c.SameAs, validation.Each(is.URL)),
		validation.Field(&c.SessionSecret,
			validation.When(c.PreviewSecret != "", validation.Required, validation.Length(16, 0)),
		),
		validation.Field(&c.RelatedPosts, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("drdigital: invalid config: %w", err)
	}
	return nil
}

func (c SiteConfig) schemaSite() schema.Site {
	var addr *schema.Address
	if c.Address.Street != "" || c.Address.Locality != "" {
		addr = &c.Address
	}
	return schema.Site{
		Name:        c.Name,
		URL:         c.URL,
		Logo:        c.Logo,
		Description: c.Description,
		Language:    c.Language,
		SameAs:      c.SameAs,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     addr,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger sets the application logger (default: disabled).
func WithLogger(log zerolog.Logger) Option {
	return func(a *App) {
		a.Log = log
	}
}

// WithResolverOptions passes options to the content resolver.
func WithResolverOptions(opts ...content.Option) Option {
	return func(a *App) {
		a.resolverOpts = append(a.resolverOpts, opts...)
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
