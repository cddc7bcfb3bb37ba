package main

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/doctordigital/drdigital"
	"github.com/doctordigital/drdigital/contentful"
	"github.com/doctordigital/drdigital/schema"
)

// Config is read once from the environment at start.
type Config struct {
	Env  string `env:"APP_ENV" env-default:"production"`
	Addr string `env:"ADDR" env-default:":3000"`

	Site struct {
		Name        string   `env:"SITE_NAME" env-default:"Doctor Digital"`
		URL         string   `env:"SITE_URL" env-default:"http://localhost:3000"`
		Description string   `env:"SITE_DESCRIPTION" env-default:"Ψηφιακό marketing για ιατρούς και ιατρεία"`
		Logo        string   `env:"SITE_LOGO" env-default:"/public/images/logo.png"`
		Phone       string   `env:"SITE_PHONE"`
		Email       string   `env:"SITE_EMAIL"`
		SameAs      []string `env:"SITE_SAME_AS" env-separator:","`

		Street     string `env:"SITE_STREET"`
		Locality   string `env:"SITE_LOCALITY"`
		Region     string `env:"SITE_REGION"`
		PostalCode string `env:"SITE_POSTAL_CODE"`
		Country    string `env:"SITE_COUNTRY" env-default:"GR"`
	}

	Contentful struct {
		SpaceID       string `env:"CONTENTFUL_SPACE_ID"`
		Environment   string `env:"CONTENTFUL_ENVIRONMENT" env-default:"master"`
		AccessToken   string `env:"CONTENTFUL_ACCESS_TOKEN"`
		PreviewToken  string `env:"CONTENTFUL_PREVIEW_TOKEN"`
		PreviewSecret string `env:"CONTENTFUL_PREVIEW_SECRET"`
	}

	Cache struct {
		TTL           time.Duration `env:"CACHE_TTL" env-default:"5m"`
		RedisAddr     string        `env:"REDIS_ADDR"`
		RedisPassword string        `env:"REDIS_PASSWORD"`
		RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	}

	EmailRelayAPIKey string `env:"EMAIL_RELAY_API_KEY"`
	SessionSecret    string `env:"SESSION_SECRET"`
	CookieSecure     bool   `env:"COOKIE_SECURE" env-default:"false"`
	ListFallback     bool   `env:"LIST_FALLBACK" env-default:"false"`
}

// loadConfig reads an optional .env file, then the environment. Variables
// already set in the environment win over the file.
func loadConfig(envFile string) (Config, bool, error) {
	loaded := godotenv.Load(envFile) == nil
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, loaded, err
	}
	return cfg, loaded, nil
}

func (c Config) siteConfig() drdigital.SiteConfig {
	return drdigital.SiteConfig{
		Name:          c.Site.Name,
		URL:           c.Site.URL,
		Description:   c.Site.Description,
		Logo:          c.Site.Logo,
		Phone:         c.Site.Phone,
		Email:         c.Site.Email,
		SameAs:        c.Site.SameAs,
		Address: schema.Address{
			Street:     c.Site.Street,
			Locality:   c.Site.Locality,
			Region:     c.Site.Region,
			PostalCode: c.Site.PostalCode,
			Country:    c.Site.Country,
		},
		Addr:          c.Addr,
		PreviewSecret: c.Contentful.PreviewSecret,
		SessionSecret: c.SessionSecret,
		CookieSecure:  c.CookieSecure,
		ListFallback:  c.ListFallback,
	}
}

func (c Config) contentfulConfig(cache contentful.Cache) contentful.Config {
	return contentful.Config{
		SpaceID:      c.Contentful.SpaceID,
		Environment:  c.Contentful.Environment,
		AccessToken:  c.Contentful.AccessToken,
		PreviewToken: c.Contentful.PreviewToken,
		Cache:        cache,
	}
}
