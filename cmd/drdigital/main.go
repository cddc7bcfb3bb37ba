package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/doctordigital/drdigital"
	"github.com/doctordigital/drdigital/content"
	"github.com/doctordigital/drdigital/contentful"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := run(serve); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sitemap":
		if err := run(printSitemap); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("drdigital %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`drdigital - the Doctor Digital site server

Usage:
  drdigital [command]

Commands:
  serve         Start the web server (default)
  sitemap       Print the sitemap URLs resolved from the CMS
  version       Print the version
  help          Show this help message

Configuration is read from the environment and an optional .env file.`)
}

type command func(ctx context.Context, cfg Config, cms *contentful.Clients, log zerolog.Logger) error

// run loads the configuration, builds the CMS clients and runs fn until
// SIGINT or SIGTERM. Missing CMS credentials abort here.
func run(fn command) error {
	cfg, fromFile, err := loadConfig(".env")
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	log := drdigital.NewLogger(cfg.Env, os.Stderr)
	if !fromFile {
		log.Debug().Msg("no .env file found, using environment only")
	}

	cms, err := contentful.New(cfg.contentfulConfig(newCache(cfg, log)))
	if err != nil {
		return err
	}
	defer cms.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return fn(ctx, cfg, cms, log)
}

// newCache returns the shared Redis cache when REDIS_ADDR is set and
// reachable, otherwise an in-process cache.
func newCache(cfg Config, log zerolog.Logger) contentful.Cache {
	if cfg.Cache.TTL <= 0 {
		return nil
	}
	if cfg.Cache.RedisAddr != "" {
		rc := contentful.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, cfg.Cache.TTL)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err := rc.Ping(ctx)
		if err == nil {
			return rc
		}
		log.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("redis unavailable, using in-memory cache")
		rc.Close()
	}
	return contentful.NewMemoryCache(cfg.Cache.TTL, 256)
}

func serve(ctx context.Context, cfg Config, cms *contentful.Clients, log zerolog.Logger) error {
	app := drdigital.New(cfg.siteConfig(), cms, drdigital.DefaultViews(),
		drdigital.WithLogger(log),
		drdigital.WithStaticDir("public"),
	)
	defer app.Close()

	log.Info().
		Str("version", version).
		Bool("preview", cms.PreviewEnabled()).
		Bool("email_relay", cfg.EmailRelayAPIKey != "").
		Bool("list_fallback", cfg.ListFallback).
		Msg("starting")
	return app.Start(ctx)
}

func printSitemap(ctx context.Context, cfg Config, cms *contentful.Clients, log zerolog.Logger) error {
	lister := drdigital.ResolverLister(content.NewResolver(cms, log), 0)
	for _, e := range drdigital.BuildSitemap(ctx, cfg.Site.URL, lister, time.Now()) {
		fmt.Printf("%s\t%s\t%.1f\n", e.URL, e.ChangeFrequency, e.Priority)
	}
	return nil
}
