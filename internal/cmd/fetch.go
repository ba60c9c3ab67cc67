package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/adomaitisc/gupy-automation/internal/config"
	"github.com/adomaitisc/gupy-automation/internal/models"
	"github.com/adomaitisc/gupy-automation/internal/network"
	"github.com/adomaitisc/gupy-automation/internal/scraper"
	"github.com/adomaitisc/gupy-automation/internal/store"
)

type FetchCmd struct {
	FetchOptions
}

type FetchOptions struct {
	Query          []string `name:"query" short:"q" help:"Search phrase, repeatable or comma-separated (default: search_queries from config)."`
	Limit          int      `help:"Maximum results per query (default: search_limit from config)."`
	Remote         bool     `help:"Keep remote jobs only."`
	NoEnrich       bool     `help:"Do not keep ids or derive application URLs."`
	Output         string   `name:"output" short:"o" help:"Job file path (default: output_path from config)."`
	Proxy          string   `help:"Proxy URL for portal requests."`
	RequireCookies bool     `help:"Fail when the cookie environment variable is not set."`
}

func (f *FetchCmd) Run(ctx *Context) error {
	cfg, err := f.resolve(ctx.Config)
	if err != nil {
		return err
	}
	sc, err := newGupyScraper(ctx, cfg, f.RequireCookies)
	if err != nil {
		return err
	}
	return runFetch(ctx, sc, cfg.SearchParams(), store.New(cfg.OutputPath))
}

// resolve layers the command flags over the loaded configuration.
func (o FetchOptions) resolve(cfg config.Config) (config.Config, error) {
	if queries := normalizeQueries(o.Query); len(queries) > 0 {
		cfg.SearchQueries = queries
	}
	if o.Limit != 0 {
		cfg.SearchLimit = o.Limit
	}
	if o.Remote {
		cfg.RemoteOnly = true
	}
	if o.NoEnrich {
		cfg.Enrich = false
	}
	if strings.TrimSpace(o.Output) != "" {
		cfg.OutputPath = o.Output
	}
	if strings.TrimSpace(o.Proxy) != "" {
		cfg.Proxy = o.Proxy
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func normalizeQueries(raw []string) []string {
	queries := make([]string, 0, len(raw))
	for _, query := range raw {
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		queries = append(queries, query)
	}
	return queries
}

func newGupyScraper(ctx *Context, cfg config.Config, requireCookies bool) (scraper.Scraper, error) {
	ctx.UI.Statusf("Initializing...")
	cookies, err := network.CookiesFromEnv(cfg.CookieEnv, os.LookupEnv)
	if err != nil {
		if requireCookies {
			return nil, err
		}
		ctx.Logger.Warn().Err(err).Msg("continuing without session cookies")
		ctx.UI.Warnf("%s is not set; requests will be unauthenticated", cfg.CookieEnv)
	}

	client, err := network.NewClient(cfg.NetworkOptions())
	if err != nil {
		return nil, err
	}
	client.SetSessionCookies(cookies)
	ctx.Logger.Debug().Int("cookies", len(cookies)).Msg("session configured")

	return scraper.NewGupy(client, ctx.Logger), nil
}

// runFetch searches every query and, only when all of them succeed, replaces
// the job file with the result.
func runFetch(ctx *Context, sc scraper.Scraper, params models.SearchParams, st *store.Store) error {
	ctx.UI.Statusf("Getting jobs...")
	if len(params.Queries) == 0 {
		ctx.UI.Warnf("No search queries configured.")
	}

	jobs, err := sc.Search(ctx.baseContext(), params)
	if err != nil {
		return fmt.Errorf("%s: %w", sc.Name(), err)
	}
	if err := st.Write(jobs); err != nil {
		return err
	}

	ctx.Logger.Info().
		Int("queries", len(params.Queries)).
		Int("jobs", len(jobs)).
		Bool("remote_only", params.RemoteOnly).
		Str("path", st.Path).
		Msg("fetch complete")
	ctx.UI.Successf("Saved %d jobs to %s", len(jobs), st.Path)
	return nil
}
