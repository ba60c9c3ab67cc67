package scraper

import (
	"context"

	"github.com/adomaitisc/gupy-automation/internal/models"
	"github.com/rs/zerolog"
)

const (
	SiteGupy = "gupy"

	DefaultQueryURL = "https://portal.api.gupy.io/api/job?name=TITLE&offset=0&limit=LIMIT"
	DefaultApplyURL = "URL/candidates/jobs/ID/apply?jobBoardSource=gupy_portal"
)

// Gupy searches the Gupy portal API.
type Gupy struct {
	client Doer
	logger zerolog.Logger
}

func NewGupy(client Doer, logger zerolog.Logger) *Gupy {
	return &Gupy{client: client, logger: logger}
}

func (g *Gupy) Name() string {
	return SiteGupy
}

// Search runs every query of params in order, one page each.
func (g *Gupy) Search(ctx context.Context, params models.SearchParams) ([]models.Job, error) {
	urls := BuildSearchURLs(params.QueryTemplate, params.Queries, params.Limit)
	mapper := Mapper{ApplyTemplate: params.ApplyTemplate, Enrich: params.Enrich}
	return NewFetcher(g.client, mapper, g.logger).Fetch(ctx, urls, params.RemoteOnly)
}
