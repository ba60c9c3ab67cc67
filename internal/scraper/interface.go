package scraper

import (
	"context"

	"github.com/adomaitisc/gupy-automation/internal/models"
	fhttp "github.com/bogdanfinn/fhttp"
)

type Scraper interface {
	Name() string
	Search(ctx context.Context, params models.SearchParams) ([]models.Job, error)
}

// Doer sends a prepared request. *network.Client satisfies it.
type Doer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}
