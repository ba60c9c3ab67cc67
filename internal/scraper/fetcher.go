package scraper

import (
	"context"
	"fmt"
	"io"

	"github.com/adomaitisc/gupy-automation/internal/models"
	"github.com/adomaitisc/gupy-automation/internal/network"
	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/rs/zerolog"
)

// Fetcher requests search URLs one at a time and maps every kept listing.
type Fetcher struct {
	client Doer
	mapper Mapper
	logger zerolog.Logger
}

func NewFetcher(client Doer, mapper Mapper, logger zerolog.Logger) *Fetcher {
	return &Fetcher{client: client, mapper: mapper, logger: logger}
}

// Fetch returns the jobs of every URL concatenated in URL order. Any failure
// aborts the whole fetch and no partial result is returned.
func (f *Fetcher) Fetch(ctx context.Context, urls []string, remoteOnly bool) ([]models.Job, error) {
	var jobs []models.Job
	for _, target := range urls {
		listings, err := f.fetchListings(ctx, target, remoteOnly)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", target, err)
		}

		for _, listing := range listings {
			job, err := f.mapper.Map(listing)
			if err != nil {
				return nil, fmt.Errorf("map listing %d: %w", listing.ID, err)
			}
			jobs = append(jobs, job)
		}

		f.logger.Debug().
			Str("url", target).
			Int("kept", len(listings)).
			Bool("remote_only", remoteOnly).
			Msg("fetched search page")
	}
	return jobs, nil
}

func (f *Fetcher) fetchListings(ctx context.Context, target string, remoteOnly bool) ([]Listing, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: http %d", network.ErrRequestFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeSearchResponse(body, remoteOnly)
}
