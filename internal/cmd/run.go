package cmd

import (
	"errors"

	"github.com/adomaitisc/gupy-automation/internal/store"
)

type RunCmd struct {
	FetchOptions
	SkipFetch bool `help:"Skip the fetch phase and apply from the existing job file."`
	SkipApply bool `help:"Stop after the fetch phase."`
}

func (r *RunCmd) Run(ctx *Context) error {
	if r.SkipFetch && r.SkipApply {
		return errors.New("--skip-fetch and --skip-apply leave nothing to run")
	}

	cfg, err := r.resolve(ctx.Config)
	if err != nil {
		return err
	}
	st := store.New(cfg.OutputPath)

	if !r.SkipFetch {
		sc, err := newGupyScraper(ctx, cfg, r.RequireCookies)
		if err != nil {
			return err
		}
		if err := runFetch(ctx, sc, cfg.SearchParams(), st); err != nil {
			return err
		}
	}
	if r.SkipApply {
		return nil
	}
	return runApply(ctx, st)
}
