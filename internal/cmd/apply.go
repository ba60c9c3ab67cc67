package cmd

import (
	"strings"

	"github.com/adomaitisc/gupy-automation/internal/apply"
	"github.com/adomaitisc/gupy-automation/internal/store"
)

type ApplyCmd struct {
	Input string `name:"input" short:"i" help:"Job file path (default: output_path from config)."`
}

func (a *ApplyCmd) Run(ctx *Context) error {
	return runApply(ctx, store.New(firstNonEmpty(a.Input, ctx.Config.OutputPath)))
}

// runApply loads the job file before any prompt is shown.
func runApply(ctx *Context, st *store.Store) error {
	ctx.UI.Statusf("Applying for jobs...")
	jobs, err := st.Read()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		ctx.UI.Infof("No jobs in %s.", st.Path)
		return nil
	}

	walker := apply.NewWalker(ctx.In, ctx.UI, ctx.Logger)
	summary := walker.Walk(jobs)

	ctx.Logger.Info().
		Int("jobs", len(jobs)).
		Int("presented", summary.Presented).
		Int("applied", summary.Applied).
		Int("skipped", summary.Skipped).
		Bool("aborted", summary.Aborted).
		Msg("apply walk finished")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
