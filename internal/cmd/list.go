package cmd

import (
	"io"
	"strings"

	"github.com/adomaitisc/gupy-automation/internal/export"
	"github.com/adomaitisc/gupy-automation/internal/store"
	"github.com/muesli/termenv"
)

type ListCmd struct {
	Input  string `name:"input" short:"i" help:"Job file path (default: output_path from config)."`
	Format string `help:"Output format: table, csv, tsv, json, md." enum:",table,csv,tsv,json,md" default:""`
	Links  string `help:"Table link display: short or full." enum:"short,full" default:"full"`
}

func (l *ListCmd) Run(ctx *Context) error {
	st := store.New(firstNonEmpty(l.Input, ctx.Config.OutputPath))
	jobs, err := st.Read()
	if err != nil {
		return err
	}

	format, err := resolveFormat(ctx, l.Format)
	if err != nil {
		return err
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	hyperlinks := colorEnabled && isTTY(ctx.Out)
	linkStyle := export.LinkStyleFull
	if strings.EqualFold(l.Links, string(export.LinkStyleShort)) {
		linkStyle = export.LinkStyleShort
	}
	return export.WriteJobs(ctx.Out, jobs, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   hyperlinks,
		LinkStyle:    linkStyle,
	})
}

func resolveFormat(ctx *Context, value string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if value != "" {
		return export.ParseFormat(value)
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
