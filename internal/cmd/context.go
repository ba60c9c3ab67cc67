package cmd

import (
	"context"
	"io"

	"github.com/adomaitisc/gupy-automation/internal/config"
	"github.com/adomaitisc/gupy-automation/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	RunCtx     context.Context
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode
}

func (c *Context) baseContext() context.Context {
	if c.RunCtx == nil {
		return context.Background()
	}
	return c.RunCtx
}
