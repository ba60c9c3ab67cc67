package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version VersionCmd `cmd:"" help:"Print version."`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration."`
	Fetch   FetchCmd   `cmd:"" help:"Search Gupy and save the jobs to the job file."`
	Apply   ApplyCmd   `cmd:"" help:"Walk the saved jobs and confirm each application."`
	Run     RunCmd     `cmd:"" default:"withargs" help:"Fetch, then apply (default)."`
	List    ListCmd    `cmd:"" help:"Print the saved jobs."`
}

func NewCLI() *CLI {
	return &CLI{}
}
