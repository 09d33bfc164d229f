package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"teamdash.dev/teamdash"
	"teamdash.dev/teamdash/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the headline metrics of the dashboard" }
func (*summaryCmd) Usage() string {
	return `tdash summary

  Displays total billed, money collected, hours recorded, and average deal
  margin.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := LoadData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(teamdash.NewSummaryReport(ds)))
	return subcommands.ExitSuccess
}
