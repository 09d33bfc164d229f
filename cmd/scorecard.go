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

type scorecardCmd struct{}

func (*scorecardCmd) Name() string     { return "scorecard" }
func (*scorecardCmd) Synopsis() string { return "display the team scorecard versus targets" }
func (*scorecardCmd) Usage() string {
	return `tdash scorecard

  Displays revenue, profit, hours, and estimated collections per team,
  scored against the targets file.
`
}

func (*scorecardCmd) SetFlags(*flag.FlagSet) {}

func (c *scorecardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := LoadData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	targets, err := LoadTargets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report := teamdash.NewScorecardReport(ds, targets.Effective(ds.Teams()))
	printMarkdown(renderer.ScorecardMarkdown(report))
	return subcommands.ExitSuccess
}
