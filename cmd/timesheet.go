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

type timesheetCmd struct{}

func (*timesheetCmd) Name() string     { return "timesheet" }
func (*timesheetCmd) Synopsis() string { return "display time recorded per team" }
func (*timesheetCmd) Usage() string {
	return `tdash timesheet

  Displays hours and billable amounts recorded per team.
`
}

func (*timesheetCmd) SetFlags(*flag.FlagSet) {}

func (c *timesheetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := LoadData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TimeMarkdown(teamdash.NewTimeReport(ds)))
	return subcommands.ExitSuccess
}
