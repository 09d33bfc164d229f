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

type billingCmd struct {
	period string
}

func (*billingCmd) Name() string     { return "billing" }
func (*billingCmd) Synopsis() string { return "display billing and collections per month or year" }
func (*billingCmd) Usage() string {
	return `tdash billing [-p <period>]

  Displays total billed, collected, and outstanding amounts bucketed by
  month, quarter, or year.
`
}

func (c *billingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", teamdash.Monthly.Name(), "bucket period (month, quarter, year)")
}

func (c *billingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := teamdash.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ds, err := LoadData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BillingMarkdown(teamdash.NewBillingReport(ds, period)))
	return subcommands.ExitSuccess
}
