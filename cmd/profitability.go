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

type profitabilityCmd struct{}

func (*profitabilityCmd) Name() string     { return "profitability" }
func (*profitabilityCmd) Synopsis() string { return "display profit and margin per deal" }
func (*profitabilityCmd) Usage() string {
	return `tdash profitability

  Displays deal value, cost to deliver, profit, and margin per deal, most
  profitable first.
`
}

func (*profitabilityCmd) SetFlags(*flag.FlagSet) {}

func (c *profitabilityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := LoadData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProfitabilityMarkdown(teamdash.NewProfitabilityReport(ds)))
	return subcommands.ExitSuccess
}
