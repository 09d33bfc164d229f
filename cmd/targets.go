package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"

	"teamdash.dev/teamdash"
)

type targetsCmd struct {
	init bool
}

func (*targetsCmd) Name() string     { return "targets" }
func (*targetsCmd) Synopsis() string { return "show or scaffold the team targets file" }
func (*targetsCmd) Usage() string {
	return `tdash targets [-init]

  Shows the effective targets for every team in the dataset. With -init,
  writes a starter targets file covering those teams with default values.
`
}

func (c *targetsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.init, "init", false, "write a starter targets file instead of showing targets")
}

func (c *targetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := LoadData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.init {
		t := &teamdash.Targets{Teams: make(map[string]teamdash.TeamTargets)}
		for _, team := range ds.Teams() {
			t.Teams[team] = teamdash.DefaultTargets()
		}
		if err := teamdash.SaveTargets(*targetsFile, t); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote targets for %d teams to %s\n", len(t.Teams), *targetsFile)
		return subcommands.ExitSuccess
	}

	targets, err := LoadTargets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	effective := targets.Effective(ds.Teams())

	teams := make([]string, 0, len(effective))
	for team := range effective {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	md := "# Team Targets\n\n| Team | Revenue | Collection | Utilization | Profitability |\n|:---|---:|---:|---:|---:|\n"
	for _, team := range teams {
		t := effective[team]
		md += fmt.Sprintf("| %s | %.0f | %.0f | %.0fh | %.0f%% |\n",
			team, t.Revenue, t.Collection, t.UtilizationHours, t.ProfitabilityPct)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
