package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"teamdash.dev/teamdash"
	"teamdash.dev/teamdash/agent"
	"teamdash.dev/teamdash/renderer"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI analyst" }
func (*assistCmd) Usage() string {
	return `tdash assist [question]

  Starts an interactive session with an AI analyst primed with the current
  reports. Requires Gemini credentials in the environment.
`
}

func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

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

	// Prime the analyst with every report the dashboard can render.
	var reports strings.Builder
	reports.WriteString(renderer.SummaryMarkdown(teamdash.NewSummaryReport(ds)))
	reports.WriteString("\n")
	reports.WriteString(renderer.BillingMarkdown(teamdash.NewBillingReport(ds, teamdash.Monthly)))
	reports.WriteString("\n")
	reports.WriteString(renderer.TimeMarkdown(teamdash.NewTimeReport(ds)))
	reports.WriteString("\n")
	reports.WriteString(renderer.ScorecardMarkdown(teamdash.NewScorecardReport(ds, targets.Effective(ds.Teams()))))

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, reports.String())
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
