package renderer

import (
	"fmt"
	"strings"

	"teamdash.dev/teamdash"
)

// ScorecardMarkdown renders the team scorecard as a markdown table.
func ScorecardMarkdown(report *teamdash.ScorecardReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Team Scorecard\n\n")

	if len(report.Rows) == 0 {
		fmt.Fprintln(&b, "No team activity in the dataset.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Team | Revenue | Profit | Profitability | Hours | Collected (est.) | Revenue vs Target | Collection vs Target | Utilization vs Target | Profitability vs Target |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, row := range report.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %sh | %s | %s | %s | %s | %s |\n",
			row.Team,
			row.Revenue,
			row.Profit.SignedString(),
			row.ProfitabilityPct,
			row.Hours.Round(1),
			row.CollectedEstimate,
			row.RevenueVsTarget,
			row.CollectionVsTarget,
			row.UtilizationVsTarget,
			row.ProfitabilityVsTarget,
		)
	}

	fmt.Fprint(&b, "\nCollected amounts are estimated by distributing total collections over team revenue share.\n")

	return b.String()
}
