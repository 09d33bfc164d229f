package renderer

import (
	"fmt"
	"strings"

	"teamdash.dev/teamdash"
)

// ProfitabilityMarkdown renders the deal profitability report as a markdown table.
func ProfitabilityMarkdown(report *teamdash.ProfitabilityReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Deal Profitability\n\n")

	if len(report.Rows) == 0 {
		fmt.Fprintln(&b, "No deals in the dataset.")
		return b.String()
	}

	fmt.Fprintf(&b, "Average margin: %s\n\n", report.AverageMargin)

	fmt.Fprintln(&b, "| Deal | Team | Value | Cost to Deliver | Profit | Margin |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")
	for _, row := range report.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			row.Name,
			row.Team,
			row.Value,
			row.Cost,
			row.Profit.SignedString(),
			row.Margin,
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | | **%s** | |\n", report.TotalProfit.SignedString())

	return b.String()
}
