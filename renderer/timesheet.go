package renderer

import (
	"fmt"
	"strings"

	"teamdash.dev/teamdash"
)

// TimeMarkdown renders the time-recorded-per-team report as a markdown table.
func TimeMarkdown(report *teamdash.TimeReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Time Recorded per Team\n\n")

	if len(report.Rows) == 0 {
		fmt.Fprintln(&b, "No time entries in the dataset.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Team | Hours | Billable Amount |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, row := range report.Rows {
		fmt.Fprintf(&b, "| %s | %sh | %s |\n",
			row.Team,
			row.Hours.Round(1),
			row.BillableAmount,
		)
	}
	fmt.Fprintf(&b, "| **Total** | **%sh** | **%s** |\n",
		report.TotalHours.Round(1),
		report.TotalBillable,
	)

	return b.String()
}
