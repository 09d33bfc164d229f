package renderer

import (
	"fmt"
	"strings"

	"teamdash.dev/teamdash"
)

// BillingMarkdown renders the billing and collections report as a markdown table.
func BillingMarkdown(report *teamdash.BillingReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Billing by %s\n\n", title(report.Period.Name()))

	if len(report.Rows) == 0 {
		fmt.Fprintln(&b, "No invoices in the dataset.")
		return b.String()
	}

	fmt.Fprintf(&b, "| %s | Total Billed | Collected | Outstanding |\n", title(report.Period.Name()))
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, row := range report.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			row.Bucket,
			row.TotalBilled,
			row.Collected,
			row.Outstanding,
		)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** |\n",
		report.Total.TotalBilled,
		report.Total.Collected,
		report.Total.Outstanding,
	)

	return b.String()
}
