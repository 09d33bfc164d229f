package renderer

import (
	"fmt"
	"io"
	"strings"

	"teamdash.dev/teamdash"
)

// SummaryMarkdown renders the headline metrics of the dashboard.
func SummaryMarkdown(report *teamdash.SummaryReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Dashboard Summary\n\n")

	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total billed | %s |\n", report.TotalBilled)
	fmt.Fprintf(&b, "| Money collected | %s |\n", report.Collected)
	fmt.Fprintf(&b, "| Total hours recorded | %sh |\n", report.TotalHours.Round(0))
	fmt.Fprintf(&b, "| Average deal margin | %s |\n", report.AverageMargin)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if report.Deals == 0 && report.TimeEntries == 0 && report.Invoices == 0 {
			return false
		}
		fmt.Fprintf(w, "\n%d deals, %d time entries, %d invoices across %d teams.\n",
			report.Deals, report.TimeEntries, report.Invoices, report.Teams)
		return true
	})

	return b.String()
}
