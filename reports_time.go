package teamdash

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// TimeRow aggregates recorded time for one team.
type TimeRow struct {
	Team           string
	Hours          decimal.Decimal
	BillableAmount Money
}

// TimeReport is the time-recorded-per-team view.
type TimeReport struct {
	Rows          []TimeRow
	TotalHours    decimal.Decimal
	TotalBillable Money
}

// NewTimeReport sums hours and billable amounts per team, sorted by hours
// descending.
func NewTimeReport(ds *Dataset) *TimeReport {
	teams := make(map[string]*TimeRow)
	for _, e := range ds.TimeEntries {
		row, ok := teams[e.Team]
		if !ok {
			row = &TimeRow{Team: e.Team}
			teams[e.Team] = row
		}
		row.Hours = row.Hours.Add(e.Hours)
		row.BillableAmount = row.BillableAmount.Add(ds.M(e.BillableAmount))
	}

	report := &TimeReport{}
	for _, row := range teams {
		report.Rows = append(report.Rows, *row)
		report.TotalHours = report.TotalHours.Add(row.Hours)
		report.TotalBillable = report.TotalBillable.Add(row.BillableAmount)
	}
	slices.SortFunc(report.Rows, func(a, b TimeRow) int {
		if c := b.Hours.Cmp(a.Hours); c != 0 {
			return c
		}
		return strings.Compare(a.Team, b.Team)
	})
	return report
}
