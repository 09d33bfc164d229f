package teamdash

import (
	"slices"
	"strings"
)

// BillingRow aggregates invoices over one period bucket.
type BillingRow struct {
	Bucket      string // e.g. "2025-07" for monthly, "2025" for yearly
	TotalBilled Money
	Collected   Money
	Outstanding Money
}

// BillingReport is the billing and collections view, bucketed by period.
type BillingReport struct {
	Period Period
	Rows   []BillingRow
	Total  BillingRow
}

// NewBillingReport groups invoices into period buckets, sorted chronologically.
func NewBillingReport(ds *Dataset, p Period) *BillingReport {
	buckets := make(map[string]*BillingRow)
	for _, inv := range ds.Invoices {
		key := p.Bucket(inv.Date)
		row, ok := buckets[key]
		if !ok {
			row = &BillingRow{Bucket: key}
			buckets[key] = row
		}
		row.TotalBilled = row.TotalBilled.Add(ds.M(inv.Total))
		row.Collected = row.Collected.Add(ds.M(inv.AmountPaid))
		row.Outstanding = row.Outstanding.Add(ds.M(inv.AmountDue))
	}

	report := &BillingReport{Period: p, Total: BillingRow{Bucket: "Total"}}
	for _, row := range buckets {
		report.Rows = append(report.Rows, *row)
		report.Total.TotalBilled = report.Total.TotalBilled.Add(row.TotalBilled)
		report.Total.Collected = report.Total.Collected.Add(row.Collected)
		report.Total.Outstanding = report.Total.Outstanding.Add(row.Outstanding)
	}
	slices.SortFunc(report.Rows, func(a, b BillingRow) int {
		return strings.Compare(a.Bucket, b.Bucket)
	})
	return report
}
