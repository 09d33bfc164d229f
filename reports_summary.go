package teamdash

import "github.com/shopspring/decimal"

// SummaryReport carries the four headline metrics of the dashboard.
type SummaryReport struct {
	TotalBilled   Money
	Collected     Money
	TotalHours    decimal.Decimal
	AverageMargin Percent

	Deals       int
	TimeEntries int
	Invoices    int
	Teams       int
}

// NewSummaryReport computes the headline metrics from a dataset.
func NewSummaryReport(ds *Dataset) *SummaryReport {
	profitability := NewProfitabilityReport(ds)
	return &SummaryReport{
		TotalBilled:   ds.TotalBilled(),
		Collected:     ds.TotalCollected(),
		TotalHours:    ds.TotalHours(),
		AverageMargin: profitability.AverageMargin,
		Deals:         len(ds.Deals),
		TimeEntries:   len(ds.TimeEntries),
		Invoices:      len(ds.Invoices),
		Teams:         len(ds.Teams()),
	}
}
