package teamdash

import (
	"slices"
	"strings"
)

// DealProfit is the profitability view of a single deal.
type DealProfit struct {
	Name   string
	Team   string
	Value  Money
	Cost   Money
	Profit Money
	Margin Percent // profit as a share of the deal value, 0 for valueless deals
}

// ProfitabilityReport lists deals by decreasing profit.
type ProfitabilityReport struct {
	Rows          []DealProfit
	TotalProfit   Money
	AverageMargin Percent // unweighted mean of per-deal margins
}

// NewProfitabilityReport computes profit and margin per deal.
func NewProfitabilityReport(ds *Dataset) *ProfitabilityReport {
	report := &ProfitabilityReport{}
	var marginSum float64
	for _, d := range ds.Deals {
		value := ds.M(d.Value)
		cost := ds.M(d.Cost)
		profit := value.Sub(cost)
		row := DealProfit{
			Name:   d.Name,
			Team:   d.Team,
			Value:  value,
			Cost:   cost,
			Profit: profit,
			Margin: profit.Share(value),
		}
		report.Rows = append(report.Rows, row)
		report.TotalProfit = report.TotalProfit.Add(profit)
		marginSum += float64(row.Margin)
	}
	if n := len(report.Rows); n > 0 {
		report.AverageMargin = Percent(marginSum / float64(n))
	}
	slices.SortFunc(report.Rows, func(a, b DealProfit) int {
		if a.Profit.Equal(b.Profit) {
			return strings.Compare(a.Name, b.Name)
		}
		if a.Profit.LessThan(b.Profit) {
			return 1
		}
		return -1
	})
	return report
}
