package teamdash

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// ScorecardRow measures one team against its targets.
type ScorecardRow struct {
	Team              string
	Revenue           Money
	Profit            Money
	ProfitabilityPct  Percent
	Hours             decimal.Decimal
	CollectedEstimate Money

	// Achievement versus targets, 0 when the corresponding target is 0.
	RevenueVsTarget       Percent
	CollectionVsTarget    Percent
	UtilizationVsTarget   Percent
	ProfitabilityVsTarget Percent
}

// ScorecardReport is the auto-generated team scorecard.
type ScorecardReport struct {
	Rows []ScorecardRow
}

// NewScorecardReport joins deal profitability and recorded time per team
// (teams present in only one source still appear), estimates collections by
// revenue share, and scores each team against its targets. Teams missing from
// the targets map are scored against zero targets.
func NewScorecardReport(ds *Dataset, targets map[string]TeamTargets) *ScorecardReport {
	type teamAgg struct {
		revenue decimal.Decimal
		profit  decimal.Decimal
		hours   decimal.Decimal
	}
	teams := make(map[string]*teamAgg)
	at := func(team string) *teamAgg {
		agg, ok := teams[team]
		if !ok {
			agg = &teamAgg{}
			teams[team] = agg
		}
		return agg
	}

	totalRevenue := decimal.Zero
	for _, d := range ds.Deals {
		agg := at(d.Team)
		agg.revenue = agg.revenue.Add(d.Value)
		agg.profit = agg.profit.Add(d.Value.Sub(d.Cost))
		totalRevenue = totalRevenue.Add(d.Value)
	}
	for _, e := range ds.TimeEntries {
		agg := at(e.Team)
		agg.hours = agg.hours.Add(e.Hours)
	}

	totalCollected := ds.TotalCollected()

	report := &ScorecardReport{}
	for team, agg := range teams {
		revenue := ds.M(agg.revenue)
		profit := ds.M(agg.profit)
		profitability := profit.Share(revenue)

		// The accounting source has no team attribution, so the collected
		// estimate distributes total collections by revenue share.
		var collected Money
		if !totalRevenue.IsZero() {
			collected = totalCollected.Scale(agg.revenue.Div(totalRevenue))
		} else {
			collected = ds.M(decimal.Zero)
		}

		t := targets[team]
		row := ScorecardRow{
			Team:                  team,
			Revenue:               revenue,
			Profit:                profit,
			ProfitabilityPct:      profitability,
			Hours:                 agg.hours,
			CollectedEstimate:     collected,
			RevenueVsTarget:       vsTarget(revenue.Amount().InexactFloat64(), t.Revenue),
			CollectionVsTarget:    vsTarget(collected.Amount().InexactFloat64(), t.Collection),
			UtilizationVsTarget:   vsTarget(agg.hours.InexactFloat64(), t.UtilizationHours),
			ProfitabilityVsTarget: vsTarget(float64(profitability), t.ProfitabilityPct),
		}
		report.Rows = append(report.Rows, row)
	}

	slices.SortFunc(report.Rows, func(a, b ScorecardRow) int {
		if a.Revenue.Equal(b.Revenue) {
			return strings.Compare(a.Team, b.Team)
		}
		if a.Revenue.LessThan(b.Revenue) {
			return 1
		}
		return -1
	})
	return report
}

func vsTarget(value, target float64) Percent {
	if target == 0 {
		return 0
	}
	return Percent(value / target * 100)
}
