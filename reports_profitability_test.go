package teamdash

import "testing"

func TestProfitabilityReport(t *testing.T) {
	report := NewProfitabilityReport(fixtureDataset())

	// sorted by profit, best deal first
	wantNames := []string{"Acme rollout", "Initech support", "Globex audit"}
	if len(report.Rows) != len(wantNames) {
		t.Fatalf("got %d rows, want %d", len(report.Rows), len(wantNames))
	}
	for i, row := range report.Rows {
		if row.Name != wantNames[i] {
			t.Errorf("row %d name = %q, want %q", i, row.Name, wantNames[i])
		}
	}

	acme := report.Rows[0]
	if !acme.Profit.Equal(USD(40000)) {
		t.Errorf("acme profit = %v, want %v", acme.Profit, USD(40000))
	}
	if !acme.Margin.Equal(40) {
		t.Errorf("acme margin = %v, want 40%%", acme.Margin)
	}

	// a deal can lose money
	globex := report.Rows[2]
	if !globex.Profit.Equal(USD(-5000)) {
		t.Errorf("globex profit = %v, want %v", globex.Profit, USD(-5000))
	}
	if !globex.Margin.Equal(-10) {
		t.Errorf("globex margin = %v, want -10%%", globex.Margin)
	}

	if !report.TotalProfit.Equal(USD(60000)) {
		t.Errorf("total profit = %v, want %v", report.TotalProfit, USD(60000))
	}
	// unweighted mean of 40, 50 and -10
	if !report.AverageMargin.Equal(80.0 / 3.0) {
		t.Errorf("average margin = %v, want %.4f", report.AverageMargin, 80.0/3.0)
	}
}

func TestProfitabilityReportZeroValueDeal(t *testing.T) {
	ds := NewDataset()
	ds.Deals = []Deal{{Name: "Freebie", Team: "Growth", CloseDate: MustParseDate("2025-01-01"), Value: dec(0), Cost: dec(100)}}
	report := NewProfitabilityReport(ds)
	if !report.Rows[0].Margin.Equal(0) {
		t.Errorf("zero value deal margin = %v, want 0", report.Rows[0].Margin)
	}
}
