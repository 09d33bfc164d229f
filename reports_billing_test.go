package teamdash

import "testing"

func TestBillingReportMonthly(t *testing.T) {
	report := NewBillingReport(fixtureDataset(), Monthly)

	if len(report.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(report.Rows))
	}
	wantBuckets := []string{"2024-12", "2025-01", "2025-02"}
	for i, row := range report.Rows {
		if row.Bucket != wantBuckets[i] {
			t.Errorf("row %d bucket = %q, want %q", i, row.Bucket, wantBuckets[i])
		}
	}

	feb := report.Rows[2]
	if !feb.TotalBilled.Equal(USD(20000)) {
		t.Errorf("feb billed = %v, want %v", feb.TotalBilled, USD(20000))
	}
	if !feb.Collected.Equal(USD(5000)) {
		t.Errorf("feb collected = %v, want %v", feb.Collected, USD(5000))
	}
	if !feb.Outstanding.Equal(USD(15000)) {
		t.Errorf("feb outstanding = %v, want %v", feb.Outstanding, USD(15000))
	}

	if !report.Total.TotalBilled.Equal(USD(60000)) {
		t.Errorf("total billed = %v, want %v", report.Total.TotalBilled, USD(60000))
	}
	if !report.Total.Collected.Equal(USD(40000)) {
		t.Errorf("total collected = %v, want %v", report.Total.Collected, USD(40000))
	}
	if !report.Total.Outstanding.Equal(USD(20000)) {
		t.Errorf("total outstanding = %v, want %v", report.Total.Outstanding, USD(20000))
	}
}

func TestBillingReportYearly(t *testing.T) {
	report := NewBillingReport(fixtureDataset(), Yearly)
	if len(report.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(report.Rows))
	}
	if report.Rows[0].Bucket != "2024" || report.Rows[1].Bucket != "2025" {
		t.Errorf("buckets = %q, %q, want 2024, 2025", report.Rows[0].Bucket, report.Rows[1].Bucket)
	}
	if !report.Rows[1].TotalBilled.Equal(USD(30000)) {
		t.Errorf("2025 billed = %v, want %v", report.Rows[1].TotalBilled, USD(30000))
	}
}

func TestBillingReportEmpty(t *testing.T) {
	report := NewBillingReport(NewDataset(), Monthly)
	if len(report.Rows) != 0 {
		t.Errorf("got %d rows, want 0", len(report.Rows))
	}
	if !report.Total.TotalBilled.IsZero() {
		t.Errorf("total billed = %v, want zero", report.Total.TotalBilled)
	}
}
