package teamdash

import "testing"

func TestSummaryReport(t *testing.T) {
	report := NewSummaryReport(fixtureDataset())

	if !report.TotalBilled.Equal(USD(60000)) {
		t.Errorf("total billed = %v, want %v", report.TotalBilled, USD(60000))
	}
	if !report.Collected.Equal(USD(40000)) {
		t.Errorf("collected = %v, want %v", report.Collected, USD(40000))
	}
	if !report.TotalHours.Equal(dec(410)) {
		t.Errorf("total hours = %v, want 410", report.TotalHours)
	}
	if report.Deals != 3 || report.TimeEntries != 4 || report.Invoices != 3 {
		t.Errorf("counts = %d/%d/%d, want 3/4/3", report.Deals, report.TimeEntries, report.Invoices)
	}
	if report.Teams != 3 {
		t.Errorf("teams = %d, want 3", report.Teams)
	}
}

func TestSummaryReportEmpty(t *testing.T) {
	report := NewSummaryReport(NewDataset())
	if !report.TotalBilled.IsZero() || report.Deals != 0 || report.Teams != 0 {
		t.Errorf("empty dataset summary = %+v, want all zero", report)
	}
}
