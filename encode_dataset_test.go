package teamdash

import (
	"bytes"
	"strings"
	"testing"
)

func TestDatasetRoundTrip(t *testing.T) {
	ds := fixtureDataset()
	ds.Currency = "EUR"

	var buf bytes.Buffer
	if err := EncodeDataset(&buf, ds); err != nil {
		t.Fatalf("EncodeDataset() error = %v", err)
	}

	back, err := DecodeDataset(&buf)
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}

	if back.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", back.Currency)
	}
	if len(back.Deals) != len(ds.Deals) || len(back.TimeEntries) != len(ds.TimeEntries) || len(back.Invoices) != len(ds.Invoices) {
		t.Fatalf("counts = %d/%d/%d, want %d/%d/%d",
			len(back.Deals), len(back.TimeEntries), len(back.Invoices),
			len(ds.Deals), len(ds.TimeEntries), len(ds.Invoices))
	}

	// records come back in canonical date order regardless of input order
	for i := 1; i < len(back.Invoices); i++ {
		if back.Invoices[i].Date.Before(back.Invoices[i-1].Date) {
			t.Errorf("invoices not sorted by date: %v before %v", back.Invoices[i].Date, back.Invoices[i-1].Date)
		}
	}

	// every fixture deal survives the trip intact; decimal fields compare by
	// value since the decoded representation may differ (e.g. 1e5 vs 100000)
	for _, want := range ds.Deals {
		found := false
		for _, got := range back.Deals {
			if got.Name == want.Name {
				found = true
				if got.Team != want.Team || got.CloseDate != want.CloseDate ||
					!got.Value.Equal(want.Value) || !got.Cost.Equal(want.Cost) {
					t.Errorf("deal %q = %+v, want %+v", want.Name, got, want)
				}
			}
		}
		if !found {
			t.Errorf("deal %q missing after round trip", want.Name)
		}
	}
}

func TestDecodeDatasetDefaults(t *testing.T) {
	// a snapshot without a meta line still decodes, in the default currency
	in := `{"record":"deal","name":"D","team":"Growth","closeDate":"2025-01-01","value":100,"costToDeliver":60}`
	ds, err := DecodeDataset(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}
	if ds.Currency != DefaultCurrency {
		t.Errorf("currency = %q, want %q", ds.Currency, DefaultCurrency)
	}
	if len(ds.Deals) != 1 || ds.Deals[0].Name != "D" {
		t.Fatalf("deals = %+v, want one deal named D", ds.Deals)
	}
}

func TestDecodeDatasetUnknownRecord(t *testing.T) {
	in := `{"record":"stock","ticker":"MSFT"}`
	if _, err := DecodeDataset(strings.NewReader(in)); err == nil {
		t.Error("DecodeDataset() accepted an unknown record type")
	}
}

func TestDecodeDatasetSkipsBlankLines(t *testing.T) {
	in := "{\"record\":\"meta\",\"currency\":\"USD\"}\n\n{\"record\":\"invoice\",\"number\":\"INV-1\",\"contact\":\"Acme\",\"status\":\"PAID\",\"date\":\"2025-01-31\",\"dueDate\":\"2025-03-02\",\"total\":100,\"amountPaid\":100,\"amountDue\":0}\n"
	ds, err := DecodeDataset(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}
	if len(ds.Invoices) != 1 {
		t.Errorf("invoices = %d, want 1", len(ds.Invoices))
	}
}

func TestSaveLoadDataset(t *testing.T) {
	path := t.TempDir() + "/nested/data.jsonl"
	if err := SaveDataset(path, fixtureDataset()); err != nil {
		t.Fatalf("SaveDataset() error = %v", err)
	}
	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if len(ds.Deals) != 3 {
		t.Errorf("deals = %d, want 3", len(ds.Deals))
	}
}
