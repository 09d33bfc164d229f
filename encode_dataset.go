package teamdash

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Record discriminators used in the snapshot JSONL format.
const (
	recordMeta      = "meta"
	recordDeal      = "deal"
	recordTimeEntry = "time_entry"
	recordInvoice   = "invoice"
)

type metaRecord struct {
	Record   string `json:"record"`
	Currency string `json:"currency"`
}

type dealRecord struct {
	Record    string          `json:"record"`
	Name      string          `json:"name"`
	Team      string          `json:"team"`
	CloseDate Date            `json:"closeDate"`
	Value     decimal.Decimal `json:"value"`
	Cost      decimal.Decimal `json:"costToDeliver"`
}

type timeEntryRecord struct {
	Record         string          `json:"record"`
	Date           Date            `json:"date"`
	Team           string          `json:"team"`
	Project        string          `json:"project"`
	Client         string          `json:"client"`
	Hours          decimal.Decimal `json:"hours"`
	Billable       bool            `json:"billable"`
	BillableAmount decimal.Decimal `json:"billableAmount"`
}

type invoiceRecord struct {
	Record     string          `json:"record"`
	Number     string          `json:"number"`
	Contact    string          `json:"contact"`
	Status     string          `json:"status"`
	Date       Date            `json:"date"`
	DueDate    Date            `json:"dueDate"`
	Total      decimal.Decimal `json:"total"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	AmountDue  decimal.Decimal `json:"amountDue"`
}

// EncodeDataset writes the dataset as JSONL: one meta line followed by one
// tagged record per line, in a canonical date order.
func EncodeDataset(w io.Writer, ds *Dataset) error {
	enc := json.NewEncoder(w)

	cur := ds.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	if err := enc.Encode(metaRecord{recordMeta, cur}); err != nil {
		return err
	}

	deals := slices.Clone(ds.Deals)
	slices.SortStableFunc(deals, func(a, b Deal) int {
		if c := strings.Compare(a.CloseDate.String(), b.CloseDate.String()); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	for _, d := range deals {
		if err := enc.Encode(dealRecord{recordDeal, d.Name, d.Team, d.CloseDate, d.Value, d.Cost}); err != nil {
			return err
		}
	}

	entries := slices.Clone(ds.TimeEntries)
	slices.SortStableFunc(entries, func(a, b TimeEntry) int {
		return strings.Compare(a.Date.String(), b.Date.String())
	})
	for _, e := range entries {
		if err := enc.Encode(timeEntryRecord{recordTimeEntry, e.Date, e.Team, e.Project, e.Client, e.Hours, e.Billable, e.BillableAmount}); err != nil {
			return err
		}
	}

	invoices := slices.Clone(ds.Invoices)
	slices.SortStableFunc(invoices, func(a, b Invoice) int {
		if c := strings.Compare(a.Date.String(), b.Date.String()); c != 0 {
			return c
		}
		return strings.Compare(a.Number, b.Number)
	})
	for _, inv := range invoices {
		if err := enc.Encode(invoiceRecord{recordInvoice, inv.Number, inv.Contact, inv.Status, inv.Date, inv.DueDate, inv.Total, inv.AmountPaid, inv.AmountDue}); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDataset reads a stream of JSONL records and rebuilds a Dataset.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	ds := NewDataset()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		switch identifier.Record {
		case recordMeta:
			var m metaRecord
			if err := json.Unmarshal(line, &m); err != nil {
				return nil, err
			}
			if m.Currency != "" {
				ds.Currency = m.Currency
			}
		case recordDeal:
			var d dealRecord
			if err := json.Unmarshal(line, &d); err != nil {
				return nil, err
			}
			ds.Deals = append(ds.Deals, Deal{d.Name, d.Team, d.CloseDate, d.Value, d.Cost})
		case recordTimeEntry:
			var e timeEntryRecord
			if err := json.Unmarshal(line, &e); err != nil {
				return nil, err
			}
			ds.TimeEntries = append(ds.TimeEntries, TimeEntry{e.Date, e.Team, e.Project, e.Client, e.Hours, e.Billable, e.BillableAmount})
		case recordInvoice:
			var inv invoiceRecord
			if err := json.Unmarshal(line, &inv); err != nil {
				return nil, err
			}
			ds.Invoices = append(ds.Invoices, Invoice{inv.Number, inv.Contact, inv.Status, inv.Date, inv.DueDate, inv.Total, inv.AmountPaid, inv.AmountDue})
		default:
			return nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ds, nil
}

// SaveDataset writes the dataset snapshot to a file, creating parent
// directories as needed.
func SaveDataset(path string, ds *Dataset) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()
	if err := EncodeDataset(f, ds); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// LoadDataset reads the dataset snapshot from a file. The fs.ErrNotExist
// case is left to the caller, which typically falls back to demo data.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := DecodeDataset(f)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot %q: %w", path, err)
	}
	return ds, nil
}
