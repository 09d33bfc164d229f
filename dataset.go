package teamdash

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Invoice statuses as reported by the accounting source.
const (
	StatusPaid       = "PAID"
	StatusAuthorised = "AUTHORISED"
	StatusSubmitted  = "SUBMITTED"
)

// UnknownTeam is the team assigned to records whose source has no team information.
const UnknownTeam = "Unknown"

// Deal is a sales deal from the project-management source.
type Deal struct {
	Name      string
	Team      string
	CloseDate Date
	Value     decimal.Decimal // contracted deal value
	Cost      decimal.Decimal // estimated cost to deliver
}

// TimeEntry is a single recorded time slice from the time-tracking source.
type TimeEntry struct {
	Date           Date
	Team           string
	Project        string
	Client         string
	Hours          decimal.Decimal
	Billable       bool
	BillableAmount decimal.Decimal
}

// Invoice is an issued invoice from the accounting source.
type Invoice struct {
	Number     string
	Contact    string
	Status     string
	Date       Date
	DueDate    Date
	Total      decimal.Decimal
	AmountPaid decimal.Decimal
	AmountDue  decimal.Decimal
}

// Dataset bundles one snapshot of the three sources. All monetary amounts
// share a single reporting currency.
type Dataset struct {
	Currency    string
	Deals       []Deal
	TimeEntries []TimeEntry
	Invoices    []Invoice
}

// DefaultCurrency is used when a snapshot or a source does not state one.
const DefaultCurrency = "USD"

// NewDataset returns an empty dataset in the default reporting currency.
func NewDataset() *Dataset {
	return &Dataset{Currency: DefaultCurrency}
}

// M wraps a raw amount into a Money in the dataset's reporting currency.
func (ds *Dataset) M(v decimal.Decimal) Money {
	cur := ds.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	return M(v, cur)
}

// Teams returns the sorted union of teams seen in deals and time entries.
func (ds *Dataset) Teams() []string {
	seen := make(map[string]bool)
	for _, d := range ds.Deals {
		seen[d.Team] = true
	}
	for _, e := range ds.TimeEntries {
		seen[e.Team] = true
	}
	teams := make([]string, 0, len(seen))
	for t := range seen {
		teams = append(teams, t)
	}
	slices.Sort(teams)
	return teams
}

// TotalBilled returns the sum of all invoice totals.
func (ds *Dataset) TotalBilled() Money {
	sum := decimal.Zero
	for _, inv := range ds.Invoices {
		sum = sum.Add(inv.Total)
	}
	return ds.M(sum)
}

// TotalCollected returns the sum of all paid invoice amounts.
func (ds *Dataset) TotalCollected() Money {
	sum := decimal.Zero
	for _, inv := range ds.Invoices {
		sum = sum.Add(inv.AmountPaid)
	}
	return ds.M(sum)
}

// TotalHours returns the sum of all recorded hours.
func (ds *Dataset) TotalHours() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range ds.TimeEntries {
		sum = sum.Add(e.Hours)
	}
	return sum
}

// IsEmpty reports whether the dataset has no record at all.
func (ds *Dataset) IsEmpty() bool {
	return len(ds.Deals) == 0 && len(ds.TimeEntries) == 0 && len(ds.Invoices) == 0
}
