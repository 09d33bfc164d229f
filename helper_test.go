package teamdash

import "github.com/shopspring/decimal"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// dec is a helper for test to create a decimal from const
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// fixtureDataset returns a small handmade dataset used by the report tests.
//
// Growth closes two deals (one at a loss) and logs 100h; Delivery closes one
// profitable deal and logs 300h; Ops logs time with no deals at all. Invoices
// span two months of 2025 plus a partially collected one in 2024.
func fixtureDataset() *Dataset {
	ds := NewDataset()
	ds.Deals = []Deal{
		{Name: "Acme rollout", Team: "Growth", CloseDate: MustParseDate("2025-01-15"), Value: dec(100000), Cost: dec(60000)},
		{Name: "Globex audit", Team: "Growth", CloseDate: MustParseDate("2025-02-20"), Value: dec(50000), Cost: dec(55000)},
		{Name: "Initech support", Team: "Delivery", CloseDate: MustParseDate("2025-03-01"), Value: dec(50000), Cost: dec(25000)},
	}
	ds.TimeEntries = []TimeEntry{
		{Date: MustParseDate("2025-01-10"), Team: "Growth", Project: "P1", Client: "Acme", Hours: dec(60), Billable: true, BillableAmount: dec(9000)},
		{Date: MustParseDate("2025-01-11"), Team: "Growth", Project: "P1", Client: "Acme", Hours: dec(40), Billable: false, BillableAmount: dec(0)},
		{Date: MustParseDate("2025-02-01"), Team: "Delivery", Project: "P2", Client: "Initech", Hours: dec(300), Billable: true, BillableAmount: dec(36000)},
		{Date: MustParseDate("2025-02-02"), Team: "Ops", Project: "P3", Client: "Stark", Hours: dec(10), Billable: true, BillableAmount: dec(1500)},
	}
	ds.Invoices = []Invoice{
		{Number: "INV-1", Contact: "Acme", Status: StatusPaid, Date: MustParseDate("2025-01-31"), DueDate: MustParseDate("2025-03-02"), Total: dec(10000), AmountPaid: dec(10000), AmountDue: dec(0)},
		{Number: "INV-2", Contact: "Initech", Status: StatusAuthorised, Date: MustParseDate("2025-02-15"), DueDate: MustParseDate("2025-03-17"), Total: dec(20000), AmountPaid: dec(5000), AmountDue: dec(15000)},
		{Number: "INV-3", Contact: "Stark", Status: StatusPaid, Date: MustParseDate("2024-12-01"), DueDate: MustParseDate("2024-12-31"), Total: dec(30000), AmountPaid: dec(25000), AmountDue: dec(5000)},
	}
	return ds
}
