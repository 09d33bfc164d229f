package teamdash

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
)

// demoSeed keeps demo reports stable between runs.
const demoSeed = 7

var (
	demoTeams   = []string{"Growth", "Delivery", "Operations", "Customer Success"}
	demoClients = []string{"Acme", "Globex", "Initech", "Umbrella", "Stark"}
)

// DemoDataset generates the deterministic demo dataset covering the 365 days
// ending on 'end'. It is used whenever credentials or a snapshot are missing.
func DemoDataset(end Date) *Dataset {
	rng := rand.New(rand.NewSource(demoSeed))
	window := TrailingYear(end)
	randDate := func() Date { return window.From.Add(rng.Intn(365)) }

	ds := NewDataset()

	for i := 1; i <= 100; i++ {
		ds.Deals = append(ds.Deals, Deal{
			Name:      fmt.Sprintf("Deal-%d", i),
			Team:      demoTeams[rng.Intn(len(demoTeams))],
			CloseDate: randDate(),
			Value:     decimal.NewFromInt(8000 + rng.Int63n(112000)),
			Cost:      decimal.NewFromInt(3000 + rng.Int63n(67000)),
		})
	}

	for i := 0; i < 2000; i++ {
		hours := 0.5 + rng.Float64()*7.5
		rate := 80 + rng.Float64()*140
		ds.TimeEntries = append(ds.TimeEntries, TimeEntry{
			Date:           randDate(),
			Team:           demoTeams[rng.Intn(len(demoTeams))],
			Project:        fmt.Sprintf("Project-%d", i%40),
			Client:         demoClients[rng.Intn(len(demoClients))],
			Hours:          decimal.NewFromFloat(hours).Round(2),
			Billable:       rng.Float64() < 0.8,
			BillableAmount: decimal.NewFromFloat(hours * rate).Round(2),
		})
	}

	for i := 0; i < 300; i++ {
		on := randDate()
		total := decimal.NewFromInt(2000 + rng.Int63n(63000))
		paid := total.Mul(decimal.NewFromFloat(0.65 + rng.Float64()*0.35)).Round(2)
		ds.Invoices = append(ds.Invoices, Invoice{
			Number:     fmt.Sprintf("INV-%d", 1000+i),
			Contact:    demoClients[rng.Intn(len(demoClients))],
			Status:     demoStatus(rng),
			Date:       on,
			DueDate:    on.Add(30),
			Total:      total,
			AmountPaid: paid,
			AmountDue:  total.Sub(paid),
		})
	}

	return ds
}

// demoStatus draws an invoice status with the 70/20/10 weighting of the demo set.
func demoStatus(rng *rand.Rand) string {
	switch f := rng.Float64(); {
	case f < 0.7:
		return StatusPaid
	case f < 0.9:
		return StatusAuthorised
	default:
		return StatusSubmitted
	}
}
