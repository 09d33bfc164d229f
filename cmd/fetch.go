package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"teamdash.dev/teamdash"
	"teamdash.dev/teamdash/harvest"
	"teamdash.dev/teamdash/monday"
	"teamdash.dev/teamdash/xero"
)

// Environment variables carrying the connector credentials.
const (
	mondayTokenEnv    = "MONDAY_API_TOKEN"
	harvestTokenEnv   = "HARVEST_API_TOKEN"
	harvestAccountEnv = "HARVEST_ACCOUNT_ID"
	xeroTokenEnv      = "XERO_ACCESS_TOKEN"
	xeroTenantEnv     = "XERO_TENANT_ID"
)

type fetchCmd struct {
	board          int64
	from, to       string
	mondayToken    string
	harvestToken   string
	harvestAccount string
	xeroToken      string
	xeroTenant     string
}

func (*fetchCmd) Name() string { return "fetch" }
func (*fetchCmd) Synopsis() string {
	return "fetch deals, time entries, and invoices into a snapshot"
}
func (*fetchCmd) Usage() string {
	return `tdash fetch [-board <id>] [-from <date>] [-to <date>]

  Pulls deals from monday.com, time entries from Harvest, and invoices from
  Xero into the dataset snapshot. Credentials are read from the environment
  (` + mondayTokenEnv + `, ` + harvestTokenEnv + `, ` + harvestAccountEnv + `,
  ` + xeroTokenEnv + `, ` + xeroTenantEnv + `) unless overridden by flags.
  With missing credentials the demo dataset is snapshotted instead.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.board, "board", 1234567890, "monday.com board id holding the deals")
	f.StringVar(&c.from, "from", "", "Start of the time entries window (defaults to 365 days ago)")
	f.StringVar(&c.to, "to", "", "End of the time entries window (defaults to today)")
	f.StringVar(&c.mondayToken, "monday-token", "", "monday.com API token, overrides "+mondayTokenEnv)
	f.StringVar(&c.harvestToken, "harvest-token", "", "Harvest API token, overrides "+harvestTokenEnv)
	f.StringVar(&c.harvestAccount, "harvest-account", "", "Harvest account id, overrides "+harvestAccountEnv)
	f.StringVar(&c.xeroToken, "xero-token", "", "Xero access token, overrides "+xeroTokenEnv)
	f.StringVar(&c.xeroTenant, "xero-tenant", "", "Xero tenant id, overrides "+xeroTenantEnv)
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := c.window()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ds, err := c.load(rng)
	if err != nil {
		// Mirror the dashboard behavior: a broken source degrades to demo
		// data instead of leaving the user with no report at all.
		log.Printf("warning, fetch failed (%v), using demo data instead", err)
		ds = teamdash.DemoDataset(teamdash.Today())
	}

	if err := teamdash.SaveDataset(*dataFile, ds); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Snapshotted %d deals, %d time entries, %d invoices to %s\n",
		len(ds.Deals), len(ds.TimeEntries), len(ds.Invoices), *dataFile)
	return subcommands.ExitSuccess
}

func (c *fetchCmd) window() (teamdash.Range, error) {
	to := teamdash.Today()
	if c.to != "" {
		var err error
		if to, err = teamdash.ParseDate(c.to); err != nil {
			return teamdash.Range{}, fmt.Errorf("parsing -to: %w", err)
		}
	}
	if c.from == "" {
		return teamdash.TrailingYear(to), nil
	}
	from, err := teamdash.ParseDate(c.from)
	if err != nil {
		return teamdash.Range{}, fmt.Errorf("parsing -from: %w", err)
	}
	return teamdash.NewRange(from, to), nil
}

// creds resolves each credential from its flag, then its environment variable.
func (c *fetchCmd) creds() (mondayToken, harvestToken, harvestAccount, xeroToken, xeroTenant string) {
	pick := func(flagValue, env string) string {
		if flagValue != "" {
			return flagValue
		}
		return os.Getenv(env)
	}
	return pick(c.mondayToken, mondayTokenEnv),
		pick(c.harvestToken, harvestTokenEnv),
		pick(c.harvestAccount, harvestAccountEnv),
		pick(c.xeroToken, xeroTokenEnv),
		pick(c.xeroTenant, xeroTenantEnv)
}

func (c *fetchCmd) load(rng teamdash.Range) (*teamdash.Dataset, error) {
	mondayToken, harvestToken, harvestAccount, xeroToken, xeroTenant := c.creds()
	if mondayToken == "" || harvestToken == "" || xeroToken == "" {
		log.Println("warning, missing credentials, using demo data instead")
		return teamdash.DemoDataset(teamdash.Today()), nil
	}

	client := teamdash.DailyClient()

	deals, err := (&monday.Client{Token: mondayToken, BoardID: c.board, HTTP: client}).FetchDeals()
	if err != nil {
		return nil, fmt.Errorf("fetching deals: %w", err)
	}
	entries, err := (&harvest.Client{Token: harvestToken, AccountID: harvestAccount, HTTP: client}).FetchTimeEntries(rng)
	if err != nil {
		return nil, fmt.Errorf("fetching time entries: %w", err)
	}
	invoices, err := (&xero.Client{Token: xeroToken, TenantID: xeroTenant, HTTP: client}).FetchInvoices()
	if err != nil {
		return nil, fmt.Errorf("fetching invoices: %w", err)
	}

	ds := teamdash.NewDataset()
	ds.Deals = deals
	ds.TimeEntries = entries
	ds.Invoices = invoices
	return ds, nil
}
