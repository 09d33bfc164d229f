// Package harvest fetches recorded time entries from the Harvest v2 API.
package harvest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"teamdash.dev/teamdash"
)

// DefaultURL is the Harvest API base.
const DefaultURL = "https://api.harvestapp.com"

const perPage = 200

// Client calls the Harvest v2 REST API.
type Client struct {
	Token     string
	AccountID string
	URL       string       // defaults to DefaultURL
	HTTP      *http.Client // defaults to http.DefaultClient
}

func (c *Client) url() string {
	if c.URL == "" {
		return DefaultURL
	}
	return c.URL
}

func (c *Client) http() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

// timeEntriesPage mirrors the Harvest time_entries payload.
type timeEntriesPage struct {
	TimeEntries []struct {
		SpentDate string  `json:"spent_date"`
		Hours     float64 `json:"hours"`
		Billable  bool    `json:"billable"`
		Rate      float64 `json:"billable_rate"`
		User      struct {
			Name string `json:"name"`
		} `json:"user"`
		Project struct {
			Name string `json:"name"`
		} `json:"project"`
		Client struct {
			Name string `json:"name"`
		} `json:"client"`
	} `json:"time_entries"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}

// FetchTimeEntries pulls all time entries in the range, following pagination.
// The user's team name comes from the Harvest user name; the billable amount
// is the billable rate times the hours.
func (c *Client) FetchTimeEntries(rng teamdash.Range) ([]teamdash.TimeEntry, error) {
	q := url.Values{}
	q.Set("from", rng.From.String())
	q.Set("to", rng.To.String())
	q.Set("per_page", strconv.Itoa(perPage))
	next := c.url() + "/v2/time_entries?" + q.Encode()

	var entries []teamdash.TimeEntry
	for next != "" {
		page, err := c.getPage(next)
		if err != nil {
			return nil, err
		}
		for _, e := range page.TimeEntries {
			entry := teamdash.TimeEntry{
				Team:           orUnknown(e.User.Name),
				Project:        orUnknown(e.Project.Name),
				Client:         orUnknown(e.Client.Name),
				Hours:          decimal.NewFromFloat(e.Hours),
				Billable:       e.Billable,
				BillableAmount: decimal.NewFromFloat(e.Rate * e.Hours).Round(2),
			}
			if d, err := teamdash.ParseDate(e.SpentDate); err == nil {
				entry.Date = d
			}
			entries = append(entries, entry)
		}
		next = page.Links.Next
	}
	return entries, nil
}

func (c *Client) getPage(addr string) (*timeEntriesPage, error) {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Harvest-Account-ID", c.AccountID)
	req.Header.Set("User-Agent", "teamdash")

	resp, err := c.http().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot GET %s: %s", addr, resp.Status)
	}

	page := new(timeEntriesPage)
	if err := json.NewDecoder(resp.Body).Decode(page); err != nil {
		return nil, fmt.Errorf("invalid harvest response: %w", err)
	}
	return page, nil
}

func orUnknown(name string) string {
	if name == "" {
		return teamdash.UnknownTeam
	}
	return name
}
