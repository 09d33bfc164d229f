// Package xero fetches invoices from the Xero accounting API.
package xero

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"

	"teamdash.dev/teamdash"
)

// DefaultURL is the Xero accounting API base.
const DefaultURL = "https://api.xero.com"

// Client calls the Xero accounting API with an OAuth2 bearer token.
type Client struct {
	Token    string
	TenantID string
	URL      string       // defaults to DefaultURL
	HTTP     *http.Client // base transport, wrapped by the oauth2 client
}

func (c *Client) url() string {
	if c.URL == "" {
		return DefaultURL
	}
	return c.URL
}

// http returns an oauth2-authenticated client over the configured base transport.
func (c *Client) http() *http.Client {
	ctx := context.Background()
	if c.HTTP != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTP)
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.Token})
	return oauth2.NewClient(ctx, src)
}

// invoicesPayload mirrors the Xero Invoices endpoint payload.
type invoicesPayload struct {
	Invoices []struct {
		InvoiceNumber string  `json:"InvoiceNumber"`
		Status        string  `json:"Status"`
		DateString    string  `json:"DateString"`
		DueDateString string  `json:"DueDateString"`
		AmountDue     float64 `json:"AmountDue"`
		AmountPaid    float64 `json:"AmountPaid"`
		Total         float64 `json:"Total"`
		Contact       struct {
			Name string `json:"Name"`
		} `json:"Contact"`
	} `json:"Invoices"`
}

// FetchInvoices pulls all invoices for the configured tenant.
func (c *Client) FetchInvoices() ([]teamdash.Invoice, error) {
	addr := c.url() + "/api.xro/2.0/Invoices"
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Xero-tenant-id", c.TenantID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot GET %s: %s", addr, resp.Status)
	}

	payload := new(invoicesPayload)
	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return nil, fmt.Errorf("invalid xero response: %w", err)
	}

	invoices := make([]teamdash.Invoice, 0, len(payload.Invoices))
	for _, inv := range payload.Invoices {
		out := teamdash.Invoice{
			Number:     inv.InvoiceNumber,
			Contact:    orUnknown(inv.Contact.Name),
			Status:     orUnknown(inv.Status),
			Total:      decimal.NewFromFloat(inv.Total),
			AmountPaid: decimal.NewFromFloat(inv.AmountPaid),
			AmountDue:  decimal.NewFromFloat(inv.AmountDue),
		}
		if d, err := teamdash.ParseDate(inv.DateString); err == nil {
			out.Date = d
		}
		if d, err := teamdash.ParseDate(inv.DueDateString); err == nil {
			out.DueDate = d
		}
		invoices = append(invoices, out)
	}
	return invoices, nil
}

func orUnknown(name string) string {
	if name == "" {
		return teamdash.UnknownTeam
	}
	return name
}
