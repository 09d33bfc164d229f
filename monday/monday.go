// Package monday fetches deals from a monday.com board through its GraphQL API.
package monday

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"teamdash.dev/teamdash"
)

// DefaultURL is the monday.com GraphQL endpoint.
const DefaultURL = "https://api.monday.com/v2"

// Column ids expected on the deals board.
const (
	colDealValue = "deal_value"
	colCost      = "cost_to_deliver"
	colCloseDate = "close_date"
	colTeam      = "team"
)

// Client calls the monday.com GraphQL API.
type Client struct {
	Token   string
	BoardID int64
	URL     string       // defaults to DefaultURL
	HTTP    *http.Client // defaults to http.DefaultClient
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

// FetchDeals pulls the board items and maps their column values to deals.
// Non-numeric amounts are coerced to zero, and items without a team column
// are filed under the Unknown team.
func (c *Client) FetchDeals() ([]teamdash.Deal, error) {
	query := fmt.Sprintf(`{
  boards (ids: %d) {
    items_page(limit: 100) {
      items {
        name
        column_values {
          id
          text
        }
      }
    }
  }
}`, c.BoardID)

	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, c.url(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot query monday.com board %d: %s", c.BoardID, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("invalid monday.com response: %w", err)
	}

	path := "$.data.boards[0].items_page.items"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("unexpected monday.com response shape: %q %w", path, err)
	}
	items, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected monday.com response shape: %q is not a list", path)
	}

	deals := make([]teamdash.Deal, 0, len(items))
	for _, it := range items {
		item, ok := it.(map[string]any)
		if !ok {
			continue
		}
		deal := teamdash.Deal{Team: teamdash.UnknownTeam}
		deal.Name, _ = item["name"].(string)

		columns, _ := item["column_values"].([]any)
		for _, col := range columns {
			cv, ok := col.(map[string]any)
			if !ok {
				continue
			}
			id, _ := cv["id"].(string)
			text, _ := cv["text"].(string)
			switch id {
			case colDealValue:
				deal.Value = toDecimal(text)
			case colCost:
				deal.Cost = toDecimal(text)
			case colCloseDate:
				if d, err := teamdash.ParseDate(text); err == nil {
					deal.CloseDate = d
				}
			case colTeam:
				if text != "" {
					deal.Team = text
				}
			}
		}
		deals = append(deals, deal)
	}
	return deals, nil
}

// toDecimal converts a column text to a decimal, zero when not a number.
func toDecimal(text string) decimal.Decimal {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return d
}
