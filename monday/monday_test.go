package monday

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"teamdash.dev/teamdash"
)

const boardPayload = `{
  "data": {
    "boards": [
      {
        "items_page": {
          "items": [
            {
              "name": "Acme rollout",
              "column_values": [
                {"id": "deal_value", "text": "100000"},
                {"id": "cost_to_deliver", "text": "60000"},
                {"id": "close_date", "text": "2025-01-15"},
                {"id": "team", "text": "Growth"}
              ]
            },
            {
              "name": "Mystery deal",
              "column_values": [
                {"id": "deal_value", "text": "n/a"},
                {"id": "cost_to_deliver", "text": ""},
                {"id": "close_date", "text": ""},
                {"id": "team", "text": ""}
              ]
            }
          ]
        }
      }
    ]
  }
}`

func TestFetchDeals(t *testing.T) {
	var gotAuth, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Query string `json:"query"`
		}
		json.Unmarshal(body, &payload)
		gotQuery = payload.Query
		w.Write([]byte(boardPayload))
	}))
	defer server.Close()

	c := &Client{Token: "secret", BoardID: 42, URL: server.URL}
	deals, err := c.FetchDeals()
	if err != nil {
		t.Fatalf("FetchDeals() error = %v", err)
	}

	if gotAuth != "secret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "secret")
	}
	if gotQuery == "" {
		t.Error("request carried no GraphQL query")
	}

	if len(deals) != 2 {
		t.Fatalf("got %d deals, want 2", len(deals))
	}

	acme := deals[0]
	if acme.Name != "Acme rollout" || acme.Team != "Growth" {
		t.Errorf("deal = %+v", acme)
	}
	if !acme.Value.Equal(decimal.NewFromInt(100000)) || !acme.Cost.Equal(decimal.NewFromInt(60000)) {
		t.Errorf("amounts = %v / %v", acme.Value, acme.Cost)
	}
	if acme.CloseDate != teamdash.MustParseDate("2025-01-15") {
		t.Errorf("close date = %v", acme.CloseDate)
	}

	// broken columns degrade to zero amounts and the Unknown team
	mystery := deals[1]
	if !mystery.Value.IsZero() || !mystery.Cost.IsZero() {
		t.Errorf("mystery amounts = %v / %v, want zero", mystery.Value, mystery.Cost)
	}
	if mystery.Team != teamdash.UnknownTeam {
		t.Errorf("mystery team = %q, want %q", mystery.Team, teamdash.UnknownTeam)
	}
}

func TestFetchDealsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	c := &Client{Token: "bad", BoardID: 42, URL: server.URL}
	if _, err := c.FetchDeals(); err == nil {
		t.Error("FetchDeals() succeeded on a 401")
	}
}

func TestFetchDealsBadShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"boards": []}}`))
	}))
	defer server.Close()

	c := &Client{Token: "secret", BoardID: 42, URL: server.URL}
	if _, err := c.FetchDeals(); err == nil {
		t.Error("FetchDeals() accepted a response without boards")
	}
}
