package harvest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"teamdash.dev/teamdash"
)

func TestFetchTimeEntriesPagination(t *testing.T) {
	var server *httptest.Server
	requests := 0
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Harvest-Account-ID"); got != "12345" {
			t.Errorf("Harvest-Account-ID = %q", got)
		}

		switch r.URL.Query().Get("page") {
		case "": // first page
			if got := r.URL.Query().Get("from"); got != "2025-01-01" {
				t.Errorf("from = %q", got)
			}
			fmt.Fprintf(w, `{
  "time_entries": [
    {
      "spent_date": "2025-01-10",
      "hours": 4.0,
      "billable": true,
      "billable_rate": 150.0,
      "user": {"name": "Growth"},
      "project": {"name": "P1"},
      "client": {"name": "Acme"}
    }
  ],
  "links": {"next": "%s/v2/time_entries?page=2"}
}`, server.URL)
		case "2":
			fmt.Fprint(w, `{
  "time_entries": [
    {
      "spent_date": "2025-01-11",
      "hours": 2.5,
      "billable": false,
      "billable_rate": 0,
      "user": {"name": ""},
      "project": {"name": "P2"},
      "client": {"name": "Globex"}
    }
  ],
  "links": {"next": ""}
}`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))
	defer server.Close()

	c := &Client{Token: "secret", AccountID: "12345", URL: server.URL}
	rng := teamdash.NewRange(teamdash.MustParseDate("2025-01-01"), teamdash.MustParseDate("2025-01-31"))
	entries, err := c.FetchTimeEntries(rng)
	if err != nil {
		t.Fatalf("FetchTimeEntries() error = %v", err)
	}

	if requests != 2 {
		t.Errorf("made %d requests, want 2 (pagination)", requests)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.Team != "Growth" || first.Project != "P1" || first.Client != "Acme" {
		t.Errorf("entry = %+v", first)
	}
	if first.Date != teamdash.MustParseDate("2025-01-10") {
		t.Errorf("date = %v", first.Date)
	}
	// 4h at 150/h
	if !first.BillableAmount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("billable amount = %v, want 600", first.BillableAmount)
	}

	// a missing user name files the entry under the Unknown team
	if entries[1].Team != teamdash.UnknownTeam {
		t.Errorf("team = %q, want %q", entries[1].Team, teamdash.UnknownTeam)
	}
	if !entries[1].BillableAmount.IsZero() {
		t.Errorf("non billable amount = %v, want zero", entries[1].BillableAmount)
	}
}

func TestFetchTimeEntriesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	c := &Client{Token: "bad", AccountID: "12345", URL: server.URL}
	rng := teamdash.NewRange(teamdash.MustParseDate("2025-01-01"), teamdash.MustParseDate("2025-01-31"))
	if _, err := c.FetchTimeEntries(rng); err == nil {
		t.Error("FetchTimeEntries() succeeded on a 403")
	}
}
