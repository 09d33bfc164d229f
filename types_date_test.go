package teamdash

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{in: "2025-07-01", want: NewDate(2025, time.July, 1)},
		{in: "2025-7-1", want: NewDate(2025, time.July, 1)},
		{in: "2025-01-31T10:30:00Z", want: NewDate(2025, time.January, 31)},
		{in: "2009-05-27T00:00:00", want: NewDate(2009, time.May, 27)},
		{in: "not-a-date", err: true},
		{in: "", err: true},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStartEndOf(t *testing.T) {
	d := NewDate(2025, time.August, 23)
	tests := []struct {
		period     Period
		start, end Date
	}{
		{Monthly, NewDate(2025, time.August, 1), NewDate(2025, time.August, 31)},
		{Quarterly, NewDate(2025, time.July, 1), NewDate(2025, time.September, 30)},
		{Yearly, NewDate(2025, time.January, 1), NewDate(2025, time.December, 31)},
	}
	for _, tc := range tests {
		if got := d.StartOf(tc.period); got != tc.start {
			t.Errorf("%v StartOf(%s) = %v, want %v", d, tc.period, got, tc.start)
		}
		if got := d.EndOf(tc.period); got != tc.end {
			t.Errorf("%v EndOf(%s) = %v, want %v", d, tc.period, got, tc.end)
		}
	}
}

func TestPeriodBucket(t *testing.T) {
	d := NewDate(2025, time.August, 23)
	tests := []struct {
		period Period
		want   string
	}{
		{Monthly, "2025-08"},
		{Quarterly, "2025-Q3"},
		{Yearly, "2025"},
	}
	for _, tc := range tests {
		if got := tc.period.Bucket(d); got != tc.want {
			t.Errorf("%s.Bucket(%v) = %q, want %q", tc.period, d, got, tc.want)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.February, 28)
	content, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(content) != `"2025-02-28"` {
		t.Errorf("Marshal() = %s, want %q", content, "2025-02-28")
	}
	var back Date
	if err := json.Unmarshal(content, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestTrailingYear(t *testing.T) {
	end := NewDate(2025, time.August, 23)
	rng := TrailingYear(end)
	if rng.To != end {
		t.Errorf("To = %v, want %v", rng.To, end)
	}
	days := 0
	for d := rng.From; !d.After(rng.To); d = d.Add(1) {
		days++
	}
	if days != 365 {
		t.Errorf("trailing year covers %d days, want 365", days)
	}
	if !rng.Contains(end) || !rng.Contains(rng.From) {
		t.Error("range must contain both bounds")
	}
	if rng.Contains(rng.From.Add(-1)) {
		t.Error("range must not contain the day before From")
	}
}
