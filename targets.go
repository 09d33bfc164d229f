package teamdash

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// TeamTargets holds the per-team objectives the scorecard is measured against.
type TeamTargets struct {
	Revenue          float64 `toml:"revenue"`
	Collection       float64 `toml:"collection"`
	UtilizationHours float64 `toml:"utilization_hours"`
	ProfitabilityPct float64 `toml:"profitability_pct"`
}

// DefaultTargets are applied to teams with no entry in the targets file.
func DefaultTargets() TeamTargets {
	return TeamTargets{
		Revenue:          250000,
		Collection:       200000,
		UtilizationHours: 1800,
		ProfitabilityPct: 35,
	}
}

// Targets is the content of the targets TOML file.
type Targets struct {
	Teams map[string]TeamTargets `toml:"teams"`
}

// For returns the targets for a team and whether an explicit entry exists.
func (t *Targets) For(team string) (TeamTargets, bool) {
	tt, ok := t.Teams[team]
	return tt, ok
}

// Effective resolves targets for every given team, substituting defaults for
// teams without an explicit entry.
func (t *Targets) Effective(teams []string) map[string]TeamTargets {
	out := make(map[string]TeamTargets, len(teams))
	for _, team := range teams {
		if tt, ok := t.For(team); ok {
			out[team] = tt
		} else {
			out[team] = DefaultTargets()
		}
	}
	return out
}

// LoadTargets reads the targets TOML file. A missing file surfaces as
// fs.ErrNotExist so callers can fall back to defaults.
func LoadTargets(path string) (*Targets, error) {
	var t Targets
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveTargets writes the targets TOML file.
func SaveTargets(path string, t *Targets) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating targets file: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(t)
}
