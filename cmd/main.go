// Package cmd implements the CLI application to build the reporting views.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/google/subcommands"

	"teamdash.dev/teamdash"
)

// Commands lists every subcommand in display order. A main package registers
// them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&summaryCmd{},
	&billingCmd{},
	&timesheetCmd{},
	&profitabilityCmd{},
	&scorecardCmd{},
	&targetsCmd{},
	&setupCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data", "data.jsonl", "Path to the dataset snapshot file (JSONL format)")
var targetsFile = flag.String("targets", "targets.toml", "Path to the team targets file (TOML format)")

// LoadData loads the dataset snapshot, falling back to the deterministic
// demo dataset when no snapshot exists.
func LoadData() (*teamdash.Dataset, error) {
	ds, err := teamdash.LoadDataset(*dataFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, no snapshot found, using demo data instead (run 'tdash fetch' to create one)")
		return teamdash.DemoDataset(teamdash.Today()), nil
	}
	return ds, err
}

// LoadTargets loads the targets file, falling back to an empty set (every
// team then gets the default targets).
func LoadTargets() (*teamdash.Targets, error) {
	t, err := teamdash.LoadTargets(*targetsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, no targets file found, using default targets for every team")
		return &teamdash.Targets{}, nil
	}
	return t, err
}
