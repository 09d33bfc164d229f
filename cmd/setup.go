package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"teamdash.dev/teamdash/bootstrap"
)

type setupCmd struct {
	env      string
	manifest string
	cache    string
}

func (*setupCmd) Name() string     { return "setup" }
func (*setupCmd) Synopsis() string { return "provision the offline tool environment" }
func (*setupCmd) Usage() string {
	return `tdash setup [-env <dir>] [-manifest <file>] [-cache <dir>]

  Provisions the tool environment: creates the environment directory if
  needed, installs every pack pinned in the manifest from the local cache
  (offline, no network fallback), and smoke-tests the dashboard engine pack,
  printing "OK <version>" on success. Safe to re-run.
`
}

func (c *setupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.env, "env", ".teamdash", "Path to the tool environment directory")
	f.StringVar(&c.manifest, "manifest", "packs.txt", "Path to the pinned pack manifest")
	f.StringVar(&c.cache, "cache", "pack-cache", "Path to the local pack archive cache")
}

func (c *setupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := bootstrap.Run(bootstrap.Config{
		Root:     c.env,
		Manifest: c.manifest,
		Cache:    c.cache,
		Out:      os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
