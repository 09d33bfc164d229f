package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"teamdash.dev/teamdash/cmd"
)

func main() {
	// Shell completion, a no-op outside of completion mode.
	completion().Complete("tdash")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	subs := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		subs[c.Name()] = &complete.Command{}
	}
	return &complete.Command{
		Sub: subs,
		Flags: map[string]complete.Predictor{
			"data":    predict.Files("*.jsonl"),
			"targets": predict.Files("*.toml"),
		},
	}
}
