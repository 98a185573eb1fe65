package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It must stay in sync
// with the commands registered in the cmd package.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"currency": predict.Set{"EUR", "USD", "GBP", "CHF"},
	},
	Sub: map[string]*complete.Command{
		"plan": {
			Flags: map[string]complete.Predictor{
				"o": predict.Dirs("*"),
				"n": predict.Nothing,
				"q": predict.Nothing,
			},
			Args: predict.Files("*.csv"),
		},
		"show": {
			Flags: map[string]complete.Predictor{
				"q": predict.Nothing,
			},
			Args: predict.Files("*.csv"),
		},
		"check": {Args: predict.Files("*.csv")},
		"topic": {},
	},
}

func main() {
	completion.Complete("rebal")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
