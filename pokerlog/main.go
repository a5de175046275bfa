package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/railbird/pokerlog/cmd"
)

// completion describes the CLI for shell completion. It runs and exits
// early when invoked by the shell, before any flag parsing.
func completion() {
	sub := map[string]*complete.Command{
		"help": {},
		"add": {Flags: map[string]complete.Predictor{
			"location": predict.Something,
			"stakes":   predict.Something,
			"buyin":    predict.Something,
			"cashout":  predict.Something,
			"start":    predict.Something,
			"end":      predict.Something,
			"notes":    predict.Something,
			"hands":    predict.Nothing,
		}},
		"log":      {},
		"show":     {},
		"stats":    {},
		"graph":    {},
		"calendar": {Flags: map[string]complete.Predictor{"m": predict.Something}},
		"topic":    {},
		"assist":   {},
	}
	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"storage":  predict.Set{"file", "sqlite"},
			"v":        predict.Nothing,
		},
	}
	root.Complete("pokerlog")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	known := map[string]bool{"help": true, "flags": true, "commands": true}
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		known[c.Name()] = true
	}

	flag.Parse()

	// Unknown subcommands get a chance to resolve as pokerlog-<name>
	// extensions found on PATH.
	if flag.NArg() > 0 && !known[flag.Arg(0)] {
		if ran, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
