package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/railbird/pokerlog/renderer"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display one session in full" }
func (*showCmd) Usage() string {
	return `pokerlog show <session-id>

  Displays a single session in full, including its notes and hand
  histories. Session ids are listed by 'pokerlog log'.
`
}

func (*showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one session id")
		return subcommands.ExitUsageError
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	session, ok := store.Session(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no session with id %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SessionMarkdown(session))
	return subcommands.ExitSuccess
}
