package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/railbird/pokerlog/renderer"
)

type logCmd struct{}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display every recorded session, newest first" }
func (*logCmd) Usage() string {
	return `pokerlog log

  Displays a chronological log of all recorded sessions, newest first,
  with their id, location, stakes and profit.
`
}

func (*logCmd) SetFlags(f *flag.FlagSet) {}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	printMarkdown(renderer.SessionsMarkdown(store.Sessions()))
	return subcommands.ExitSuccess
}
