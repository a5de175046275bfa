package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/railbird/pokerlog"
	"github.com/railbird/pokerlog/renderer"
)

type graphCmd struct{}

func (*graphCmd) Name() string     { return "graph" }
func (*graphCmd) Synopsis() string { return "display cumulative profit over time" }
func (*graphCmd) Usage() string {
	return `pokerlog graph

  Displays the cumulative profit after each session, in chronological
  order, as a text bar chart.
`
}

func (*graphCmd) SetFlags(f *flag.FlagSet) {}

func (c *graphCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	points := pokerlog.CumulativeSeries(store.Sessions())
	printMarkdown(renderer.SeriesMarkdown(points))
	return subcommands.ExitSuccess
}
