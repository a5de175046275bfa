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

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display lifetime profit, ROI and record" }
func (*statsCmd) Usage() string {
	return `pokerlog stats

  Displays the lifetime stats computed over every recorded session:
  total profit, ROI, win-loss-draw record, and the per-location
  breakdown sorted by profit.
`
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	sessions := store.Sessions()
	stats := pokerlog.NewLifetimeStats(sessions)
	locations := pokerlog.LocationRollup(sessions)

	printMarkdown(renderer.StatsMarkdown(stats, locations))
	return subcommands.ExitSuccess
}
