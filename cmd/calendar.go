package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/railbird/pokerlog"
	"github.com/railbird/pokerlog/date"
	"github.com/railbird/pokerlog/renderer"
)

type calendarCmd struct {
	month string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display daily results for one month" }
func (*calendarCmd) Usage() string {
	return `pokerlog calendar [-m <month>]

  Displays the month's results day by day: total profit, session count,
  and the number of winning and losing days. Days are grouped in UTC.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to report on, formatted 2006-01. Defaults to the current month.")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month := date.MonthOf(date.Today())
	if c.month != "" {
		var err error
		month, err = date.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	daily := pokerlog.NewDailyRollup(store.Sessions())
	stats := pokerlog.NewMonthStats(daily, month)

	printMarkdown(renderer.CalendarMarkdown(stats, daily))
	return subcommands.ExitSuccess
}
