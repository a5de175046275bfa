package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/railbird/pokerlog"
)

// timeFlagFormat is the layout for the -start and -end flags.
const timeFlagFormat = "2006-01-02 15:04"

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	location string
	stakes   string
	buyIn    string
	cashOut  string
	start    string
	end      string
	notes    string
	hands    bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new poker session" }
func (*addCmd) Usage() string {
	return `pokerlog add -location <loc> -stakes <stakes> -buyin <amount> -cashout <amount> [-start <time>] [-end <time>] [-notes <text>] [-hands]

  Records one session in the journal. Start and end times default to now;
  pass them as "2006-01-02 15:04" to backfill. With -hands, notable hands
  are read interactively street by street.

Usage Examples:
# Record tonight's session.
$ pokerlog add -location "Bellagio" -stakes "2/5 NL" -buyin 500 -cashout 1200
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.location, "location", "", "Where the session was played (required).")
	f.StringVar(&c.stakes, "stakes", "", "Stakes played, e.g. \"2/5 NL\" (required).")
	f.StringVar(&c.buyIn, "buyin", "", "Total buy-in amount (required).")
	f.StringVar(&c.cashOut, "cashout", "", "Cash-out amount (required).")
	f.StringVar(&c.start, "start", "", "Session start time, \"2006-01-02 15:04\". Defaults to now.")
	f.StringVar(&c.end, "end", "", "Session end time, \"2006-01-02 15:04\". Defaults to now.")
	f.StringVar(&c.notes, "notes", "", "Free-form session notes.")
	f.BoolVar(&c.hands, "hands", false, "Interactively record notable hands.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	draft := pokerlog.NewDraft()
	draft.Location = c.location
	draft.Stakes = c.stakes
	draft.BuyIn = c.buyIn
	draft.CashOut = c.cashOut
	draft.Notes = c.notes

	if c.start != "" {
		start, err := time.Parse(timeFlagFormat, c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start time: %v\n", err)
			return subcommands.ExitUsageError
		}
		draft.Start = start
	}
	if c.end != "" {
		end, err := time.Parse(timeFlagFormat, c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end time: %v\n", err)
			return subcommands.ExitUsageError
		}
		draft.End = end
	} else if c.start != "" {
		draft.End = draft.Start
	}

	if c.hands {
		if err := readHands(draft, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading hands: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	session, err := draft.Submit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := store.Append(session); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully recorded session %s: %s\n", session.ID, session.Profit().SignedString())
	return subcommands.ExitSuccess
}

// readHands runs the interactive hand-entry loop. A hand with an empty
// preflop line ends the loop; later streets may be left blank.
func readHands(draft *pokerlog.Draft, in *os.File, out *os.File) error {
	scanner := bufio.NewScanner(in)
	ask := func(label string) (string, error) {
		fmt.Fprintf(out, "%s> ", label)
		if !scanner.Scan() {
			return "", scanner.Err()
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	fmt.Fprintln(out, "Recording hands. Leave preflop empty to finish.")
	for {
		preflop, err := ask("preflop")
		if err != nil {
			return err
		}
		if preflop == "" {
			return nil
		}
		draft.Hand.Preflop = preflop
		if draft.Hand.Flop, err = ask("flop"); err != nil {
			return err
		}
		if draft.Hand.Turn, err = ask("turn"); err != nil {
			return err
		}
		if draft.Hand.River, err = ask("river"); err != nil {
			return err
		}
		if draft.Hand.Result, err = ask("result"); err != nil {
			return err
		}
		if draft.Hand.Notes, err = ask("notes"); err != nil {
			return err
		}
		draft.AddHand()
	}
}
