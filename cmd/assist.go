package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/railbird/pokerlog"
	"github.com/railbird/pokerlog/agent"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "Start an interactive session with the AI assistant." }
func (*assistCmd) Usage() string {
	return `pokerlog assist [initial prompt]

  Start an interactive session with the AI assistant. A Coach expert
  answers strategy questions and a Bookkeeper expert reads the session
  journal.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	loader := func() ([]pokerlog.Session, error) {
		store, closeStore, err := OpenStore()
		if err != nil {
			return nil, err
		}
		defer closeStore()
		return store.Sessions(), nil
	}

	coach := agent.NewCoach()
	bookkeeper := agent.NewBookkeeper(loader)
	a := agent.New(os.Stdout, os.Stdin, coach, bookkeeper)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
