package agent

import (
	"context"
	"fmt"

	"github.com/railbird/pokerlog"
	"github.com/railbird/pokerlog/date"
	"github.com/railbird/pokerlog/docs"
	"github.com/railbird/pokerlog/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a live poker player reviewing his results and his play.
			He will assume that you know his session journal, check it first to understand
			where, what stakes and how often he plays.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewCoach returns the expert for strategy and poker knowledge, grounded
// by search.
func NewCoach() *Expert {
	return &Expert{
		Name: "Coach",
		Description: `This is an expert poker coach,
		very well aware of live no-limit strategy, game selection and
		bankroll management, and of the current poker scene.
		Ask the Coach whenever you need strategy advice or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in live no-limit hold'em. You can advise on hand play,
			game selection, bankroll management and tilt control. You leverage Google
			Search to ground your assertions in solid truth, and you know how to
			relate recent poker news to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper returns the expert in charge of the user's session
// journal. The loader is called on every tool invocation so the expert
// always sees the current journal.
func NewBookkeeper(loader func() ([]pokerlog.Session, error)) *Expert {
	lib := []Function{
		statsFunc(loader),
		sessionsFunc(loader),
		calendarFunc(loader),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's
		session journal. He can compute the relevant figures about the user's
		results: lifetime stats, per-location breakdown, session list and
		monthly calendar.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's poker session journal.
				You know how to use the Tools to extract relevant information about the
				user's sessions and results. You are part of a team of experts, yours is
				everything in the journal. They might ask you questions about the user's
				results, pardon their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func statsFunc(loader func() ([]pokerlog.Session, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Stats",
			Description: `Stats computes the user's lifetime results: total profit, ROI,
			win-loss-draw record, and the per-location breakdown.

			` + must(docs.Topic("stats")),
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the user's lifetime stats and per-location results.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			sessions, err := loader()
			if err != nil {
				return errResponse(id, "Stats", err)
			}
			stats := pokerlog.NewLifetimeStats(sessions)
			locations := pokerlog.LocationRollup(sessions)
			return okResponse(id, "Stats", renderer.StatsMarkdown(stats, locations))
		},
	}
}

func sessionsFunc(loader func() ([]pokerlog.Session, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Sessions",
			Description: `Sessions lists every session in the user's journal, newest first,
			with its id, start time, location, stakes and profit.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all sessions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			sessions, err := loader()
			if err != nil {
				return errResponse(id, "Sessions", err)
			}
			return okResponse(id, "Sessions", renderer.SessionsMarkdown(sessions))
		},
	}
}

func calendarFunc(loader func() ([]pokerlog.Session, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Calendar",
			Description: `Calendar computes the user's results for one month: total profit,
			session count, winning and losing days, and the per-day breakdown.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": {
						Type:        genai.TypeString,
						Description: "The month to report on, formatted YYYY-MM. The current month is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the month's results.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			month := date.MonthOf(date.Today())
			if imonth, ok := args["month"]; ok {
				smonth, ok := imonth.(string)
				if !ok {
					return errResponse(id, "Calendar", fmt.Errorf("argument 'month' is not a string as expected but %T", imonth))
				}
				var err error
				month, err = date.ParseMonth(smonth)
				if err != nil {
					return errResponse(id, "Calendar", fmt.Errorf("argument 'month' must be formatted YYYY-MM, got %q", smonth))
				}
			}

			sessions, err := loader()
			if err != nil {
				return errResponse(id, "Calendar", err)
			}
			daily := pokerlog.NewDailyRollup(sessions)
			stats := pokerlog.NewMonthStats(daily, month)
			return okResponse(id, "Calendar", renderer.CalendarMarkdown(stats, daily))
		},
	}
}
