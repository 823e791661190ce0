package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clavrhq/clavr/internal/cli/formatter"
	"github.com/clavrhq/clavr/internal/contract"
	"github.com/clavrhq/clavr/internal/intelligence"
)

// dispatchResult carries both the styled output for the terminal and a
// plain factual sentence for history and LLM rephrasing.
type dispatchResult struct {
	Display string
	Factual string
}

// dispatchIntent executes a parsed intent against the services.
func dispatchIntent(ctx context.Context, app *App, intent *intelligence.ParsedIntent) (dispatchResult, error) {
	switch intent.Intent {

	case intelligence.IntentAgenda:
		req := contract.AgendaRequest{Days: intArg(intent.Arguments, "days", 1)}
		if day := stringArg(intent.Arguments, "day"); day != "" {
			parsed, err := parseWhen(day, time.Now(), appLocation(ctx, app))
			if err == nil {
				req.Day = parsed
			}
		}
		resp, err := app.Agenda.Agenda(ctx, req)
		if err != nil {
			return dispatchResult{}, err
		}
		return dispatchResult{
			Display: formatter.FormatAgenda(resp),
			Factual: fmt.Sprintf("%d events on %s", len(resp.Events), resp.RangeStart.Format("Jan 2")),
		}, nil

	case intelligence.IntentCheckAvailability:
		req, err := conflictRequestFromArgs(ctx, app, intent.Arguments)
		if err != nil {
			return dispatchResult{}, err
		}
		result, err := app.Scheduler.CheckConflict(ctx, req)
		if err != nil {
			return dispatchResult{}, err
		}
		factual := "The slot is free."
		if result.HasConflict {
			factual = fmt.Sprintf("The slot conflicts with %d event(s).", len(result.Conflicts))
		}
		return dispatchResult{Display: formatter.FormatConflictResult(result), Factual: factual}, nil

	case intelligence.IntentScheduleEvent:
		req, err := conflictRequestFromArgs(ctx, app, intent.Arguments)
		if err != nil {
			return dispatchResult{}, err
		}
		result, err := app.Scheduler.CheckConflict(ctx, req)
		if err != nil {
			return dispatchResult{}, err
		}
		if result.HasConflict {
			return dispatchResult{
				Display: formatter.FormatConflictResult(result),
				Factual: fmt.Sprintf("Not booked: %q conflicts with %d event(s).", req.Title, len(result.Conflicts)),
			}, nil
		}
		id, err := app.Scheduler.Book(ctx, req)
		if err != nil {
			return dispatchResult{}, err
		}
		factual := fmt.Sprintf("Booked %q for %s.", req.Title, req.Start.Format("Mon Jan 2 15:04"))
		return dispatchResult{
			Display: formatter.StyleGreen.Render(factual) + " " + formatter.Dim(id) + "\n",
			Factual: factual,
		}, nil

	case intelligence.IntentRescheduleEvent, intelligence.IntentCancelEvent:
		if stringArg(intent.Arguments, "event_id") == "" {
			verb := strings.TrimSuffix(string(intent.Intent), "_event")
			msg := fmt.Sprintf("I need the event id. Try: clavr agenda, then clavr %s <event-id>.", verb)
			return dispatchResult{Display: formatter.Dim(msg) + "\n", Factual: msg}, nil
		}
		if intent.Intent == intelligence.IntentCancelEvent {
			if err := app.Scheduler.Cancel(ctx, stringArg(intent.Arguments, "event_id")); err != nil {
				return dispatchResult{}, err
			}
			return dispatchResult{
				Display: formatter.StyleGreen.Render("Cancelled.") + "\n",
				Factual: "Event cancelled.",
			}, nil
		}
		msg := "Use: clavr reschedule <event-id> <title> --at <time>."
		return dispatchResult{Display: formatter.Dim(msg) + "\n", Factual: msg}, nil

	case intelligence.IntentFreeSlots:
		day := time.Now()
		if d := stringArg(intent.Arguments, "day"); d != "" {
			if parsed, err := parseWhen(d, time.Now(), appLocation(ctx, app)); err == nil {
				day = parsed
			}
		}
		resp, err := app.Scheduler.FindFreeSlots(ctx, contract.FreeSlotsRequest{
			Day:              day,
			DurationMin:      intArg(intent.Arguments, "duration_min", 0),
			MaxCount:         intArg(intent.Arguments, "max_count", 0),
			WorkingHoursOnly: true,
		})
		if err != nil {
			return dispatchResult{}, err
		}
		return dispatchResult{
			Display: formatter.FormatFreeSlots(resp),
			Factual: fmt.Sprintf("%d open slot(s) found.", len(resp.Slots)),
		}, nil

	case intelligence.IntentTaskAdd:
		title := stringArg(intent.Arguments, "title")
		var due *time.Time
		if d := stringArg(intent.Arguments, "due"); d != "" {
			if parsed, err := parseWhen(d, time.Now(), appLocation(ctx, app)); err == nil {
				due = &parsed
			}
		}
		if _, err := app.Tasks.Add(ctx, title, stringArg(intent.Arguments, "notes"), due); err != nil {
			return dispatchResult{}, err
		}
		factual := fmt.Sprintf("Added task %q.", title)
		return dispatchResult{Display: formatter.StyleGreen.Render(factual) + "\n", Factual: factual}, nil

	case intelligence.IntentTaskList:
		items, err := app.Tasks.List(ctx, false)
		if err != nil {
			return dispatchResult{}, err
		}
		return dispatchResult{
			Display: formatter.FormatTasks(items),
			Factual: fmt.Sprintf("%d open task(s).", len(items)),
		}, nil

	case intelligence.IntentTaskComplete:
		taskID := stringArg(intent.Arguments, "task_id")
		if taskID == "" {
			msg := "I need the task id. Try: clavr task list, then clavr task done <task-id>."
			return dispatchResult{Display: formatter.Dim(msg) + "\n", Factual: msg}, nil
		}
		if err := app.Tasks.Complete(ctx, taskID); err != nil {
			return dispatchResult{}, err
		}
		return dispatchResult{
			Display: formatter.StyleGreen.Render("Done.") + "\n",
			Factual: "Task completed.",
		}, nil

	case intelligence.IntentEmailSummary:
		resp, err := app.Email.Summary(ctx, contract.EmailSummaryRequest{
			MaxResults: intArg(intent.Arguments, "max_results", 0),
		})
		if err != nil {
			return dispatchResult{}, err
		}
		return dispatchResult{
			Display: formatter.FormatEmailSummary(resp.Summary, resp.Messages, resp.UnreadCount),
			Factual: resp.Summary,
		}, nil

	case intelligence.IntentEmailSearch:
		messages, err := app.Email.Search(ctx,
			stringArg(intent.Arguments, "query"),
			intArg(intent.Arguments, "max_results", 0),
		)
		if err != nil {
			return dispatchResult{}, err
		}
		return dispatchResult{
			Display: formatter.FormatMessages(messages),
			Factual: fmt.Sprintf("%d message(s) matched.", len(messages)),
		}, nil

	case intelligence.IntentHelp:
		return dispatchResult{Display: helpText(), Factual: "Showed help."}, nil

	default:
		return dispatchResult{}, fmt.Errorf("unhandled intent %q", intent.Intent)
	}
}

// conflictRequestFromArgs builds a conflict check from parsed NL arguments.
func conflictRequestFromArgs(ctx context.Context, app *App, args map[string]any) (contract.ConflictCheckRequest, error) {
	req := contract.ConflictCheckRequest{
		Title:       stringArg(args, "title"),
		DurationMin: intArg(args, "duration_min", 0),
		Location:    stringArg(args, "location"),
	}
	start := stringArg(args, "start")
	if start == "" {
		return contract.ConflictCheckRequest{}, fmt.Errorf("no start time understood; say e.g. \"tomorrow at 10am\" or use clavr schedule --at")
	}
	parsed, err := parseWhen(start, time.Now(), appLocation(ctx, app))
	if err != nil {
		return contract.ConflictCheckRequest{}, err
	}
	req.Start = parsed
	return req, nil
}

func helpText() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Clavr"))
	b.WriteString("\n")
	for _, line := range []string{
		`ask "<anything>"      route a natural-language request`,
		"chat                  interactive assistant session",
		"agenda                today's events",
		`schedule "<title>"    book an event (checks conflicts)`,
		"free                  open slots on a day",
		"task list|add|done    manage tasks",
		"email summary|search  peek at your inbox",
		"profile show|set      assistant settings",
	} {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func intArg(args map[string]any, key string, fallback int) int {
	v, ok := args[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return fallback
	}
}
