package cli

import (
	"github.com/clavrhq/clavr/internal/intelligence"
	"github.com/clavrhq/clavr/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Scheduler service.SchedulerService
	Agenda    service.AgendaService
	Tasks     service.TaskService
	Email     service.EmailService
	Profile   service.ProfileService
	History   service.HistoryService

	// NL routing. Always wired; heuristics work without an LLM.
	Intent intelligence.IntentService
	Reply  intelligence.ReplyService

	// AuthFlow runs the OAuth consent flow; nil when credentials are
	// not configured.
	AuthFlow AuthFlow

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "clavr" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "clavr",
		Short: "Personal assistant for your calendar, tasks, and inbox",
	}

	root.AddCommand(
		newAskCmd(app),
		newChatCmd(app),
		newAgendaCmd(app),
		newScheduleCmd(app),
		newRescheduleCmd(app),
		newCancelCmd(app),
		newFreeCmd(app),
		newTaskCmd(app),
		newEmailCmd(app),
		newProfileCmd(app),
		newHistoryCmd(app),
		newAuthCmd(app),
	)

	return root
}
