package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/clavrhq/clavr/internal/cli"
	"github.com/clavrhq/clavr/internal/db"
	"github.com/clavrhq/clavr/internal/domain"
	"github.com/clavrhq/clavr/internal/google"
	"github.com/clavrhq/clavr/internal/intelligence"
	"github.com/clavrhq/clavr/internal/llm"
	"github.com/clavrhq/clavr/internal/repository"
	"github.com/clavrhq/clavr/internal/service"
	"github.com/clavrhq/clavr/internal/travel"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Determine DB path: env var or default ~/.clavr/clavr.db
	dbPath := os.Getenv("CLAVR_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".clavr", "clavr.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	profileRepo := repository.NewSQLiteUserProfileRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)

	// The profile timezone localizes everything the assistant shows.
	loc := time.Local
	if profile, err := profileRepo.Get(ctx); err == nil && profile.Timezone != "" {
		if l, lerr := time.LoadLocation(profile.Timezone); lerr == nil {
			loc = l
		}
	}

	var observers []service.UseCaseObserver
	if v := os.Getenv("CLAVR_LOG_USE_CASES"); v == "1" || v == "true" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Google sources require a stored OAuth token; until `clavr auth`
	// has run, the sources return an instructive error instead.
	creds := googleCredentials()
	var (
		events service.EventSource
		tasks  service.TaskSource
		mail   service.MailSource
	)
	if httpClient, err := googleClient(ctx, creds); err != nil {
		stub := notConnected{err: err}
		events, tasks, mail = stub, stub, stub
	} else {
		cal, err := google.NewCalendarClient(ctx, httpClient, os.Getenv("CLAVR_CALENDAR_ID"), loc)
		if err != nil {
			return fmt.Errorf("wiring calendar client: %w", err)
		}
		tc, err := google.NewTasksClient(ctx, httpClient, os.Getenv("CLAVR_TASKLIST_ID"))
		if err != nil {
			return fmt.Errorf("wiring tasks client: %w", err)
		}
		gm, err := google.NewGmailClient(ctx, httpClient)
		if err != nil {
			return fmt.Errorf("wiring gmail client: %w", err)
		}
		events, tasks, mail = cal, tc, gm
	}

	// Travel estimates are optional; without an API key the check is a
	// no-op and bookings are judged on direct overlaps alone.
	var travelProvider travel.Provider = travel.Noop{}
	if key := os.Getenv("CLAVR_MAPS_API_KEY"); key != "" {
		travelProvider = travel.NewDistanceMatrixClient(key)
	}

	// Wire intelligence. Intent routing always works via heuristics;
	// the LLM refines parsing and adds replies and summaries when enabled.
	llmCfg := llm.LoadConfig()
	var llmClient llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
	}
	policy := intelligence.DefaultConfirmationPolicy(llmCfg.ConfidenceThreshold)
	summarizer := intelligence.NewSummarizeService(llmClient)

	app := &cli.App{
		Scheduler: service.NewSchedulerService(events, profileRepo, travelProvider, observers...),
		Agenda:    service.NewAgendaService(events, profileRepo, observers...),
		Tasks:     service.NewTaskService(tasks, observers...),
		Email:     service.NewEmailService(mail, summarizer, observers...),
		Profile:   service.NewProfileService(profileRepo),
		History:   service.NewHistoryService(historyRepo),

		Intent: intelligence.NewIntentService(llmClient, policy),
		Reply:  intelligence.NewReplyService(llmClient),
	}

	if creds.ClientSecretPath != "" {
		app.AuthFlow = googleAuthFlow{creds: creds}
	}

	// Detect interactive terminal for chat-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func googleCredentials() google.Credentials {
	creds := google.Credentials{
		ClientSecretPath: os.Getenv("CLAVR_GOOGLE_CREDENTIALS"),
		TokenPath:        os.Getenv("CLAVR_GOOGLE_TOKEN"),
	}
	if creds.TokenPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			creds.TokenPath = filepath.Join(home, ".clavr", "token.json")
		}
	}
	return creds
}

func googleClient(ctx context.Context, creds google.Credentials) (*http.Client, error) {
	if creds.ClientSecretPath == "" {
		return nil, fmt.Errorf("Google account not connected. Set CLAVR_GOOGLE_CREDENTIALS and run 'clavr auth'")
	}
	return google.NewHTTPClient(ctx, creds)
}

// googleAuthFlow adapts the package-level OAuth helpers to the CLI's
// AuthFlow interface.
type googleAuthFlow struct {
	creds google.Credentials
}

func (f googleAuthFlow) AuthURL() (string, error) {
	return google.AuthURL(f.creds)
}

func (f googleAuthFlow) Exchange(ctx context.Context, code string) error {
	return google.ExchangeAndStore(ctx, f.creds, code)
}

// notConnected stands in for the Google sources before auth has run.
// Every call fails with the reason the real client could not be built.
type notConnected struct {
	err error
}

func (n notConnected) ListEvents(context.Context, time.Time, time.Time) ([]domain.CalendarEvent, error) {
	return nil, n.err
}
func (n notConnected) InsertEvent(context.Context, domain.CalendarEvent) (string, error) {
	return "", n.err
}
func (n notConnected) UpdateEvent(context.Context, domain.CalendarEvent) error { return n.err }
func (n notConnected) DeleteEvent(context.Context, string) error               { return n.err }

func (n notConnected) ListTasks(context.Context, bool) ([]domain.TaskItem, error) { return nil, n.err }
func (n notConnected) AddTask(context.Context, domain.TaskItem) (string, error)   { return "", n.err }
func (n notConnected) CompleteTask(context.Context, string) error                 { return n.err }

func (n notConnected) Search(context.Context, string, int) ([]domain.EmailMessage, error) {
	return nil, n.err
}
func (n notConnected) UnreadCount(context.Context) (int, error) { return 0, n.err }
