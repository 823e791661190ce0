package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/clavrhq/clavr/internal/cli/formatter"
	"github.com/clavrhq/clavr/internal/intelligence"
	"github.com/clavrhq/clavr/internal/llm"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   `ask "<natural language>"`,
		Short: "Route a natural-language request",
		Long:  "Parse a natural-language request into an assistant operation and run it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resolution, err := app.Intent.Route(ctx, args[0])
			if err != nil {
				if errors.Is(err, llm.ErrTimeout) {
					return fmt.Errorf("parse failed: %w (set CLAVR_LLM_PARSE_TIMEOUT_MS, e.g. 15000)", err)
				}
				return fmt.Errorf("parse failed: %w", err)
			}

			fmt.Print(formatter.FormatResolution(resolution))

			switch resolution.ExecutionState {
			case intelligence.StateExecuted:
				return runIntent(ctx, app, args[0], resolution.ParsedIntent)
			case intelligence.StateNeedsConfirmation:
				if yes || confirmPrompt() {
					return runIntent(ctx, app, args[0], resolution.ParsedIntent)
				}
				fmt.Println(formatter.Dim("Cancelled."))
			case intelligence.StateNeedsClarification, intelligence.StateRejected:
				// Display already handled by formatter.
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// runIntent dispatches and records the exchange.
func runIntent(ctx context.Context, app *App, query string, intent *intelligence.ParsedIntent) error {
	result, err := dispatchIntent(ctx, app, intent)
	if err != nil {
		return err
	}
	fmt.Print(result.Display)

	if app.History != nil {
		// History is best-effort; a full disk never blocks the answer.
		_ = app.History.Record(ctx, query, string(intent.Intent), result.Factual)
	}
	return nil
}

func confirmPrompt() bool {
	fmt.Print("Confirm? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	text, _ := reader.ReadString('\n')
	text = strings.TrimSpace(strings.ToLower(text))
	return text == "y" || text == "yes"
}
