package cli

import (
	"context"
	"fmt"

	"github.com/clavrhq/clavr/internal/cli/formatter"
	"github.com/clavrhq/clavr/internal/contract"
	"github.com/spf13/cobra"
)

func newEmailCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Peek at your inbox",
	}
	cmd.AddCommand(newEmailSummaryCmd(app), newEmailSearchCmd(app))
	return cmd
}

func newEmailSummaryCmd(app *App) *cobra.Command {
	var maxResults int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize recent mail",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Email.Summary(context.Background(), contract.EmailSummaryRequest{
				MaxResults: maxResults,
			})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatEmailSummary(resp.Summary, resp.Messages, resp.UnreadCount))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxResults, "count", 10, "Messages to include")
	return cmd
}

func newEmailSearchCmd(app *App) *cobra.Command {
	var maxResults int

	cmd := &cobra.Command{
		Use:   `search "<query>"`,
		Short: "Search mail with a Gmail query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := app.Email.Search(context.Background(), args[0], maxResults)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatMessages(messages))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxResults, "count", 10, "Messages to return")
	return cmd
}
