package cli

import (
	"context"
	"fmt"

	"github.com/clavrhq/clavr/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent ask exchanges",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.History.Recent(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHistory(logs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of exchanges to show")
	return cmd
}
