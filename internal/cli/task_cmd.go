package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/clavrhq/clavr/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage your to-do list",
	}
	cmd.AddCommand(newTaskListCmd(app), newTaskAddCmd(app), newTaskDoneCmd(app))
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Tasks.List(context.Background(), all)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTasks(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var due string
	var notes string

	cmd := &cobra.Command{
		Use:   `add "<title>"`,
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var duePtr *time.Time
			if due != "" {
				parsed, err := parseWhen(due, time.Now(), appLocation(ctx, app))
				if err != nil {
					return err
				}
				duePtr = &parsed
			}

			id, err := app.Tasks.Add(ctx, args[0], notes, duePtr)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("Added."), formatter.Dim(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (today, tomorrow, or YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Complete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Done."))
			return nil
		},
	}
}
