package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive assistant session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("chat needs an interactive terminal; use clavr ask for scripted calls")
			}
			p := tea.NewProgram(newChatModel(app))
			_, err := p.Run()
			return err
		},
	}
}
