package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/clavrhq/clavr/internal/cli/formatter"
)

// confirmBooking shows a yes/no form and returns the answer. A cancelled
// form counts as no.
func confirmBooking(title string) bool {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Book it").
				Negative("Skip").
				Value(&confirmed),
		),
	).WithTheme(clavrHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false
	}
	return confirmed
}

// clavrHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func clavrHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
