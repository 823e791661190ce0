package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/clavrhq/clavr/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// AuthFlow abstracts the OAuth consent exchange so the command stays
// testable without Google credentials.
type AuthFlow interface {
	AuthURL() (string, error)
	Exchange(ctx context.Context, code string) error
}

func newAuthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Connect your Google account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.AuthFlow == nil {
				return fmt.Errorf("no Google credentials configured. Set CLAVR_GOOGLE_CREDENTIALS to your client secret JSON path")
			}

			url, err := app.AuthFlow.AuthURL()
			if err != nil {
				return err
			}
			fmt.Println("Open this URL in your browser and approve access:")
			fmt.Println(formatter.StyleBlue.Render(url))
			fmt.Print("\nPaste the authorization code: ")

			reader := bufio.NewReader(os.Stdin)
			code, _ := reader.ReadString('\n')
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("no authorization code entered")
			}

			if err := app.AuthFlow.Exchange(context.Background(), code); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Connected. Calendar, Tasks, and Gmail are now available."))
			return nil
		},
	}
}
