// Package google holds the thin wrappers over the Google Calendar, Tasks,
// and Gmail APIs. Each wrapper normalizes provider payloads into domain
// types and nothing else; all policy lives in the services.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	calendarapi "google.golang.org/api/calendar/v3"
	gmailapi "google.golang.org/api/gmail/v1"
	tasksapi "google.golang.org/api/tasks/v1"
)

// Scopes requested during the OAuth consent flow. Gmail stays read-only;
// the assistant never sends or modifies mail.
var scopes = []string{
	calendarapi.CalendarScope,
	tasksapi.TasksScope,
	gmailapi.GmailReadonlyScope,
}

// Credentials locates the OAuth client secret and cached token on disk.
type Credentials struct {
	ClientSecretPath string
	TokenPath        string
}

// NewHTTPClient builds an authenticated HTTP client from stored
// credentials. It fails when the token is missing; the `clavr auth`
// command is responsible for minting one interactively.
func NewHTTPClient(ctx context.Context, creds Credentials) (*http.Client, error) {
	cfg, err := loadOAuthConfig(creds.ClientSecretPath)
	if err != nil {
		return nil, err
	}
	tok, err := tokenFromFile(creds.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("loading oauth token (run 'clavr auth' first): %w", err)
	}
	return cfg.Client(ctx, tok), nil
}

// AuthURL returns the consent URL for the interactive auth flow.
func AuthURL(creds Credentials) (string, error) {
	cfg, err := loadOAuthConfig(creds.ClientSecretPath)
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline), nil
}

// ExchangeAndStore trades an auth code for a token and caches it.
func ExchangeAndStore(ctx context.Context, creds Credentials, code string) error {
	cfg, err := loadOAuthConfig(creds.ClientSecretPath)
	if err != nil {
		return err
	}
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchanging auth code: %w", err)
	}
	return saveToken(creds.TokenPath, tok)
}

func loadOAuthConfig(path string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading client secret: %w", err)
	}
	cfg, err := googleoauth.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parsing client secret: %w", err)
	}
	return cfg, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tok oauth2.Token
	if err := json.NewDecoder(f).Decode(&tok); err != nil {
		return nil, fmt.Errorf("decoding token file: %w", err)
	}
	return &tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating token file: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
