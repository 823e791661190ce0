package google

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/clavrhq/clavr/internal/domain"
)

// GmailClient wraps the Gmail API read-only surface: the assistant
// summarizes and searches headers, it never touches bodies or sends.
type GmailClient struct {
	svc *gmailapi.Service
}

// NewGmailClient builds a client over an authenticated HTTP client.
func NewGmailClient(ctx context.Context, httpClient *http.Client) (*GmailClient, error) {
	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("creating gmail service: %w", err)
	}
	return &GmailClient{svc: svc}, nil
}

// Search returns metadata for messages matching a Gmail query string.
func (c *GmailClient) Search(ctx context.Context, query string, maxResults int) ([]domain.EmailMessage, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	listResp, err := c.svc.Users.Messages.List("me").
		Q(query).
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("searching messages (q=%q): %w", query, err)
	}

	messages := make([]domain.EmailMessage, 0, len(listResp.Messages))
	for _, ref := range listResp.Messages {
		msg, err := c.svc.Users.Messages.Get("me", ref.Id).
			Format("metadata").
			MetadataHeaders("From", "Subject").
			Context(ctx).
			Do()
		if err != nil {
			continue
		}
		messages = append(messages, messageFromAPI(msg))
	}
	return messages, nil
}

// UnreadCount returns the number of unread inbox messages.
func (c *GmailClient) UnreadCount(ctx context.Context) (int, error) {
	resp, err := c.svc.Users.Labels.Get("me", "UNREAD").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("reading unread label: %w", err)
	}
	return int(resp.MessagesUnread), nil
}

func messageFromAPI(msg *gmailapi.Message) domain.EmailMessage {
	email := domain.EmailMessage{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		Snippet:  msg.Snippet,
		Received: time.UnixMilli(msg.InternalDate),
	}
	for _, label := range msg.LabelIds {
		if label == "UNREAD" {
			email.Unread = true
		}
	}
	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			switch h.Name {
			case "From":
				email.From = h.Value
			case "Subject":
				email.Subject = h.Value
			}
		}
	}
	return email
}
