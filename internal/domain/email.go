package domain

import "time"

// EmailMessage is a metadata-only view of a mailbox message. Bodies are
// never fetched; the assistant only summarizes headers and snippets.
type EmailMessage struct {
	ID       string
	ThreadID string
	From     string
	Subject  string
	Snippet  string
	Received time.Time
	Unread   bool
}
