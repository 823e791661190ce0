package domain

import "time"

// ExchangeLog records one ask interaction: what the user said, how it was
// routed, and what the assistant answered.
type ExchangeLog struct {
	ID        string
	CreatedAt time.Time
	Query     string
	Intent    string
	Reply     string
}
