package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/clavrhq/clavr/internal/domain"
	"github.com/clavrhq/clavr/internal/llm"
)

// SummarizeService digests mailbox metadata. Without a model it falls
// back to a deterministic one-liner.
type SummarizeService interface {
	SummarizeEmail(ctx context.Context, messages []domain.EmailMessage, unread int) string
}

type summarizeService struct {
	client llm.Client
}

// NewSummarizeService creates a SummarizeService; client may be nil.
func NewSummarizeService(client llm.Client) SummarizeService {
	return &summarizeService{client: client}
}

func (s *summarizeService) SummarizeEmail(ctx context.Context, messages []domain.EmailMessage, unread int) string {
	fallback := deterministicEmailSummary(messages, unread)
	if s.client == nil || len(messages) == 0 {
		return fallback
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Unread: %d\n", unread)
	for _, m := range messages {
		fmt.Fprintf(&b, "%s | %s | %s\n", m.From, m.Subject, m.Snippet)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummarize,
		SystemPrompt: summarizeSystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return fallback
	}
	if digest := strings.TrimSpace(resp.Text); digest != "" {
		return digest
	}
	return fallback
}

func deterministicEmailSummary(messages []domain.EmailMessage, unread int) string {
	if len(messages) == 0 {
		if unread == 0 {
			return "Your inbox is quiet: no unread mail."
		}
		return fmt.Sprintf("You have %d unread messages.", unread)
	}

	senders := make([]string, 0, 3)
	seen := map[string]bool{}
	for _, m := range messages {
		if len(senders) == 3 {
			break
		}
		if !seen[m.From] {
			seen[m.From] = true
			senders = append(senders, m.From)
		}
	}
	return fmt.Sprintf("%d unread, %d recent messages; latest from %s.",
		unread, len(messages), strings.Join(senders, ", "))
}
