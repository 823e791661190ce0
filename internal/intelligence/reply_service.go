package intelligence

import (
	"context"
	"strings"

	"github.com/clavrhq/clavr/internal/llm"
)

// ReplyService optionally rephrases deterministic answers into
// conversational replies. The engine's facts always survive: on any model
// problem the original text is returned unchanged.
type ReplyService interface {
	Rephrase(ctx context.Context, factual string) string
}

type replyService struct {
	client llm.Client
}

// NewReplyService creates a ReplyService. client may be nil; the service
// then degrades to identity.
func NewReplyService(client llm.Client) ReplyService {
	return &replyService{client: client}
}

func (s *replyService) Rephrase(ctx context.Context, factual string) string {
	if s.client == nil || strings.TrimSpace(factual) == "" {
		return factual
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReply,
		SystemPrompt: replySystemPrompt,
		UserPrompt:   factual,
	})
	if err != nil {
		return factual
	}

	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		return factual
	}
	return reply
}
