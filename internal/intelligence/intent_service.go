package intelligence

import (
	"context"
	"fmt"

	"github.com/clavrhq/clavr/internal/llm"
)

// IntentService routes natural language text to structured intents.
type IntentService interface {
	Route(ctx context.Context, text string) (*Resolution, error)
}

type intentService struct {
	client llm.Client // nil when the LLM is disabled
	policy ConfirmationPolicy
}

// NewIntentService creates an IntentService. client may be nil, in which
// case only the heuristic router is consulted.
func NewIntentService(client llm.Client, policy ConfirmationPolicy) IntentService {
	return &intentService{client: client, policy: policy}
}

func (s *intentService) Route(ctx context.Context, text string) (*Resolution, error) {
	// Regex rules first: they cover the common phrasings without a
	// model round-trip.
	if parsed, ok := RouteHeuristically(text); ok {
		return s.resolve(parsed), nil
	}

	if s.client == nil {
		return &Resolution{
			ExecutionState: StateNeedsClarification,
			ExecutionMessage: "I couldn't work out what you meant. " +
				"Try 'agenda', 'free slots', 'schedule ...', 'tasks', or 'email'.",
		}, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskParse,
		SystemPrompt: parseSystemPrompt,
		UserPrompt:   text,
	})
	if err != nil {
		return nil, fmt.Errorf("llm parse failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[ParsedIntent](resp.Text, validateParsedIntent)
	if err != nil {
		return &Resolution{
			ExecutionState:   StateRejected,
			ExecutionMessage: fmt.Sprintf("Could not understand the request: %v", err),
		}, nil
	}
	parsed.Source = "llm"

	// Hard safety: write classification is enforced here, not trusted
	// from model output.
	EnforceWriteSafety(&parsed)

	if argErr := ValidateIntentArguments(parsed.Intent, parsed.Arguments); argErr != nil {
		return &Resolution{
			ParsedIntent:     &parsed,
			ExecutionState:   StateRejected,
			ExecutionMessage: argErr.Error(),
		}, nil
	}

	return s.resolve(&parsed), nil
}

func (s *intentService) resolve(parsed *ParsedIntent) *Resolution {
	state := s.policy.Evaluate(parsed)
	return &Resolution{
		ParsedIntent:     parsed,
		ExecutionState:   state,
		ExecutionMessage: executionMessage(state, parsed),
	}
}

// validateParsedIntent is the schema validator for ExtractJSON.
func validateParsedIntent(p ParsedIntent) error {
	if !IsValidIntent(p.Intent) {
		return fmt.Errorf("unknown intent: %s", p.Intent)
	}
	if p.Risk != RiskReadOnly && p.Risk != RiskWrite {
		return fmt.Errorf("risk must be 'read_only' or 'write', got %q", p.Risk)
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %f", p.Confidence)
	}
	return nil
}

func executionMessage(state ExecutionState, intent *ParsedIntent) string {
	switch state {
	case StateExecuted:
		return fmt.Sprintf("Executing %s (confidence: %.0f%%)", intent.Intent, intent.Confidence*100)
	case StateNeedsConfirmation:
		return fmt.Sprintf("Parsed as %s (write operation). Confirm to proceed.", intent.Intent)
	case StateNeedsClarification:
		return fmt.Sprintf("Low confidence (%.0f%%) for %s. Please clarify.", intent.Confidence*100, intent.Intent)
	case StateRejected:
		return fmt.Sprintf("Cannot execute %s: invalid arguments.", intent.Intent)
	default:
		return ""
	}
}
