// Package intelligence routes natural-language queries to assistant
// operations. A regex/keyword router handles the common phrasings
// deterministically; anything it cannot place falls back to an LLM parse.
package intelligence

// IntentName enumerates the operations the NL router can produce.
type IntentName string

const (
	IntentScheduleEvent     IntentName = "schedule_event"
	IntentRescheduleEvent   IntentName = "reschedule_event"
	IntentCancelEvent       IntentName = "cancel_event"
	IntentAgenda            IntentName = "agenda"
	IntentCheckAvailability IntentName = "check_availability"
	IntentFreeSlots         IntentName = "free_slots"
	IntentTaskAdd           IntentName = "task_add"
	IntentTaskList          IntentName = "task_list"
	IntentTaskComplete      IntentName = "task_complete"
	IntentEmailSummary      IntentName = "email_summary"
	IntentEmailSearch       IntentName = "email_search"
	IntentHelp              IntentName = "help"
)

var validIntents = map[IntentName]bool{
	IntentScheduleEvent: true, IntentRescheduleEvent: true, IntentCancelEvent: true,
	IntentAgenda: true, IntentCheckAvailability: true, IntentFreeSlots: true,
	IntentTaskAdd: true, IntentTaskList: true, IntentTaskComplete: true,
	IntentEmailSummary: true, IntentEmailSearch: true, IntentHelp: true,
}

// IsValidIntent returns true if the given name is a known intent.
func IsValidIntent(name IntentName) bool {
	return validIntents[name]
}

// IntentRisk classifies whether an intent reads or mutates state.
type IntentRisk string

const (
	RiskReadOnly IntentRisk = "read_only"
	RiskWrite    IntentRisk = "write"
)

// writeIntents mutate the user's calendar or task list and always require
// confirmation, whatever the model claims.
var writeIntents = map[IntentName]bool{
	IntentScheduleEvent: true, IntentRescheduleEvent: true, IntentCancelEvent: true,
	IntentTaskAdd: true, IntentTaskComplete: true,
}

// IsWriteIntent returns true if the intent is a mutation.
func IsWriteIntent(name IntentName) bool {
	return writeIntents[name]
}

// ParsedIntent is the structured output of NL-to-command routing, whether
// it came from heuristics or the LLM.
type ParsedIntent struct {
	Intent               IntentName     `json:"intent"`
	Risk                 IntentRisk     `json:"risk"`
	Arguments            map[string]any `json:"arguments"`
	Confidence           float64        `json:"confidence"`
	RequiresConfirmation bool           `json:"requires_confirmation"`
	ClarificationOptions []string       `json:"clarification_options"`
	Source               string         `json:"source,omitempty"` // "heuristic" or "llm"
}

// EnforceWriteSafety forces confirmation on write intents regardless of
// what the parser produced.
func EnforceWriteSafety(p *ParsedIntent) {
	if IsWriteIntent(p.Intent) {
		p.Risk = RiskWrite
		p.RequiresConfirmation = true
	}
}

// ExecutionState describes what happens after a query is routed.
type ExecutionState string

const (
	StateExecuted           ExecutionState = "executed"
	StateNeedsConfirmation  ExecutionState = "needs_confirmation"
	StateNeedsClarification ExecutionState = "needs_clarification"
	StateRejected           ExecutionState = "rejected"
)

// Resolution is the full routing result for one query.
type Resolution struct {
	ParsedIntent     *ParsedIntent  `json:"parsed_intent"`
	ExecutionState   ExecutionState `json:"execution_state"`
	ExecutionMessage string         `json:"execution_message"`
}

// ConfirmationPolicy defines when parsed intents may auto-execute.
type ConfirmationPolicy struct {
	AutoExecuteReadThreshold float64
}

// DefaultConfirmationPolicy returns a policy with the given read threshold.
func DefaultConfirmationPolicy(threshold float64) ConfirmationPolicy {
	return ConfirmationPolicy{AutoExecuteReadThreshold: threshold}
}

// Evaluate determines the execution state for a parsed intent.
func (p ConfirmationPolicy) Evaluate(intent *ParsedIntent) ExecutionState {
	if intent.Risk == RiskWrite || IsWriteIntent(intent.Intent) {
		return StateNeedsConfirmation
	}
	if intent.Confidence >= p.AutoExecuteReadThreshold {
		return StateExecuted
	}
	return StateNeedsClarification
}
