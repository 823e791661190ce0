package intelligence

import (
	"regexp"
	"strings"
)

// heuristicRule maps a phrasing pattern to an intent. Rules are tried in
// order; the first match wins. Argument extraction stays coarse here;
// exact dates and titles are resolved by the command layer or the LLM.
type heuristicRule struct {
	pattern    *regexp.Regexp
	intent     IntentName
	confidence float64
	args       func(match []string) map[string]any
}

var heuristicRules = []heuristicRule{
	{
		pattern:    regexp.MustCompile(`(?i)\b(reschedule|move|push)\b.*\b(meeting|event|call|appointment)\b`),
		intent:     IntentRescheduleEvent,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(cancel|delete|remove)\b.*\b(meeting|event|call|appointment)\b`),
		intent:     IntentCancelEvent,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(schedule|book|set up|create|add)\b.*\b(meeting|event|call|appointment|lunch|dinner)\b`),
		intent:     IntentScheduleEvent,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(am i|are we)\s+(free|available)\b|\bavailabilit`),
		intent:     IntentCheckAvailability,
		confidence: 0.85,
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(free|open)\s+(slot|time|window)s?\b|\bwhen\s+(am i|can i)\b`),
		intent:     IntentFreeSlots,
		confidence: 0.85,
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(my|the)\s+(agenda|calendar|schedule|day)\b|\bwhat('| i)?s\s+(on|next|today|tomorrow)\b`),
		intent:     IntentAgenda,
		confidence: 0.85,
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(add|create|new)\b.*\b(task|todo|to-do|reminder)\b`),
		intent:     IntentTaskAdd,
		confidence: 0.9,
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(complete|finish|done with|check off|mark)\b.*\b(task|todo|to-do)\b`),
		intent:     IntentTaskComplete,
		confidence: 0.85,
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(my|list|show|what)\b.*\b(tasks|todos|to-dos)\b`),
		intent:     IntentTaskList,
		confidence: 0.85,
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(search|find|look for)\b.*\b(email|mail|inbox|message)s?\b`),
		intent:     IntentEmailSearch,
		confidence: 0.85,
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(email|mail|inbox|message)s?\b`),
		intent:     IntentEmailSummary,
		confidence: 0.8,
	},
	{
		pattern:    regexp.MustCompile(`(?i)^\s*(help|what can you do)\b`),
		intent:     IntentHelp,
		confidence: 1.0,
	},
}

// RouteHeuristically tries the pattern rules against a query. The boolean
// is false when no rule matches and the caller should fall back to the LLM.
func RouteHeuristically(query string) (*ParsedIntent, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, false
	}

	for _, rule := range heuristicRules {
		match := rule.pattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}

		args := map[string]any{"query": trimmed}
		if rule.args != nil {
			for k, v := range rule.args(match) {
				args[k] = v
			}
		}

		parsed := &ParsedIntent{
			Intent:     rule.intent,
			Risk:       RiskReadOnly,
			Arguments:  args,
			Confidence: rule.confidence,
			Source:     "heuristic",
		}
		EnforceWriteSafety(parsed)
		return parsed, true
	}
	return nil, false
}
