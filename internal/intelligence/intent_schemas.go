package intelligence

import "fmt"

// ValidateIntentArguments checks intent arguments against per-intent
// requirements. Only hard requirements are enforced; optional fields are
// passed through for the command layer to interpret.
func ValidateIntentArguments(intent IntentName, args map[string]any) error {
	switch intent {
	case IntentScheduleEvent:
		if stringArg(args, "title") == "" {
			return fmt.Errorf("schedule_event requires a title")
		}
	case IntentTaskAdd:
		if stringArg(args, "title") == "" {
			return fmt.Errorf("task_add requires a title")
		}
	case IntentEmailSearch:
		if stringArg(args, "query") == "" {
			return fmt.Errorf("email_search requires a query")
		}
	case IntentRescheduleEvent, IntentCancelEvent:
		if stringArg(args, "event_id") == "" && stringArg(args, "title") == "" {
			return fmt.Errorf("%s requires an event id or title", intent)
		}
	case IntentTaskComplete:
		if stringArg(args, "task_id") == "" && stringArg(args, "title") == "" {
			return fmt.Errorf("task_complete requires a task id or title")
		}
	case IntentFreeSlots, IntentCheckAvailability:
		if n, ok := numberArg(args, "duration_min"); ok && n <= 0 {
			return fmt.Errorf("%s duration_min must be positive", intent)
		}
	}
	return nil
}

func stringArg(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	s, _ := args[key].(string)
	return s
}

func numberArg(args map[string]any, key string) (float64, bool) {
	if args == nil {
		return 0, false
	}
	n, ok := args[key].(float64)
	return n, ok
}
