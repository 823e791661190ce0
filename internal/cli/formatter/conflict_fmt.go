package formatter

import (
	"fmt"
	"strings"

	"github.com/clavrhq/clavr/internal/contract"
)

// FormatConflictResult renders a conflict check: verdict, the events in
// the way, and alternative slots when there are any.
func FormatConflictResult(result *contract.ConflictResult) string {
	var b strings.Builder

	b.WriteString(AvailabilityIndicator(result.HasConflict))
	b.WriteString("\n")

	if !result.HasConflict {
		b.WriteString(StyleGreen.Render("The slot is free."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(Header("In the way"))
	b.WriteString("\n")
	for _, entry := range result.Conflicts {
		ev := entry.Event
		line := fmt.Sprintf("  %s  %s", ClockRange(ev.Start, ev.End), Bold(ev.Title))
		if ev.Location != "" {
			line += Dim(fmt.Sprintf("  @ %s", ev.Location))
		}
		b.WriteString(line)
		b.WriteString("\n")
		if entry.Reason != "" {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("    ⚠ %s", entry.Reason)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(FormatSuggestions(result.Suggestions))
	return b.String()
}

// FormatSuggestions renders alternative slots, numbered for quick picking.
func FormatSuggestions(slots []contract.TimeSlot) string {
	var b strings.Builder
	b.WriteString(Header("Alternatives"))
	b.WriteString("\n")
	if len(slots) == 0 {
		b.WriteString(Dim("  No open slot found in the coming week."))
		b.WriteString("\n")
		return b.String()
	}
	for i, slot := range slots {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleBlue.Render(fmt.Sprintf("%d.", i+1)),
			slot.DisplayText,
		))
	}
	return b.String()
}
