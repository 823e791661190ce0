package formatter

import (
	"fmt"
	"strings"

	"github.com/clavrhq/clavr/internal/contract"
	"github.com/clavrhq/clavr/internal/domain"
)

// FormatAgenda renders the events of a window grouped by day.
func FormatAgenda(resp *contract.AgendaResponse) string {
	var b strings.Builder

	if len(resp.Events) == 0 {
		b.WriteString(Dim(fmt.Sprintf("Nothing scheduled for %s.", DayHeading(resp.RangeStart))))
		b.WriteString("\n")
		return b.String()
	}

	var currentDay string
	for _, ev := range resp.Events {
		day := DayHeading(ev.Start)
		if day != currentDay {
			if currentDay != "" {
				b.WriteString("\n")
			}
			b.WriteString(Header(day))
			b.WriteString("\n")
			currentDay = day
		}
		b.WriteString(formatAgendaLine(ev))
		b.WriteString("\n")
	}
	return b.String()
}

func formatAgendaLine(ev domain.CalendarEvent) string {
	line := fmt.Sprintf("  %s  %s", StyleBlue.Render(ClockRange(ev.Start, ev.End)), Bold(ev.Title))
	if ev.Location != "" {
		line += Dim(fmt.Sprintf("  @ %s", ev.Location))
	}
	if !ev.Blocks() {
		line += StyleDim.Render("  (free)")
	}
	return line
}

// FormatFreeSlots renders the open slots of a day.
func FormatFreeSlots(resp *contract.FreeSlotsResponse) string {
	var b strings.Builder
	b.WriteString(Header("Free slots"))
	b.WriteString("\n")
	if len(resp.Slots) == 0 {
		b.WriteString(Dim("  No open slot that day."))
		b.WriteString("\n")
		return b.String()
	}
	for i, slot := range resp.Slots {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleBlue.Render(fmt.Sprintf("%d.", i+1)),
			slot.DisplayText,
		))
	}
	return b.String()
}
