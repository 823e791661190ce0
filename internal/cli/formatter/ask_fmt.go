package formatter

import (
	"fmt"
	"strings"

	"github.com/clavrhq/clavr/internal/domain"
	"github.com/clavrhq/clavr/internal/intelligence"
)

// FormatResolution renders how a natural-language query was routed.
func FormatResolution(res *intelligence.Resolution) string {
	var b strings.Builder

	intent := res.ParsedIntent
	if intent != nil {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Dim("Understood:"),
			StylePurple.Render(string(intent.Intent)),
			Dim(fmt.Sprintf("(%.0f%% via %s)", intent.Confidence*100, intent.Source)),
		))
	}

	switch res.ExecutionState {
	case intelligence.StateNeedsConfirmation:
		b.WriteString(StyleYellow.Render("This changes your calendar or tasks."))
		b.WriteString("\n")
	case intelligence.StateNeedsClarification:
		b.WriteString(StyleYellow.Render(res.ExecutionMessage))
		b.WriteString("\n")
		if intent != nil {
			for i, opt := range intent.ClarificationOptions {
				b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), opt))
			}
		}
	case intelligence.StateRejected:
		b.WriteString(StyleRed.Render(res.ExecutionMessage))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatProfile renders the assistant settings.
func FormatProfile(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString(Header("Profile"))
	b.WriteString("\n")
	rows := []struct{ label, value string }{
		{"Timezone", p.Timezone},
		{"Working hours", fmt.Sprintf("%02d:00–%02d:00", p.WorkStartHour, p.WorkEndHour)},
		{"Home location", orDash(p.HomeLocation)},
		{"Default event", fmt.Sprintf("%d min", p.DefaultEventMin)},
		{"Max suggestions", fmt.Sprintf("%d", p.MaxSuggestions)},
		{"Travel check", onOff(p.TravelCheckEnabled)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-16s %s\n", Dim(row.label), StyleFg.Render(row.value)))
	}
	return b.String()
}

// FormatHistory renders recent ask exchanges, newest first.
func FormatHistory(logs []*domain.ExchangeLog) string {
	var b strings.Builder
	b.WriteString(Header("History"))
	b.WriteString("\n")
	if len(logs) == 0 {
		b.WriteString(Dim("  No exchanges yet."))
		b.WriteString("\n")
		return b.String()
	}
	for _, log := range logs {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			Dim(log.CreatedAt.Format("Jan 2 15:04")),
			StyleFg.Render(log.Query),
		))
		if log.Intent != "" {
			b.WriteString(Dim(fmt.Sprintf("    → %s", log.Intent)))
			if log.Reply != "" {
				b.WriteString(Dim(": " + firstLine(log.Reply)))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
