package formatter

import (
	"fmt"
	"strings"

	"github.com/clavrhq/clavr/internal/domain"
)

// FormatTasks renders the task list, due dates styled by urgency.
func FormatTasks(items []domain.TaskItem) string {
	var b strings.Builder
	b.WriteString(Header("Tasks"))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(Dim("  Nothing on the list."))
		b.WriteString("\n")
		return b.String()
	}
	for _, item := range items {
		marker := StyleDim.Render("[ ]")
		if item.Done() {
			marker = StyleGreen.Render("[x]")
		}
		line := fmt.Sprintf("  %s %s", marker, StyleFg.Render(item.Title))
		if item.Due != nil {
			line += "  " + StyleYellow.Render(RelativeDate(*item.Due))
		}
		if item.ID != "" {
			line += Dim("  " + item.ID)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatEmailSummary renders the mailbox digest plus the matching messages.
func FormatEmailSummary(summary string, messages []domain.EmailMessage, unread int) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Inbox (%d unread)", unread)))
	b.WriteString("\n")
	if summary != "" {
		b.WriteString(StyleFg.Render(summary))
		b.WriteString("\n\n")
	}
	b.WriteString(FormatMessages(messages))
	return b.String()
}

// FormatMessages renders message metadata lines.
func FormatMessages(messages []domain.EmailMessage) string {
	if len(messages) == 0 {
		return Dim("  No matching messages.") + "\n"
	}
	var b strings.Builder
	for _, msg := range messages {
		from := msg.From
		if i := strings.Index(from, "<"); i > 0 {
			from = strings.TrimSpace(from[:i])
		}
		marker := " "
		if msg.Unread {
			marker = StyleBlue.Render("●")
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", marker, Bold(from), StyleFg.Render(msg.Subject)))
		if msg.Snippet != "" {
			b.WriteString(Dim("      " + msg.Snippet))
			b.WriteString("\n")
		}
	}
	return b.String()
}
