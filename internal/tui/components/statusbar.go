package components

import (
	"strings"

	"github.com/theirongolddev/fincoach/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the bottom bar reports about the current session.
type StatusInfo struct {
	Session string
	Segment string
	Notice  string
	Warn    bool
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	noticeStyle := style.Foreground(t.GreenBright)
	if info.Warn {
		noticeStyle = style.Foreground(t.Orange)
	}

	left := style.Render(" [?]help  [tab]switch  [ctrl+p]profile  [ctrl+c]quit")
	if info.Notice != "" {
		left += style.Render("  ") + noticeStyle.Render(info.Notice)
	}

	right := ""
	if info.Segment != "" {
		right = style.Foreground(t.Accent).Render(info.Segment) + style.Render(" · ")
	}
	if info.Session != "" {
		right += style.Render(info.Session + " ")
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return left + style.Render(strings.Repeat(" ", padding)) + right
}
