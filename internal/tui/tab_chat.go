package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/fincoach/internal/advisor"
	"github.com/theirongolddev/fincoach/internal/model"
	"github.com/theirongolddev/fincoach/internal/session"
	"github.com/theirongolddev/fincoach/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chatChromeHeight is the quick-action row plus the bordered input box.
const chatChromeHeight = 1 + inputHeight

// layoutChat sizes the transcript viewport to the current window.
func (a *App) layoutChat() {
	cw := a.contentWidth()
	contentH := max(minContentHeight, a.height-2)
	a.transcript.Width = cw
	a.transcript.Height = max(1, contentH-chatChromeHeight)
	a.input.Width = max(10, cw-6)
	a.refreshTranscript()
}

// refreshTranscript re-renders the history into the viewport and scrolls to
// the newest message.
func (a *App) refreshTranscript() {
	if a.transcript.Width == 0 {
		return
	}
	a.transcript.SetContent(renderTranscript(a.sess.History, a.transcript.Width))
	a.transcript.GotoBottom()
}

func renderTranscript(history []model.Entry, width int) string {
	t := theme.Active
	bodyW := max(10, width-4)

	userLabel := lipgloss.NewStyle().Foreground(t.BlueBright).Bold(true)
	coachLabel := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	userBody := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(bodyW).PaddingLeft(2)
	coachBody := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Width(bodyW).
		PaddingLeft(1).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.AccentDim)

	var b strings.Builder
	for i, e := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		stamp := ""
		if !e.Timestamp.IsZero() {
			stamp = timeStyle.Render(" " + e.Timestamp.Format("15:04"))
		}
		if e.Role == model.RoleUser {
			b.WriteString(userLabel.Render("You") + stamp + "\n")
			b.WriteString(userBody.Render(e.Content))
		} else {
			b.WriteString(coachLabel.Render("Coach") + stamp + "\n")
			b.WriteString(coachBody.Render(e.Content))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) updateChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "enter":
		line := a.input.Value()
		a.input.Reset()
		return a.submitLine(line)
	case "pgup", "pgdown", "up", "down", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		a.transcript, cmd = a.transcript.Update(msg)
		return a, cmd
	case "alt+1", "alt+2", "alt+3", "alt+4":
		idx := int(key[len(key)-1] - '1')
		return a.sendQuickAction(advisor.QuickActions[idx].Name)
	case "esc":
		a.input.Reset()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submitLine dispatches one line of chat input.
func (a App) submitLine(line string) (tea.Model, tea.Cmd) {
	a.notice = ""
	cmd := session.ParseCommand(line)

	switch cmd.Kind {
	case session.CommandExit:
		return a, tea.Quit
	case session.CommandReset:
		return a.resetChat()
	case session.CommandQuick:
		if cmd.Arg == "" {
			names := make([]string, len(advisor.QuickActions))
			for i, qa := range advisor.QuickActions {
				names[i] = qa.Name
			}
			a.warn("usage: /quick " + strings.Join(names, "|"))
			return a, nil
		}
		return a.sendQuickAction(cmd.Arg)
	case session.CommandProfile:
		a.openProfileForm()
		return a, a.profileForm.Init()
	case session.CommandHelp:
		a.showHelp = true
		return a, nil
	case session.CommandUnknown:
		a.warn(fmt.Sprintf("unknown command /%s", cmd.Arg))
		return a, nil
	}

	return a.sendMessage(cmd.Arg)
}

// sendMessage records the user's text now and schedules the reply after
// the pacing delay. Input is ignored while a reply is pending.
func (a App) sendMessage(text string) (tea.Model, tea.Cmd) {
	if a.pending {
		return a, nil
	}
	e, err := a.sess.Record(text)
	if err != nil {
		a.warn(err.Error())
		return a, nil
	}
	if e == nil {
		return a, nil
	}
	a.refreshTranscript()
	a.pending = true

	gen := a.replyGen
	content := e.Content
	return a, tea.Batch(
		a.spinner.Tick,
		tea.Tick(a.delay(), func(time.Time) tea.Msg {
			return replyMsg{text: content, gen: gen}
		}),
	)
}

func (a App) sendQuickAction(name string) (tea.Model, tea.Cmd) {
	qa, ok := advisor.LookupQuickAction(name)
	if !ok {
		a.warn(fmt.Sprintf("unknown quick action %q", name))
		return a, nil
	}
	return a.sendMessage(qa.Prompt)
}

func (a App) resetChat() (tea.Model, tea.Cmd) {
	if err := a.sess.Reset(); err != nil {
		a.warn(err.Error())
		return a, nil
	}
	a.replyGen++
	a.pending = false
	a.info("Conversation cleared")
	a.refreshTranscript()
	return a, nil
}

func (a App) renderChatTab(cw, h int) string {
	t := theme.Active

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Width(cw - 2)
	if a.pending {
		inputBox = inputBox.BorderForeground(t.Border)
	}

	transcript := padHeight(truncateHeight(a.transcript.View(), max(1, h-chatChromeHeight)), max(1, h-chatChromeHeight))
	return transcript + "\n" + a.renderQuickBar(cw) + "\n" + inputBox.Render(a.input.View())
}

// renderQuickBar shows the typing indicator while a reply is pending, and
// the quick-action shortcuts otherwise.
func (a App) renderQuickBar(cw int) string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Background)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Background).Bold(true)
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background)

	if a.pending {
		return a.spinner.View() + dim.Render(" Coach is typing...")
	}

	parts := make([]string, len(advisor.QuickActions))
	for i, qa := range advisor.QuickActions {
		parts[i] = key.Render(fmt.Sprintf("alt+%d", i+1)) + label.Render(" "+qa.Label)
	}
	return lipgloss.NewStyle().MaxWidth(cw).Render(strings.Join(parts, dim.Render("  ·  ")))
}
