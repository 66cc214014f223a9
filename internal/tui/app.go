// Package tui provides the interactive Bubble Tea app for fincoach.
package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/theirongolddev/fincoach/internal/advisor"
	"github.com/theirongolddev/fincoach/internal/config"
	"github.com/theirongolddev/fincoach/internal/content"
	"github.com/theirongolddev/fincoach/internal/session"
	"github.com/theirongolddev/fincoach/internal/tui/components"
	"github.com/theirongolddev/fincoach/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabChat = iota
	tabBudget
	tabTrends
	tabInsights
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
	inputHeight      = 3 // input line plus its border
)

// replyMsg fires when the pacing delay for a pending reply has elapsed.
type replyMsg struct {
	text string
	gen  int
}

// Options configures the app.
type Options struct {
	Session *session.Session
	Content *content.Table
	Config  config.Config

	// SaveConfig persists settings edits. Nil uses config.Save.
	SaveConfig func(config.Config) error
	// Delay picks the reply pacing delay. Nil draws uniformly from the
	// configured range.
	Delay func() time.Duration
	Now   func() time.Time
}

// App is the root Bubble Tea model.
type App struct {
	sess    *session.Session
	content *content.Table
	cfg     config.Config

	saveConfig func(config.Config) error
	delay      func() time.Duration
	now        func() time.Time

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Chat
	input      textinput.Model
	transcript viewport.Model
	spinner    spinner.Model
	pending    bool
	replyGen   int // bumped on reset so stale replies are dropped

	// Notices shown in the status bar until the next action
	notice     string
	noticeWarn bool

	// Profile form overlay (huh)
	profileForm *huh.Form
	profileVals *ProfileValues

	settings settingsState
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	in := textinput.New()
	in.Placeholder = "Ask about budgeting, saving, investing... (/help for commands)"
	in.Prompt = "› "
	in.CharLimit = 500
	in.Focus()

	a := App{
		sess:       opts.Session,
		content:    opts.Content,
		cfg:        opts.Config,
		saveConfig: opts.SaveConfig,
		delay:      opts.Delay,
		now:        opts.Now,
		input:      in,
		transcript: viewport.New(0, 0),
		spinner:    sp,
	}
	if a.saveConfig == nil {
		a.saveConfig = config.Save
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.delay == nil {
		lo, hi := opts.Config.Chat.ReplyDelay()
		a.delay = uniformDelay(lo, hi)
	}
	if a.sess.Profile == nil {
		a.openProfileForm()
	}
	return a
}

func uniformDelay(lo, hi time.Duration) func() time.Duration {
	return func() time.Duration {
		if hi <= lo {
			return lo
		}
		return lo + rand.N(hi-lo+1)
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion, textinput.Blink}
	if a.profileForm != nil {
		cmds = append(cmds, a.profileForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layoutChat()
		if a.profileForm != nil {
			a.profileForm = a.profileForm.WithWidth(min(msg.Width, 80)).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.profileForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			if a.activeTab == tabChat {
				var cmd tea.Cmd
				a.transcript, cmd = a.transcript.Update(msg)
				return a, cmd
			}
		case tea.MouseButtonLeft:
			if msg.Y == 0 && msg.Action == tea.MouseActionPress {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.setTab(tab)
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case replyMsg:
		if msg.gen != a.replyGen {
			return a, nil
		}
		a.pending = false
		if _, err := a.sess.Reply(msg.text); err != nil {
			a.warn(err.Error())
		}
		a.refreshTranscript()
		return a, nil

	case spinner.TickMsg:
		if a.pending {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the profile form (cursor blinks, etc.)
	if a.profileForm != nil {
		return a.updateProfileForm(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Profile form intercepts all keys
	if a.profileForm != nil {
		if key == "esc" {
			a.profileForm = nil
			a.profileVals = nil
			return a, nil
		}
		return a.updateProfileForm(msg)
	}

	// Settings tab has its own keybindings (text input)
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	// Dismiss help
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "tab":
		a.setTab((a.activeTab + 1) % len(components.Tabs))
		return a, nil
	case "shift+tab":
		a.setTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
		return a, nil
	case "ctrl+p":
		a.openProfileForm()
		return a, a.profileForm.Init()
	case "ctrl+r":
		return a.resetChat()
	}

	if a.activeTab == tabChat {
		return a.updateChatKey(msg)
	}

	// Settings tab navigation (non-editing mode)
	if a.activeTab == tabSettings {
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	switch key {
	case "?":
		a.showHelp = true
	case "q":
		return a, tea.Quit
	case "left":
		a.setTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
	case "right":
		a.setTab((a.activeTab + 1) % len(components.Tabs))
	default:
		if len(msg.Runes) == 1 {
			if tab := components.TabIdxByKey(msg.Runes[0]); tab >= 0 {
				a.setTab(tab)
			}
		}
	}
	return a, nil
}

func (a *App) setTab(tab int) {
	a.activeTab = tab
	if tab == tabChat {
		a.input.Focus()
	} else {
		a.input.Blur()
	}
}

func (a *App) openProfileForm() {
	vals := ValuesFromProfile(a.sess.Profile)
	a.profileVals = &vals
	a.profileForm = NewProfileForm(a.profileVals)
	if a.width > 0 {
		a.profileForm = a.profileForm.WithWidth(min(a.width, 80)).WithHeight(a.height)
	}
}

func (a App) updateProfileForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.profileForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.profileForm = f
	}

	switch a.profileForm.State {
	case huh.StateCompleted:
		a.applyProfile(*a.profileVals)
		a.profileForm = nil
		a.profileVals = nil
		a.setTab(tabChat)
		return a, nil
	case huh.StateAborted:
		a.profileForm = nil
		a.profileVals = nil
		return a, nil
	}

	return a, cmd
}

// applyProfile submits form values to the session.
func (a *App) applyProfile(vals ProfileValues) {
	in, err := vals.Input()
	if err == nil {
		_, err = a.sess.SubmitProfile(in)
	}
	if err != nil {
		a.warn(err.Error())
		return
	}
	a.info("Profile saved")
	a.refreshTranscript()
}

func (a *App) warn(msg string) {
	a.notice, a.noticeWarn = msg, true
}

func (a *App) info(msg string) {
	a.notice, a.noticeWarn = msg, false
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.profileForm != nil {
		return a.viewProfileForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  fincoach needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewProfileForm() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(a.profileForm.View()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	section := func(b *strings.Builder, title string, binds []struct{ key, desc string }) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, bind := range binds {
			fmt.Fprintf(b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-14s", bind.key)),
				descStyle.Render(bind.desc))
		}
		b.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	section(&b, "Navigation", []struct{ key, desc string }{
		{"tab / shift+tab", "Next / Previous tab"},
		{"c b t i x", "Jump to tab (outside chat)"},
		{"pgup pgdn", "Scroll conversation"},
	})
	section(&b, "Chat", []struct{ key, desc string }{
		{"enter", "Send message"},
		{"alt+1..4", "Quick actions"},
		{"/quick NAME", "budget, spending, investment, savings"},
		{"ctrl+r", "Clear conversation"},
		{"ctrl+p", "Edit profile"},
		{"ctrl+c", "Quit"},
	})
	var topics []struct{ key, desc string }
	for _, topic := range advisor.Topics {
		if kws := advisor.Keywords(topic); len(kws) > 0 {
			topics = append(topics, struct{ key, desc string }{string(topic), strings.Join(kws, ", ")})
		}
	}
	section(&b, "Topics", topics)
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.statusInfo())

	contentH := max(minContentHeight, h-lipgloss.Height(header)-lipgloss.Height(statusBar))

	var body string
	switch a.activeTab {
	case tabChat:
		body = a.renderChatTab(cw, contentH)
	case tabBudget:
		body = a.renderBudgetTab(cw)
	case tabTrends:
		body = a.renderTrendsTab(cw)
	case tabInsights:
		body = a.renderInsightsTab(cw)
	case tabSettings:
		body = a.renderSettingsTab(cw)
	}

	body = padHeight(truncateHeight(body, contentH), contentH)
	body = fillLinesWithBackground(body, cw, t.Background)
	body = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, body,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusInfo() components.StatusInfo {
	info := components.StatusInfo{
		Session: a.sess.ID,
		Notice:  a.notice,
		Warn:    a.noticeWarn,
	}
	if p := a.sess.Profile; p != nil {
		info.Segment = p.Segment.Title()
	}
	return info
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
