package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette for plain terminal output, matching the TUI's ledger theme.
var (
	ColorTextDim   = lipgloss.Color("#4F6359")
	ColorTextMuted = lipgloss.Color("#8DA198")
	ColorText      = lipgloss.Color("#E8F1EC")
	ColorAccent    = lipgloss.Color("#3FB27F")
	ColorGreen     = lipgloss.Color("#8FD47F")
	ColorOrange    = lipgloss.Color("#E08A3C")
	ColorBlue      = lipgloss.Color("#7FB2EA")
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle     = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle     = lipgloss.NewStyle().Foreground(ColorTextMuted)
	moneyStyle     = lipgloss.NewStyle().Foreground(ColorGreen)
	shareStyle     = lipgloss.NewStyle().Foreground(ColorBlue)
	warnStyle      = lipgloss.NewStyle().Foreground(ColorOrange)
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	assistantStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	dimStyle       = lipgloss.NewStyle().Foreground(ColorTextDim)
)

// Table is a report table. Footer, when set, is rendered as a bold last row
// such as a total.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  []string
}

// RenderTitle renders a report heading with an underline rule.
func RenderTitle(title string) string {
	rule := dimStyle.Render(strings.Repeat("─", max(lipgloss.Width(title), 40)))
	return "  " + titleStyle.Render(title) + "\n  " + rule
}

// RenderTable renders t with rounded borders. The first column is left
// aligned and the rest right aligned.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	rows := append([][]string(nil), t.Rows...)
	footer := -1
	if len(t.Footer) > 0 {
		footer = len(rows)
		rows = append(rows, t.Footer)
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(t.Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell.Foreground(ColorText)
			switch row {
			case table.HeaderRow:
				return cell.Inherit(headerStyle)
			case footer:
				s = s.Bold(true)
			}
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}
	b.WriteString(tbl.String())
	b.WriteString("\n")
	return b.String()
}

// RenderShareBar renders a 0-1 share as a fixed-width bar followed by its
// percentage.
func RenderShareBar(share float64, width int) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}

	filled := int(share * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", shareStyle.Render(bar), FormatShare(share))
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderHorizontalBar renders one labelled bar scaled against maxValue.
func RenderHorizontalBar(label string, labelWidth int, value, maxValue float64, maxWidth int) string {
	prefix := fmt.Sprintf("  %-*s ", labelWidth, label)
	if maxValue <= 0 {
		return prefix
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	return prefix + moneyStyle.Render(strings.Repeat("█", barLen)) + " " + mutedStyle.Render(FormatDollars(value))
}

// RenderMetric renders an aligned "label  value" line.
func RenderMetric(label, value string) string {
	return fmt.Sprintf("  %s %s", mutedStyle.Render(fmt.Sprintf("%-16s", label)), valueStyle.Render(value))
}

// RenderMuted renders secondary text such as timestamps.
func RenderMuted(s string) string {
	return mutedStyle.Render(s)
}

// RenderWarning renders a highlighted one-line notice.
func RenderWarning(msg string) string {
	return warnStyle.Render(msg)
}

// RenderSpeaker renders the speaker label for a transcript line.
func RenderSpeaker(assistant bool) string {
	if assistant {
		return assistantStyle.Render("Coach")
	}
	return userStyle.Render("You")
}
