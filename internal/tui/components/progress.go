package components

import (
	"fmt"

	"github.com/theirongolddev/fincoach/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// GoalBar renders progress toward a goal, e.g. savings rate versus a target.
// The bar turns green once the goal is met.
func GoalBar(label string, value, goal float64, labelW, barWidth int) string {
	t := theme.Active

	progressPct := 0.0
	if goal > 0 {
		progressPct = value / goal
	}

	color := t.Orange
	switch {
	case progressPct >= 1:
		color = t.GreenBright
	case progressPct >= 0.5:
		color = t.Accent
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(min(max(progressPct, 0), 1)) +
		spaceStyle.Render(" ") +
		valStyle.Render(fmt.Sprintf("%.1f%%", value)) +
		dimStyle.Render(fmt.Sprintf(" of %.0f%% goal", goal))
}

// ColorForPct returns green/yellow/orange/red as a ratio approaches and
// passes its ceiling.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct > 1:
		return string(t.Red)
	case pct >= 0.9:
		return string(t.Orange)
	case pct >= 0.75:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// CategoryBar renders one budget line: label, a bar sized by the category's
// share of income, the share, and the amount.
func CategoryBar(label string, share float64, amount string, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active

	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	amountStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(share) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", share*100)) +
		spaceStyle.Render("  ") +
		amountStyle.Render(amount)
}

// CeilingBar renders a ratio against a ceiling, e.g. housing cost versus the
// 33% guideline, colored by ColorForPct.
func CeilingBar(label string, value, ceiling float64, labelW, barWidth int) string {
	t := theme.Active

	ratio := 0.0
	if ceiling > 0 {
		ratio = value / ceiling
	}
	fill := ratio
	if fill > 1 {
		fill = 1
	}
	if fill < 0 {
		fill = 0
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(ratio)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(ratio))).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fill) +
		spaceStyle.Render(" ") +
		valStyle.Render(fmt.Sprintf("%.1f%%", value)) +
		dimStyle.Render(fmt.Sprintf(" / %.0f%%", ceiling))
}
