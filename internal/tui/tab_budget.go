package tui

import (
	"strings"

	"github.com/theirongolddev/fincoach/internal/cli"
	"github.com/theirongolddev/fincoach/internal/model"
	"github.com/theirongolddev/fincoach/internal/tui/components"
	"github.com/theirongolddev/fincoach/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// housingCeiling is the housing share of income, in percent, above which
// housing is flagged.
const housingCeiling = 33.0

// savingsGoal is the savings share of income, in percent, the coach aims for.
const savingsGoal = 20.0

// renderNoProfile is shown on profile-driven tabs before a profile exists.
func renderNoProfile(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	body := muted.Render("No profile yet. Press ") + key.Render("ctrl+p") +
		muted.Render(" to set one up and get a personalized budget.")
	return components.ContentCard("Profile", body, cw)
}

func (a App) renderBudgetTab(cw int) string {
	p := a.sess.Profile
	if p == nil {
		return renderNoProfile(cw)
	}
	t := theme.Active
	alloc := p.Budget

	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Monthly Income", Value: cli.FormatMoney(alloc.Income), Delta: p.Segment.Title() + " plan"},
		{Label: "Allocated", Value: cli.FormatMoney(alloc.Total()), Delta: allocationDrift(alloc)},
		{Label: "Savings Rate", Value: cli.FormatPercent(alloc.SavingsRate()), Delta: "of income"},
	}, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	labelW := 16
	barW := max(10, innerW-labelW-20)

	var cats strings.Builder
	for i, c := range alloc.Categories() {
		amt, _ := alloc.Amount(c)
		cats.WriteString(components.CategoryBar(c.Title(), alloc.Share(c), cli.FormatMoney(amt), t.SeriesColor(i), labelW, barW))
		cats.WriteString("\n")
	}
	housing, _ := alloc.PercentOfIncome(model.CategoryHousing).Float64()
	cats.WriteString("\n")
	cats.WriteString(components.CeilingBar("Housing ratio", housing, housingCeiling, labelW, barW))
	cats.WriteString("\n")
	savings, _ := alloc.SavingsRate().Float64()
	cats.WriteString(components.GoalBar("Savings goal", savings, savingsGoal, labelW, barW))
	b.WriteString(components.ContentCard("Monthly Allocation", cats.String(), cw))

	if tips := a.budgetTips(alloc); tips != "" {
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Optimization Tips", tips, cw))
	}

	return b.String()
}

// allocationDrift describes how far the rounded allocation total is from
// income.
func allocationDrift(alloc model.Allocation) string {
	diff := alloc.Total().Sub(alloc.Income)
	if diff.IsZero() {
		return "matches income"
	}
	return cli.FormatMoney(diff) + " vs income"
}

func (a App) budgetTips(alloc model.Allocation) string {
	if a.content == nil {
		return ""
	}
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	text := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var lines []string
	for _, c := range alloc.Categories() {
		if tip, ok := a.content.Tip(c); ok {
			lines = append(lines, label.Render(c.Title()+": ")+text.Render(tip))
		}
	}
	return strings.Join(lines, "\n")
}
