package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fincoach/internal/cli"
	"github.com/theirongolddev/fincoach/internal/tui/components"
	"github.com/theirongolddev/fincoach/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTrendsTab(cw int) string {
	p := a.sess.Profile
	if p == nil {
		return renderNoProfile(cw)
	}
	if a.content == nil {
		return components.ContentCard("Spending Trends", "No sample data loaded.", cw)
	}
	t := theme.Active
	spending := a.content.Spending(p.Segment)
	if len(spending.Points) == 0 {
		return components.ContentCard("Spending Trends", "No sample data for this profile.", cw)
	}

	series := make([]components.Series, len(spending.Categories))
	for i, c := range spending.Categories {
		series[i] = components.Series{
			Name:   c.Title(),
			Values: spending.Values(c),
			Color:  t.SeriesColor(i),
		}
	}

	innerW := components.CardInnerWidth(cw)
	chart := components.GroupedBarChart(series, spending.Months(), innerW, 10)
	title := fmt.Sprintf("Monthly Spending (%s sample)", p.Segment.Title())

	var b strings.Builder
	b.WriteString(components.ContentCard(title, chart+"\n\n"+components.Legend(series), cw))
	b.WriteString("\n")

	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var rows strings.Builder
	for i, s := range series {
		n := len(s.Values)
		last := s.Values[n-1]
		delta := ""
		if n > 1 {
			delta = cli.FormatDelta(last, s.Values[n-2])
		}
		rows.WriteString(label.Render(fmt.Sprintf("%-16s", s.Name)))
		rows.WriteString(components.Sparkline(s.Values, s.Color))
		rows.WriteString(space.Render("  "))
		rows.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Render(cli.FormatDollars(last)))
		rows.WriteString(space.Render(" "))
		rows.WriteString(dim.Render(delta))
		if i < len(series)-1 {
			rows.WriteString("\n")
		}
	}
	b.WriteString(components.ContentCard("Latest Month", rows.String(), cw))

	return b.String()
}
