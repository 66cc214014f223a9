package tui

import (
	"strings"

	"github.com/theirongolddev/fincoach/internal/budget"
	"github.com/theirongolddev/fincoach/internal/tui/components"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderInsightsTab(cw int) string {
	p := a.sess.Profile
	if p == nil {
		return renderNoProfile(cw)
	}

	insights := budget.Insights(p)
	cols := 1
	if cw >= 100 {
		cols = 2
	}
	widths := components.LayoutRow(cw, cols)

	var rows []string
	for i := 0; i < len(insights); i += cols {
		var cards []string
		for j := 0; j < cols && i+j < len(insights); j++ {
			in := insights[i+j]
			cards = append(cards, components.InsightCard(in.Icon, in.Title, in.Description, widths[j]))
		}
		rows = append(rows, equalizeHeights(cards...))
	}
	return strings.Join(rows, "\n")
}

// equalizeHeights joins cards side by side, padding shorter ones so the row
// has a flush bottom edge.
func equalizeHeights(cards ...string) string {
	if len(cards) == 1 {
		return cards[0]
	}
	h := 0
	for _, c := range cards {
		h = max(h, lipgloss.Height(c))
	}
	for i, c := range cards {
		cards[i] = padHeight(c, h)
	}
	return components.CardRow(cards)
}
