package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/fincoach/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// eighths are the partial-cell glyphs for a bar top, indexed by eighths filled.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := seriesPeak(values)
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = max(0, min(idx, len(sparkBlocks)-1))
		buf.WriteRune(sparkBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// Series is one named line of values for a grouped bar chart.
type Series struct {
	Name   string
	Values []float64
	Color  lipgloss.Color
}

// GroupedBarChart renders one group of bars per label, one bar per series,
// with a shared dollar y-axis. Narrow charts fall back to a sparkline of the
// first series.
func GroupedBarChart(series []Series, labels []string, width, height int) string {
	if len(series) == 0 || len(series[0].Values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(series[0].Values, series[0].Color)
	}

	t := theme.Active
	surface := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	groups := len(series[0].Values)
	peak := 0.0
	for _, s := range series {
		peak = math.Max(peak, seriesPeak(s.Values))
	}
	if peak == 0 {
		peak = 1
	}

	// y-axis: a round tick step with at most height/2 intervals
	step := chartTickStep(peak)
	for int(math.Ceil(peak/step)) > max(2, height/2) {
		step *= 2
	}
	ceiling := math.Ceil(peak/step) * step
	intervals := max(1, int(math.Round(ceiling/step)))
	rowsPerTick := max(2, height/intervals)
	chartH := rowsPerTick * intervals

	yLabelW := max(4, len(formatChartLabel(ceiling))+1)
	ticks := make(map[int]string, intervals)
	for i := 1; i <= intervals; i++ {
		ticks[i*rowsPerTick] = formatChartLabel(step * float64(i))
	}

	// bar geometry: bars within a group touch, groups are separated by a gap
	chartW := max(5, width-yLabelW-1)
	groupGap := 2
	barW := (chartW - (groups-1)*groupGap) / (groups * len(series))
	barW = max(1, min(barW, 4))
	groupW := barW * len(series)
	axisLen := groups*groupW + (groups-1)*groupGap

	styles := make([]lipgloss.Style, len(series))
	for i, s := range series {
		styles[i] = lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface)
	}

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		top := ceiling * float64(row) / float64(chartH)
		bottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, ticks[row])))
		b.WriteString(axisStyle.Render("│"))

		for g := 0; g < groups; g++ {
			if g > 0 {
				b.WriteString(surface.Render(strings.Repeat(" ", groupGap)))
			}
			for si, s := range series {
				v := 0.0
				if g < len(s.Values) {
					v = s.Values[g]
				}
				glyph := ' '
				switch {
				case v >= top:
					glyph = '█'
				case v > bottom:
					idx := int((v - bottom) / (top - bottom) * 8)
					glyph = eighths[max(1, min(idx, 8))]
				}
				b.WriteString(styles[si].Render(strings.Repeat(string(glyph), barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == groups {
		line := []rune(strings.Repeat(" ", axisLen))
		lastEnd := -1
		for g, lbl := range labels {
			pos := g * (groupW + groupGap)
			r := []rune(lbl)
			if pos <= lastEnd || pos+len(r) > axisLen {
				continue
			}
			copy(line[pos:], r)
			lastEnd = pos + len(r)
		}
		b.WriteString("\n")
		b.WriteString(surface.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(line), " ")))
	}

	return b.String()
}

func seriesPeak(values []float64) float64 {
	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel renders a dollar axis tick compactly, e.g. "$1.5k".
func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("$%.0fM", v/1e6)
		}
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("$%.0fk", v/1e3)
		}
		return fmt.Sprintf("$%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("$%.0f", v)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// Legend renders colored swatches for a set of series.
func Legend(series []Series) string {
	t := theme.Active
	space := lipgloss.NewStyle().Background(t.Surface)
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	parts := make([]string, len(series))
	for i, s := range series {
		swatch := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("■")
		parts[i] = swatch + space.Render(" ") + label.Render(s.Name)
	}
	return strings.Join(parts, space.Render("   "))
}
