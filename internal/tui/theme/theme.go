// Package theme holds the fincoach color palettes.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps every color role the TUI draws with to a concrete color.
type Theme struct {
	Name string

	// Surfaces, from the app background up to emphasized panels.
	Background    lipgloss.Color
	Surface       lipgloss.Color
	SurfaceHover  lipgloss.Color
	SurfaceBright lipgloss.Color

	Border       lipgloss.Color
	BorderBright lipgloss.Color
	BorderAccent lipgloss.Color

	// Text, lowest contrast first.
	TextDim     lipgloss.Color
	TextMuted   lipgloss.Color
	TextPrimary lipgloss.Color

	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	AccentDim    lipgloss.Color

	Green       lipgloss.Color
	GreenBright lipgloss.Color
	Orange      lipgloss.Color
	Red         lipgloss.Color
	Blue        lipgloss.Color
	BlueBright  lipgloss.Color
	Yellow      lipgloss.Color
	Magenta     lipgloss.Color
	Cyan        lipgloss.Color
}

// Ledger is the default: dark slate with a money-green accent.
var Ledger = Theme{
	Name:          "ledger",
	Background:    "#0E1412",
	Surface:       "#16201C",
	SurfaceHover:  "#1F2D27",
	SurfaceBright: "#2A3B34",
	Border:        "#2F4038",
	BorderBright:  "#4A6157",
	BorderAccent:  "#3FB27F",
	TextDim:       "#4F6359",
	TextMuted:     "#8DA198",
	TextPrimary:   "#E8F1EC",
	Accent:        "#3FB27F",
	AccentBright:  "#6DD6A3",
	AccentDim:     "#173628",
	Green:         "#5FA85A",
	GreenBright:   "#8FD47F",
	Orange:        "#E08A3C",
	Red:           "#D9544F",
	Blue:          "#4C8FD6",
	BlueBright:    "#7FB2EA",
	Yellow:        "#D9B44A",
	Magenta:       "#C56FB4",
	Cyan:          "#4CB8B0",
}

// Paper is a light theme for bright terminals.
var Paper = Theme{
	Name:          "paper",
	Background:    "#F7F4EC",
	Surface:       "#FFFDF7",
	SurfaceHover:  "#EDE8DA",
	SurfaceBright: "#E2DCCB",
	Border:        "#D3CCB8",
	BorderBright:  "#B0A78F",
	BorderAccent:  "#1F7A55",
	TextDim:       "#A39C88",
	TextMuted:     "#6B6553",
	TextPrimary:   "#23211B",
	Accent:        "#1F7A55",
	AccentBright:  "#159463",
	AccentDim:     "#DCEFE4",
	Green:         "#3E7C2F",
	GreenBright:   "#2E9A3A",
	Orange:        "#B85F12",
	Red:           "#B8322B",
	Blue:          "#2A62A8",
	BlueBright:    "#3A7BD0",
	Yellow:        "#9A7A0C",
	Magenta:       "#9A3F86",
	Cyan:          "#217E78",
}

// Terminal sticks to the 16 ANSI colors.
var Terminal = Theme{
	Name:          "terminal",
	Background:    "0",
	Surface:       "0",
	SurfaceHover:  "8",
	SurfaceBright: "8",
	Border:        "8",
	BorderBright:  "7",
	BorderAccent:  "2",
	TextDim:       "8",
	TextMuted:     "7",
	TextPrimary:   "15",
	Accent:        "2",
	AccentBright:  "10",
	AccentDim:     "0",
	Green:         "2",
	GreenBright:   "10",
	Orange:        "3",
	Red:           "1",
	Blue:          "4",
	BlueBright:    "12",
	Yellow:        "11",
	Magenta:       "5",
	Cyan:          "6",
}

// All lists the selectable themes, default first.
var All = []Theme{Ledger, Paper, Terminal}

// Active is the theme every component renders with.
var Active = Ledger

// ByName looks a theme up by name. Unknown names get Ledger.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Ledger
}

// SetActive switches Active to the named theme.
func SetActive(name string) {
	Active = ByName(name)
}

// Names lists every theme name in display order.
func Names() []string {
	out := make([]string, len(All))
	for i, t := range All {
		out[i] = t.Name
	}
	return out
}

// Series returns the colors used to tell chart series and budget
// categories apart, in assignment order.
func (t Theme) Series() []lipgloss.Color {
	return []lipgloss.Color{t.BlueBright, t.Green, t.Orange, t.Magenta, t.Cyan, t.Yellow, t.Red, t.AccentBright}
}

// SeriesColor returns the i-th series color, wrapping around.
func (t Theme) SeriesColor(i int) lipgloss.Color {
	s := t.Series()
	if i < 0 {
		i = -i
	}
	return s[i%len(s)]
}
