package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"999", "$999"},
		{"7500", "$7,500"},
		{"1234567", "$1,234,567"},
		{"1234.5", "$1,234.50"},
		{"12.345", "$12.35"},
		{"-40", "-$40"},
	}
	for _, tt := range tests {
		if got := FormatMoney(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(decimal.RequireFromString("26")); got != "26.0%" {
		t.Fatalf("FormatPercent(26) = %q, want 26.0%%", got)
	}
	if got := FormatPercent(decimal.RequireFromString("11.96")); got != "12.0%" {
		t.Fatalf("FormatPercent(11.96) = %q, want 12.0%%", got)
	}
	if got := FormatShare(0.125); got != "12.5%" {
		t.Fatalf("FormatShare(0.125) = %q, want 12.5%%", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(450, 400); got != "+$50" {
		t.Fatalf("FormatDelta(450, 400) = %q", got)
	}
	if got := FormatDelta(400, 450); got != "-$50" {
		t.Fatalf("FormatDelta(400, 450) = %q", got)
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := FormatAge(now.Add(-3*time.Minute), now); got != "3 minutes ago" {
		t.Fatalf("FormatAge = %q, want 3 minutes ago", got)
	}
	if got := FormatAge(time.Time{}, now); got != "" {
		t.Fatalf("FormatAge(zero) = %q, want empty", got)
	}
}

func TestRenderTable_FooterIsLastRow(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Budget",
		Headers: []string{"Category", "Amount"},
		Rows: [][]string{
			{"Housing", "$2,250"},
			{"Food", "$900"},
		},
		Footer: []string{"Total", "$3,150"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, top border, header, header rule, two rows, footer, bottom border
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Budget") {
		t.Fatalf("title line = %q", lines[0])
	}
	if !strings.Contains(lines[6], "Total") || !strings.Contains(lines[6], "$3,150") {
		t.Fatalf("footer line = %q", lines[6])
	}
	width := lipgloss.Width(lines[1])
	for i, l := range lines[1:] {
		if w := lipgloss.Width(l); w != width {
			t.Fatalf("line %d width %d, want %d:\n%s", i+1, w, width, out)
		}
	}
	if RenderTable(Table{}) != "" {
		t.Fatal("empty table should render nothing")
	}
}

func TestRenderTitle_UnderlinesHeading(t *testing.T) {
	lines := strings.Split(RenderTitle("MONTHLY BUDGET"), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "MONTHLY BUDGET") || !strings.Contains(lines[1], "─") {
		t.Fatalf("RenderTitle = %q", lines)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 50, 100}); got != "▁▄█" {
		t.Fatalf("RenderSparkline = %q, want ▁▄█", got)
	}
	if got := RenderSparkline(nil); got != "" {
		t.Fatalf("RenderSparkline(nil) = %q", got)
	}
}

func TestRenderShareBar_Clamps(t *testing.T) {
	if got := RenderShareBar(1.5, 4); !strings.Contains(got, "100.0%") {
		t.Fatalf("RenderShareBar(1.5) = %q", got)
	}
	if got := RenderShareBar(-1, 4); !strings.Contains(got, "0.0%") {
		t.Fatalf("RenderShareBar(-1) = %q", got)
	}
}
