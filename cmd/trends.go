package cmd

import (
	"fmt"

	"github.com/theirongolddev/fincoach/internal/cli"
	"github.com/theirongolddev/fincoach/internal/model"

	"github.com/spf13/cobra"
)

var flagTrendsSegment string

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show sample monthly spending patterns",
	RunE:  runTrends,
}

func init() {
	trendsCmd.Flags().StringVar(&flagTrendsSegment, "segment", "", "student or professional (default: your profile's plan)")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(_ *cobra.Command, _ []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	seg := model.Segment(flagTrendsSegment)
	switch {
	case seg != "":
		if !seg.Valid() {
			return fmt.Errorf("unknown segment %q (want student or professional)", flagTrendsSegment)
		}
	case ws.session.Profile != nil:
		seg = ws.session.Profile.Segment
	default:
		fmt.Println("\n  No profile yet. Pass --segment or run `fincoach profile set`.")
		return nil
	}

	spending := ws.content.Spending(seg)
	months := spending.Months()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SPENDING TRENDS  %s sample", seg.Title())))

	for _, c := range spending.Categories {
		values := spending.Values(c)
		peak := 0.0
		for _, v := range values {
			peak = max(peak, v)
		}

		fmt.Println()
		fmt.Printf("  %s  %s\n", c.Title(), cli.RenderSparkline(values))
		for i, v := range values {
			fmt.Println(cli.RenderHorizontalBar(months[i], 4, v, peak, 30))
		}
		if n := len(values); n > 1 {
			fmt.Printf("  %s\n", cli.RenderMetric("Last month", cli.FormatDelta(values[n-1], values[n-2])))
		}
	}
	fmt.Println()
	return nil
}
