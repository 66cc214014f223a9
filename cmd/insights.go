package cmd

import (
	"fmt"

	"github.com/theirongolddev/fincoach/internal/budget"
	"github.com/theirongolddev/fincoach/internal/cli"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show observations about your budget",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	p := ws.session.Profile
	if p == nil {
		fmt.Println("\n  No profile yet. Run `fincoach profile set` first.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET INSIGHTS"))
	fmt.Println()
	for _, in := range budget.Insights(p) {
		fmt.Printf("  %s  %s\n", in.Icon, in.Title)
		fmt.Printf("     %s\n\n", in.Description)
	}
	return nil
}
