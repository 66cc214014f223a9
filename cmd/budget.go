package cmd

import (
	"fmt"

	"github.com/theirongolddev/fincoach/internal/budget"
	"github.com/theirongolddev/fincoach/internal/cli"
	"github.com/theirongolddev/fincoach/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show your monthly budget allocation",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	p := ws.session.Profile
	if p == nil {
		fmt.Println("\n  No profile yet. Run `fincoach profile set` to get a budget.")
		return nil
	}
	alloc := p.Budget

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY BUDGET  %s plan", p.Segment.Title())))
	fmt.Println()

	fmt.Println(cli.RenderMetric("Income", cli.FormatMoney(alloc.Income)))
	fmt.Println(cli.RenderMetric("Allocated", cli.FormatMoney(alloc.Total())))
	fmt.Println(cli.RenderMetric("Savings rate", cli.FormatPercent(alloc.SavingsRate())))
	fmt.Println()

	hundred := decimal.NewFromInt(100)
	rows := make([][]string, 0, len(alloc.Expenses)+1)
	for _, c := range alloc.Categories() {
		amt, _ := alloc.Amount(c)
		target := "-"
		if f, ok := budget.Fraction(p.Segment, c); ok {
			target = cli.FormatPercent(f.Mul(hundred))
		}
		rows = append(rows, []string{
			c.Title(),
			cli.FormatMoney(amt),
			target,
			cli.RenderShareBar(alloc.Share(c), 20),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Amount", "Target", "Share"},
		Rows:    rows,
		Footer:  []string{"Total", cli.FormatMoney(alloc.Total()), "", ""},
	}))

	housing := alloc.PercentOfIncome(model.CategoryHousing)
	if housing.GreaterThan(decimal.NewFromInt(33)) {
		fmt.Println()
		fmt.Println(cli.RenderWarning(fmt.Sprintf("  Housing is %s of income, above the 33%% guideline.", cli.FormatPercent(housing))))
	}

	tips := 0
	for _, c := range alloc.Categories() {
		tip, ok := ws.content.Tip(c)
		if !ok {
			continue
		}
		if tips == 0 {
			fmt.Println()
			fmt.Println("  Optimization tips")
		}
		tips++
		fmt.Printf("    %s: %s\n", c.Title(), tip)
	}
	fmt.Println()
	return nil
}
