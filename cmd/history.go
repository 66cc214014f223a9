package cmd

import (
	"fmt"

	"github.com/theirongolddev/fincoach/internal/cli"

	"github.com/spf13/cobra"
)

var flagHistoryClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the conversation transcript",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Clear the conversation instead of printing it")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	if flagHistoryClear {
		if err := ws.session.Reset(); err != nil {
			return err
		}
		fmt.Println("  Conversation cleared.")
		return nil
	}

	now := nowFunc()
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CONVERSATION  %s messages", cli.FormatNumber(int64(len(ws.session.History))))))
	fmt.Println()
	for _, e := range ws.session.History {
		printEntryWithAge(e, cli.FormatAge(e.Timestamp, now))
	}
	return nil
}
