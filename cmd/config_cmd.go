package cmd

import (
	"fmt"

	"github.com/theirongolddev/fincoach/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	fmt.Printf("    Database:       %s\n", config.DBPath(cfg))
	if cfg.General.SessionID != "" {
		fmt.Printf("    Session:        %s\n", cfg.General.SessionID)
	} else {
		fmt.Println("    Session:        most recent")
	}
	fmt.Println()

	lo, hi := cfg.Chat.ReplyDelay()
	fmt.Println("  [Chat]")
	fmt.Printf("    Reply delay:    %s - %s\n", lo, hi)
	fmt.Printf("    History file:   %s\n", config.HistoryPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Printf("  Edit %s or use the Settings tab in `fincoach tui`.\n", config.ConfigPath())
	return nil
}
