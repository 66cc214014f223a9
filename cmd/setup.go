package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theirongolddev/fincoach/internal/config"
	"github.com/theirongolddev/fincoach/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file, not flag overrides
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}

	minMs := strconv.Itoa(cfg.Chat.ReplyDelayMinMs)
	maxMs := strconv.Itoa(cfg.Chat.ReplyDelayMaxMs)
	withProfile := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to fincoach!").
				Description(fmt.Sprintf("Settings are saved to %s.", config.ConfigPath())),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&cfg.Appearance.Theme),
			huh.NewInput().
				Title("Minimum reply delay (ms)").
				Value(&minMs).
				Validate(validateMillis),
			huh.NewInput().
				Title("Maximum reply delay (ms)").
				Value(&maxMs).
				Validate(validateMillis),
			huh.NewConfirm().
				Title("Set up your financial profile now?").
				Value(&withProfile),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	cfg.Chat.ReplyDelayMinMs, _ = strconv.Atoi(minMs)
	cfg.Chat.ReplyDelayMaxMs, _ = strconv.Atoi(maxMs)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())

	if withProfile {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		defer ws.Close()
		if err := editProfile(ws); err != nil {
			return err
		}
		printProfileSaved(ws.session)
	}

	fmt.Println("  Run `fincoach setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func validateMillis(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errors.New("enter a whole number of milliseconds")
	}
	return nil
}
