package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/fincoach/internal/advisor"
	"github.com/theirongolddev/fincoach/internal/cli"
	"github.com/theirongolddev/fincoach/internal/config"
	"github.com/theirongolddev/fincoach/internal/model"
	"github.com/theirongolddev/fincoach/internal/session"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var flagMessage string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the coach in the terminal",
	Long:  "Start an interactive chat, or send a single message with -m.",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&flagMessage, "message", "m", "", "Send one message and print the reply")
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	if flagMessage != "" {
		e, err := ws.session.Send(flagMessage)
		if err != nil {
			return err
		}
		if e != nil {
			fmt.Println(e.Content)
		}
		return nil
	}

	fmt.Println()
	for _, e := range ws.session.History {
		printEntry(e)
	}
	fmt.Println(cli.RenderWarning("  Type /help for commands, exit to quit."))
	fmt.Println()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You › ",
		HistoryFile:     config.HistoryPath(ws.cfg),
		HistoryLimit:    200,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Warn("readline unavailable, using plain input", "err", err)
		return chatLoop(ws, plainLines(os.Stdin))
	}
	defer rl.Close()

	return chatLoop(ws, func() (string, error) {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return line, err
	})
}

// plainLines reads lines from r without editing support.
func plainLines(r io.Reader) func() (string, error) {
	reader := bufio.NewReader(r)
	return func() (string, error) {
		fmt.Print("You › ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return line, nil
	}
}

// chatLoop runs the REPL until exit or end of input.
func chatLoop(ws *workspace, next func() (string, error)) error {
	sess := ws.session
	for {
		line, err := next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println("\n  Goodbye!")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		cmd := session.ParseCommand(line)
		switch cmd.Kind {
		case session.CommandExit:
			fmt.Println("  Goodbye!")
			return nil
		case session.CommandReset:
			if err := sess.Reset(); err != nil {
				return err
			}
			fmt.Println("  Conversation cleared.")
			fmt.Println()
			for _, e := range sess.History {
				printEntry(e)
			}
		case session.CommandQuick:
			e, err := sess.QuickAction(cmd.Arg)
			if err != nil {
				fmt.Println(cli.RenderWarning("  " + err.Error()))
				printQuickActions()
				continue
			}
			printEntry(*e)
		case session.CommandProfile:
			if err := editProfile(ws); err != nil {
				fmt.Println(cli.RenderWarning("  " + err.Error()))
				continue
			}
			printEntry(sess.History[len(sess.History)-1])
		case session.CommandHelp:
			printChatHelp()
		case session.CommandUnknown:
			fmt.Println(cli.RenderWarning(fmt.Sprintf("  Unknown command /%s. Type /help for commands.", cmd.Arg)))
		default:
			e, err := sess.Send(cmd.Arg)
			if err != nil {
				return err
			}
			if e != nil {
				printEntry(*e)
			}
		}
	}
}

func printEntry(e model.Entry) {
	printEntryWithAge(e, "")
}

func printEntryWithAge(e model.Entry, age string) {
	speaker := cli.RenderSpeaker(e.Role == model.RoleAssistant)
	if age != "" {
		speaker += "  " + cli.RenderMuted(age)
	}
	fmt.Println(speaker)
	for _, line := range strings.Split(e.Content, "\n") {
		fmt.Printf("  %s\n", line)
	}
	fmt.Println()
}

func printQuickActions() {
	for _, qa := range advisor.QuickActions {
		fmt.Println(cli.RenderMetric("/quick "+qa.Name, qa.Label))
	}
}

func printChatHelp() {
	fmt.Println()
	fmt.Println(cli.RenderMetric("/profile", "Set up or change your profile"))
	fmt.Println(cli.RenderMetric("/reset", "Clear the conversation"))
	printQuickActions()
	fmt.Println(cli.RenderMetric("exit", "Leave the chat"))
	fmt.Println()
	fmt.Println("  Topics")
	for _, topic := range advisor.Topics {
		if kws := advisor.Keywords(topic); len(kws) > 0 {
			fmt.Println(cli.RenderMetric(string(topic), strings.Join(kws, ", ")))
		}
	}
	fmt.Println()
}
