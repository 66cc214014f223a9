package session

import "strings"

// CommandKind identifies a chat input line.
type CommandKind int

const (
	// CommandMessage is plain text sent to the advisor.
	CommandMessage CommandKind = iota
	CommandReset
	CommandQuick
	CommandProfile
	CommandHelp
	CommandExit
	CommandUnknown
)

// Command is one parsed line of chat input.
type Command struct {
	Kind CommandKind
	Arg  string
}

// ParseCommand interprets a chat input line. Lines starting with "/" are
// commands; "exit" and "quit" end the conversation; anything else is a
// message.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "exit", "quit":
		return Command{Kind: CommandExit}
	}
	if !strings.HasPrefix(line, "/") {
		return Command{Kind: CommandMessage, Arg: line}
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(line, "/"), " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(name) {
	case "reset", "clear":
		return Command{Kind: CommandReset}
	case "quick", "q":
		return Command{Kind: CommandQuick, Arg: strings.ToLower(arg)}
	case "profile":
		return Command{Kind: CommandProfile}
	case "help", "?":
		return Command{Kind: CommandHelp}
	case "exit", "quit":
		return Command{Kind: CommandExit}
	default:
		return Command{Kind: CommandUnknown, Arg: name}
	}
}
