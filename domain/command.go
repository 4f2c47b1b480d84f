package domain

import (
	"strings"
)

type CommandName string

const (
	CmdMenu      CommandName = "menu"
	CmdPair      CommandName = "pair"
	CmdRestore   CommandName = "restore"
	CmdAsk       CommandName = "ai"
	CmdTranslate CommandName = "translate"
	CmdToggleAI  CommandName = "toggle_ai"
	CmdBroadcast CommandName = "broadcast"
	CmdStats     CommandName = "stats"
	CmdUnknown   CommandName = ""
	CmdFreeText  CommandName = "free_text"
)

// Command is the classified form of an inbound message body.
// The set of variants is closed: only types of this package implement it.
type Command interface {
	Name() CommandName
	isCommand()
}

type MenuCommand struct{}

type PairCommand struct{}

// RestoreCommand carries an empty SessionID when the argument is missing.
type RestoreCommand struct {
	SessionID SessionID
}

// AskCommand is a direct question to the language model.
type AskCommand struct {
	Prompt string
}

// TranslateCommand: the last argument is the language, everything before is the text.
type TranslateCommand struct {
	Text     string
	Language string
}

type ToggleAICommand struct{}

type BroadcastCommand struct {
	Text string
}

type StatsCommand struct{}

type UnknownCommand struct {
	Raw string
}

// FreeText is any body not starting with the command prefix.
type FreeText struct {
	Body string
}

func (MenuCommand) Name() CommandName      { return CmdMenu }
func (PairCommand) Name() CommandName      { return CmdPair }
func (RestoreCommand) Name() CommandName   { return CmdRestore }
func (AskCommand) Name() CommandName       { return CmdAsk }
func (TranslateCommand) Name() CommandName { return CmdTranslate }
func (ToggleAICommand) Name() CommandName  { return CmdToggleAI }
func (BroadcastCommand) Name() CommandName { return CmdBroadcast }
func (StatsCommand) Name() CommandName     { return CmdStats }
func (UnknownCommand) Name() CommandName   { return CmdUnknown }
func (FreeText) Name() CommandName         { return CmdFreeText }

func (MenuCommand) isCommand()      {}
func (PairCommand) isCommand()      {}
func (RestoreCommand) isCommand()   {}
func (AskCommand) isCommand()       {}
func (TranslateCommand) isCommand() {}
func (ToggleAICommand) isCommand()  {}
func (BroadcastCommand) isCommand() {}
func (StatsCommand) isCommand()     {}
func (UnknownCommand) isCommand()   {}
func (FreeText) isCommand()         {}

// RequiresAdmin reports whether the command is privileged.
func RequiresAdmin(cmd Command) bool {
	switch cmd.(type) {
	case ToggleAICommand, BroadcastCommand, StatsCommand:
		return true
	default:
		return false
	}
}

// Classify turns a message body into a Command.
// A body is a command iff it starts with prefix; the first whitespace-delimited token
// without the prefix, lower-cased, is the name and the remaining tokens are arguments.
func Classify(body string, prefix rune) Command {
	if !strings.HasPrefix(body, string(prefix)) {
		return FreeText{Body: body}
	}

	fields := strings.Fields(strings.TrimPrefix(body, string(prefix)))
	// "!" alone or "! menu": the first token directly after the prefix is empty
	if len(fields) == 0 || startsWithSpace(body, prefix) {
		return UnknownCommand{Raw: body}
	}

	name := CommandName(strings.ToLower(fields[0]))
	args := fields[1:]

	switch name {
	case CmdMenu:
		return MenuCommand{}
	case CmdPair:
		return PairCommand{}
	case CmdRestore:
		if len(args) == 0 {
			return RestoreCommand{}
		}
		return RestoreCommand{SessionID: SessionID(args[0])}
	case CmdAsk:
		return AskCommand{Prompt: strings.Join(args, " ")}
	case CmdTranslate:
		if len(args) == 0 {
			return TranslateCommand{}
		}
		return TranslateCommand{
			Text:     strings.Join(args[:len(args)-1], " "),
			Language: args[len(args)-1],
		}
	case CmdToggleAI:
		return ToggleAICommand{}
	case CmdBroadcast:
		return BroadcastCommand{Text: strings.Join(args, " ")}
	case CmdStats:
		return StatsCommand{}
	default:
		return UnknownCommand{Raw: body}
	}
}

func startsWithSpace(body string, prefix rune) bool {
	rest := strings.TrimPrefix(body, string(prefix))
	return rest != strings.TrimLeft(rest, " \t\r\n")
}
