package editor

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/poke/internal/log"
)

// ErrUnknownCommand is returned by ExecName for names outside the command
// vocabulary.
var ErrUnknownCommand = errors.New("unknown editor command")

// Command names one argument-less editing command.
type Command uint8

const (
	CmdMoveBackward Command = iota
	CmdMoveForward
	CmdMoveBackwardWB
	CmdMoveForwardWB
	CmdMoveToSOL
	CmdMoveToEOL
	CmdMoveToStart
	CmdMoveToEnd
	CmdDeleteBackward
	CmdDeleteForward
	CmdDeleteBackwardWB
	CmdDeleteForwardWB
	CmdExpandAbbreviation
	CmdEvalScript

	numCommands
)

var commandNames = [numCommands]string{
	CmdMoveBackward:       "moveBackward",
	CmdMoveForward:        "moveForward",
	CmdMoveBackwardWB:     "moveBackwardWB",
	CmdMoveForwardWB:      "moveForwardWB",
	CmdMoveToSOL:          "moveToSOL",
	CmdMoveToEOL:          "moveToEOL",
	CmdMoveToStart:        "moveToStart",
	CmdMoveToEnd:          "moveToEnd",
	CmdDeleteBackward:     "deleteBackward",
	CmdDeleteForward:      "deleteForward",
	CmdDeleteBackwardWB:   "deleteBackwardWB",
	CmdDeleteForwardWB:    "deleteForwardWB",
	CmdExpandAbbreviation: "expandAbbreviation",
	CmdEvalScript:         "evalJS",
}

var commandFuncs = [numCommands]func(*Editor) error{
	CmdMoveBackward:       (*Editor).MoveBackward,
	CmdMoveForward:        (*Editor).MoveForward,
	CmdMoveBackwardWB:     (*Editor).MoveBackwardWB,
	CmdMoveForwardWB:      (*Editor).MoveForwardWB,
	CmdMoveToSOL:          (*Editor).MoveToSOL,
	CmdMoveToEOL:          (*Editor).MoveToEOL,
	CmdMoveToStart:        (*Editor).MoveToStart,
	CmdMoveToEnd:          (*Editor).MoveToEnd,
	CmdDeleteBackward:     (*Editor).DeleteBackward,
	CmdDeleteForward:      (*Editor).DeleteForward,
	CmdDeleteBackwardWB:   (*Editor).DeleteBackwardWB,
	CmdDeleteForwardWB:    (*Editor).DeleteForwardWB,
	CmdExpandAbbreviation: (*Editor).ExpandAbbreviation,
	CmdEvalScript:         (*Editor).EvalScript,
}

// commandAliases are extra names accepted by ParseCommand.
var commandAliases = map[string]Command{
	"evalScript": CmdEvalScript,
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, int(numCommands)+len(commandAliases))
	for c, name := range commandNames {
		m[name] = Command(c)
	}
	for name, c := range commandAliases {
		m[name] = c
	}
	return m
}()

func (c Command) String() string {
	if c < numCommands {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

func (c Command) Valid() bool { return c < numCommands }

// Commands returns every command in declaration order.
func Commands() []Command {
	out := make([]Command, numCommands)
	for i := range out {
		out[i] = Command(i)
	}
	return out
}

// ParseCommand maps a command name such as "moveBackwardWB" to its Command.
func ParseCommand(name string) (Command, bool) {
	c, ok := commandsByName[name]
	return c, ok
}

// Exec runs cmd.
func (e *Editor) Exec(cmd Command) error {
	if !cmd.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	log.Debug(log.CatEditor, "command", "name", cmd.String(), "caret", e.buf.Caret().String())
	return commandFuncs[cmd](e)
}

// ExecName runs the command called name.
func (e *Editor) ExecName(name string) error {
	cmd, ok := ParseCommand(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return e.Exec(cmd)
}
