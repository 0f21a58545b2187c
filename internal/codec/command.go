package codec

import (
	"strconv"

	"github.com/yanun0323/errors"

	"main/internal/model/enum"
	"main/pkg/exception"
	"main/pkg/scanner"
)

// Command is one parsed engine input line. Kind selects which of the
// remaining fields are meaningful; command routing happens on the enum,
// never on raw strings.
type Command struct {
	Kind enum.CommandKind

	// Name and Args keep the raw tokens for error reporting.
	Name string
	Args string

	// Key/Value carry a settings pair, or a game-data key and payload.
	Key   string
	Value string

	// GameData identifies a known `update game` key; zero when the key
	// is unrecognized.
	GameData enum.GameDataKind

	// Action and Timebank are set for `action` commands.
	Action   string
	Timebank int
}

// ParseLine tokenizes one engine line into a Command.
func ParseLine(line string) (Command, error) {
	name, args := scanner.Shift(line)
	if name == "" {
		return Command{}, exception.ErrEmptyLine
	}

	cmd := Command{Name: name, Args: args}
	switch name {
	case "settings":
		return parseSettings(cmd, args)
	case "update":
		return parseUpdate(cmd, args)
	case "action":
		return parseAction(cmd, args)
	default:
		return cmd, exception.ErrUnknownCommand
	}
}

func parseSettings(cmd Command, args string) (Command, error) {
	key, value := scanner.Shift(args)
	if key == "" {
		return cmd, errors.Wrap(exception.ErrMissingArgument, "settings key")
	}
	cmd.Kind = enum.CommandSettings
	cmd.Key = key
	cmd.Value = value
	return cmd, nil
}

func parseUpdate(cmd Command, args string) (Command, error) {
	scope, rest := scanner.Shift(args)
	if scope != "game" {
		return cmd, errors.Wrapf(exception.ErrUnknownCommand, "update scope %q", scope)
	}
	key, payload := scanner.Shift(rest)
	if key == "" {
		return cmd, errors.Wrap(exception.ErrMissingArgument, "update game key")
	}

	cmd.Kind = enum.CommandUpdate
	cmd.Key = key
	cmd.Value = payload
	switch key {
	case "next_candles":
		cmd.GameData = enum.GameDataNextCandles
	case "stacks":
		cmd.GameData = enum.GameDataStacks
	}
	return cmd, nil
}

func parseAction(cmd Command, args string) (Command, error) {
	action, rest := scanner.Shift(args)
	if action == "" {
		return cmd, errors.Wrap(exception.ErrMissingArgument, "action name")
	}

	cmd.Kind = enum.CommandAction
	cmd.Action = action
	if rest != "" {
		timebank, err := strconv.Atoi(rest)
		if err != nil {
			return cmd, errors.Wrapf(exception.ErrMalformedInput, "action timebank %q", rest)
		}
		cmd.Timebank = timebank
	}
	return cmd, nil
}
