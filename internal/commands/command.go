package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/clockd/internal/model"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeDelete  Type = "delete"
	TypeRemove  Type = "remove"
	TypeSnooze  Type = "snooze"
	TypeDismiss Type = "dismiss"
	TypeNext    Type = "next"
	TypeList    Type = "list"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Label         string
	At            model.TimeOfDay
	Days          model.DaySet
	Sound         string
	SnoozeMinutes uint
}

type DeleteArgs struct {
	ID model.ID
}

type RemoveArgs struct {
	Index int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Delete *DeleteArgs
	Remove *RemoveArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDelete:
		return parseDelete(input, args)
	case TypeRemove:
		return parseRemove(input, args)
	case TypeSnooze, TypeDismiss, TypeNext, TypeList:
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd reads: add HH:MM[:SS] <days> [snooze=N] [sound=path] <label...>
func parseAdd(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires time and days"}
	}
	at, err := model.ParseTimeOfDay(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	days, err := model.ParseDaySet(args[1])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}

	out := &AddArgs{At: at, Days: days}
	label := make([]string, 0, len(args))
	for _, arg := range args[2:] {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "snooze="):
			v, convErr := strconv.ParseUint(strings.TrimPrefix(lower, "snooze="), 10, 16)
			if convErr != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid snooze minutes: %s", arg)}
			}
			out.SnoozeMinutes = uint(v)
		case strings.HasPrefix(lower, "sound="):
			out.Sound = arg[len("sound="):]
		default:
			label = append(label, arg)
		}
	}
	out.Label = strings.TrimSpace(strings.Join(label, " "))
	return Command{Type: TypeAdd, Raw: raw, Add: out}, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires an alarm id"}
	}
	v, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid alarm id: %s", args[0])}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{ID: model.ID(v)}}, nil
}

func parseRemove(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "remove requires a list position"}
	}
	v, err := strconv.Atoi(args[0])
	if err != nil || v < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid list position: %s", args[0])}
	}
	// positions are shown 1-based
	return Command{Type: TypeRemove, Raw: raw, Remove: &RemoveArgs{Index: v - 1}}, nil
}
