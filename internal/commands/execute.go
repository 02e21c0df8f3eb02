package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Delete  func(DeleteArgs) (Result, error)
	Remove  func(RemoveArgs) (Result, error)
	Snooze  func() (Result, error)
	Dismiss func() (Result, error)
	Next    func() (Result, error)
	List    func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing("add")
		}
		return handlers.Add(*cmd.Add)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missing("delete")
		}
		return handlers.Delete(*cmd.Delete)
	case TypeRemove:
		if handlers.Remove == nil {
			return Result{}, missing("remove")
		}
		return handlers.Remove(*cmd.Remove)
	case TypeSnooze:
		return runNoArgs(handlers.Snooze, "snooze")
	case TypeDismiss:
		return runNoArgs(handlers.Dismiss, "dismiss")
	case TypeNext:
		return runNoArgs(handlers.Next, "next")
	case TypeList:
		return runNoArgs(handlers.List, "list")
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func runNoArgs(fn func() (Result, error), name string) (Result, error) {
	if fn == nil {
		return Result{}, missing(name)
	}
	return fn()
}

func missing(name string) *CommandError {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: name + " handler not configured"}
}
