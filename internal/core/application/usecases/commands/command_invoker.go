package commands

import (
	"time"

	"orgchart/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrCommandIsRequired is returned when a nil command is executed.
var ErrCommandIsRequired = errs.NewValueIsRequiredError("command")

// Action is the invoker operation recorded in the audit trail.
type Action string

const (
	ActionExecute Action = "execute"
	ActionUndo    Action = "undo"
	ActionRedo    Action = "redo"
)

// AuditEntry records one invoker attempt, successful or not.
type AuditEntry struct {
	ID        uuid.UUID
	Command   string
	Action    Action
	Succeeded bool
	At        time.Time
}

// InvokerOption configures a CommandInvoker.
type InvokerOption func(*CommandInvoker)

// WithClock sets the time source used for audit entries.
func WithClock(now func() time.Time) InvokerOption {
	return func(i *CommandInvoker) {
		i.now = now
	}
}

// CommandInvoker executes commands and keeps a linear undo/redo history.
//
// history[0:applied] is the active sequence; history[applied:] can be redone
// until a new command is executed, which discards it. CurrentIndex is
// applied-1, so -1 means nothing is applied.
//
// Undo moves the cursor back only when the command's own Undo succeeds. A
// command whose Undo fails stays at the cursor and will be offered again by
// the next Undo call.
//
// The zero value is ready to use.
type CommandInvoker struct {
	history []Command
	applied int
	audit   []AuditEntry
	now     func() time.Time
}

// NewCommandInvoker creates an invoker with an empty history.
func NewCommandInvoker(opts ...InvokerOption) *CommandInvoker {
	i := &CommandInvoker{now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ExecuteCommand executes cmd. On success the redo tail is discarded and cmd
// becomes the current command. On failure, false or an error, the history is
// left untouched.
func (i *CommandInvoker) ExecuteCommand(cmd Command) (bool, error) {
	if cmd == nil {
		return false, ErrCommandIsRequired
	}

	ok, err := cmd.Execute()
	i.record(cmd, ActionExecute, ok && err == nil)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	i.history = append(i.history[:i.applied:i.applied], cmd)
	i.applied++
	return true, nil
}

// Undo reverses the current command. Returns false when nothing is applied
// or the command refused to undo.
func (i *CommandInvoker) Undo() bool {
	if i.applied == 0 {
		return false
	}

	cmd := i.history[i.applied-1]
	ok := cmd.Undo()
	i.record(cmd, ActionUndo, ok)
	if ok {
		i.applied--
	}
	return ok
}

// Redo advances the cursor and executes the command there again.
// Returns false when there is nothing to redo. The cursor stays advanced
// even if the re-execution fails.
func (i *CommandInvoker) Redo() (bool, error) {
	if i.applied >= len(i.history) {
		return false, nil
	}

	cmd := i.history[i.applied]
	i.applied++
	ok, err := cmd.Execute()
	i.record(cmd, ActionRedo, ok && err == nil)
	return ok, err
}

// CanUndo reports whether Undo has a command to offer.
func (i *CommandInvoker) CanUndo() bool {
	return i.applied > 0
}

// CanRedo reports whether Redo has a command to offer.
func (i *CommandInvoker) CanRedo() bool {
	return i.applied < len(i.history)
}

// CurrentIndex returns the index of the current command, -1 when none.
func (i *CommandInvoker) CurrentIndex() int {
	return i.applied - 1
}

// History returns a copy of the full history including the redo tail.
func (i *CommandInvoker) History() []Command {
	out := make([]Command, len(i.history))
	copy(out, i.history)
	return out
}

// ClearHistory forgets every command. The audit trail is kept.
func (i *CommandInvoker) ClearHistory() {
	i.history = nil
	i.applied = 0
}

// AuditTrail returns a copy of every recorded attempt in order.
func (i *CommandInvoker) AuditTrail() []AuditEntry {
	out := make([]AuditEntry, len(i.audit))
	copy(out, i.audit)
	return out
}

func (i *CommandInvoker) record(cmd Command, action Action, succeeded bool) {
	now := i.now
	if now == nil {
		now = time.Now
	}
	i.audit = append(i.audit, AuditEntry{
		ID:        uuid.New(),
		Command:   cmd.Name(),
		Action:    action,
		Succeeded: succeeded,
		At:        now(),
	})
}
