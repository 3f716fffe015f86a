// Package commands contains the reversible organization operations and the
// invoker that keeps their linear undo/redo history.
//
// Each command is a single-use toggle. Execute moves it from Pending to
// Executed, Undo moves it back. Asking for a transition that already holds
// (executing twice, undoing a pending command) returns false and changes
// nothing. A precondition that should have been impossible, such as a missing
// department on first execution, is returned as an error instead.
//
// Example usage:
//
//	invoker := commands.NewCommandInvoker()
//	hire, err := commands.NewHireEmployeeCommand(dev, company, "Development")
//	if err != nil {
//	    return err
//	}
//	if _, err := invoker.ExecuteCommand(hire); err != nil {
//	    return err
//	}
//	invoker.Undo() // the developer leaves Development again
package commands
