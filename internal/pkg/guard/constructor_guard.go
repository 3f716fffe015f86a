// Package guard provides ConstructorGuard, a marker that lets entities and
// command objects tell a value built by its constructor apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in entities (employees, departments, projects)
// and command objects. Only NewConstructorGuard produces a guard that validates,
// so a zero-value struct is always rejected before any operation touches it.
//
// Example:
//
//	var ErrDepartmentIsNotConstructed = errors.New("Department must be created via NewDepartment")
//
//	type Department struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (d *Department) Validate() error {
//	    if d == nil {
//	        return ErrDepartmentIsNotConstructed
//	    }
//	    return d.guard.Validate(ErrDepartmentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
