// Package employee contains the employee entity and its four variants:
// Plain, Manager, Developer and Salesperson.
//
// Every variant satisfies the Employee capability contract used by the rest of
// the system: a positive unique id, a mutable base salary and a salary
// computation. Role-specific pay is expressed through SalaryComponents, which
// every variant returns in full (neutral values where a concept does not apply),
// so callers never need to inspect the concrete type to price an employee.
//
// Extra pay that is not tied to a role (one-off bonuses, training allowances,
// performance multipliers) is modelled as an ordered list of Adjustment values
// applied after the role salary.
package employee
