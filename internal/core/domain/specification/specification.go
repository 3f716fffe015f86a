// Package specification provides composable predicates over employees and a
// filter that applies them to a list.
//
// Leaf specifications return false for a nil employee. Combinators follow
// classical boolean logic exactly.
//
// Example usage:
//
//	wellPaidIT := specification.Of(specification.SalaryAtLeast(5500)).
//	    And(specification.Department("IT"))
//	found := specification.NewRepository(company.AllEmployees()).FindBySpecification(wellPaidIT)
package specification

import (
	"orgchart/internal/core/domain/model/employee"
)

// Specification is a predicate over one employee.
type Specification interface {
	IsSatisfiedBy(e employee.Employee) bool
}

// Func adapts a plain function to Specification.
type Func func(e employee.Employee) bool

// IsSatisfiedBy calls f(e).
func (f Func) IsSatisfiedBy(e employee.Employee) bool {
	return f(e)
}

type and struct {
	left, right Specification
}

func (s and) IsSatisfiedBy(e employee.Employee) bool {
	return s.left.IsSatisfiedBy(e) && s.right.IsSatisfiedBy(e)
}

type or struct {
	left, right Specification
}

func (s or) IsSatisfiedBy(e employee.Employee) bool {
	return s.left.IsSatisfiedBy(e) || s.right.IsSatisfiedBy(e)
}

type not struct {
	inner Specification
}

func (s not) IsSatisfiedBy(e employee.Employee) bool {
	return !s.inner.IsSatisfiedBy(e)
}

// And is satisfied when both a and b are.
func And(a, b Specification) Specification {
	return and{left: a, right: b}
}

// Or is satisfied when a or b is.
func Or(a, b Specification) Specification {
	return or{left: a, right: b}
}

// Not is satisfied when a is not.
func Not(a Specification) Specification {
	return not{inner: a}
}

// AllOf is satisfied when every spec is; with no specs it matches everything.
func AllOf(specs ...Specification) Specification {
	var result Specification = All()
	for i, s := range specs {
		if i == 0 {
			result = s
			continue
		}
		result = And(result, s)
	}
	return result
}

// Composite wraps a Specification with fluent combinators.
type Composite struct {
	Specification
}

// Of wraps s for fluent composition.
func Of(s Specification) Composite {
	if c, ok := s.(Composite); ok {
		return c
	}
	return Composite{Specification: s}
}

// And returns c AND other.
func (c Composite) And(other Specification) Composite {
	return Of(And(c.Specification, other))
}

// Or returns c OR other.
func (c Composite) Or(other Specification) Composite {
	return Of(Or(c.Specification, other))
}

// Not returns NOT c.
func (c Composite) Not() Composite {
	return Of(Not(c.Specification))
}
