package specification

import (
	"math"
	"slices"

	"orgchart/internal/core/domain/model/employee"
)

// All matches every non-nil employee.
func All() Specification {
	return Func(func(e employee.Employee) bool {
		return e != nil
	})
}

// Salary matches employees whose computed salary lies in [minSalary, maxSalary].
func Salary(minSalary, maxSalary float64) Specification {
	return Func(func(e employee.Employee) bool {
		if e == nil {
			return false
		}
		s := e.CalculateSalary()
		return s >= minSalary && s <= maxSalary
	})
}

// SalaryAtLeast matches a computed salary of minSalary or more.
func SalaryAtLeast(minSalary float64) Specification {
	return Salary(minSalary, math.Inf(1))
}

// SalaryAtMost matches a computed salary of maxSalary or less.
func SalaryAtMost(maxSalary float64) Specification {
	return Salary(math.Inf(-1), maxSalary)
}

// Department matches the exact department name.
func Department(name string) Specification {
	return Func(func(e employee.Employee) bool {
		return e != nil && e.Department() == name
	})
}

// Skills matches employees that list every required skill.
// Employees without a skill list never match, even with no required skills.
func Skills(required ...string) Specification {
	return Func(func(e employee.Employee) bool {
		holder, ok := e.(employee.SkillHolder)
		if !ok {
			return false
		}
		have := holder.Skills()
		for _, skill := range required {
			if !slices.Contains(have, skill) {
				return false
			}
		}
		return true
	})
}

// Kind matches a single employee variant.
func Kind(kind employee.Kind) Specification {
	return Func(func(e employee.Employee) bool {
		return e != nil && e.Kind() == kind
	})
}
