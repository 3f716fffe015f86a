package employee

import (
	"errors"
)

// Params carries the constructor arguments for any variant. Fields that do
// not apply to the requested kind are ignored.
type Params struct {
	ID         int
	Name       string
	Department string
	BaseSalary float64

	// Manager
	Bonus float64

	// Developer
	Skills    []string
	Seniority Seniority

	// Salesperson
	CommissionRate float64
	SalesVolume    float64

	// Adjustments are appended in order after construction.
	Adjustments []Adjustment
}

// New creates an employee of the given kind.
//
// Returns:
//   - Employee: the constructed variant
//   - error: ValueIsInvalidError for an unknown kind, or the variant's validation errors
func New(kind Kind, p Params) (Employee, error) {
	var (
		e   Employee
		err error
	)
	switch kind {
	case KindPlain:
		e, err = asEmployee(NewPlain(p.ID, p.Name, p.Department, p.BaseSalary))
	case KindManager:
		e, err = asEmployee(NewManager(p.ID, p.Name, p.Department, p.BaseSalary, p.Bonus))
	case KindDeveloper:
		e, err = asEmployee(NewDeveloper(p.ID, p.Name, p.Department, p.BaseSalary, p.Skills, p.Seniority))
	case KindSalesperson:
		e, err = asEmployee(NewSalesperson(p.ID, p.Name, p.Department, p.BaseSalary, p.CommissionRate, p.SalesVolume))
	case KindUnknown:
		return nil, kind.Validate()
	default:
		return nil, kind.Validate()
	}
	if err != nil {
		return nil, err
	}

	var joined error
	for _, a := range p.Adjustments {
		joined = errors.Join(joined, e.AddAdjustment(a))
	}
	if joined != nil {
		return nil, joined
	}
	return e, nil
}

// asEmployee drops typed nil pointers so a failed constructor yields a nil interface.
func asEmployee[T Employee](v T, err error) (Employee, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
