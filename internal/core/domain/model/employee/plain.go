package employee

// Plain is a regular employee paid exactly the base salary.
type Plain struct {
	profile
}

var _ Employee = (*Plain)(nil)

// NewPlain creates a regular employee.
//
// Parameters:
//   - id: positive identifier, unique company-wide
//   - name: non-empty display name
//   - department: non-empty department name
//   - baseSalary: non-negative monthly base salary
//
// Returns:
//   - *Plain: the employee
//   - error: every validation failure joined together
func NewPlain(id int, name, department string, baseSalary float64) (*Plain, error) {
	p, err := newProfile(id, name, department, baseSalary)
	if err != nil {
		return nil, err
	}
	return &Plain{profile: p}, nil
}

// Kind returns KindPlain.
func (e *Plain) Kind() Kind {
	return KindPlain
}

// SalaryComponents returns the base salary with neutral extras.
func (e *Plain) SalaryComponents() SalaryComponents {
	return SalaryComponents{Base: e.baseSalary, Multiplier: 1}
}

// CalculateSalary returns the base salary after adjustments.
func (e *Plain) CalculateSalary() float64 {
	return e.salary(e.SalaryComponents())
}

// Info describes the employee.
func (e *Plain) Info() string {
	return e.info(KindPlain, e.CalculateSalary())
}

// Validate returns ErrEmployeeIsNotConstructed for a nil or zero value.
func (e *Plain) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.validate()
}
