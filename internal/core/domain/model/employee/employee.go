package employee

import (
	"errors"
	"fmt"
	"strings"

	"orgchart/internal/pkg/errs"
	"orgchart/internal/pkg/guard"
)

// Domain errors for employee construction and mutation.
var (
	// ErrNameIsRequired is returned when an employee is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDepartmentIsRequired is returned when an employee is created without a department name.
	ErrDepartmentIsRequired = errs.NewValueIsRequiredError("department")
	// ErrEmployeeIsNotConstructed is returned when using a zero-value employee variant.
	ErrEmployeeIsNotConstructed = errors.New("employee must be created via its constructor")
)

// Employee is the capability contract shared by every variant.
//
// Identity is the integer id. The id, name and department are fixed at
// construction; the base salary is the only attribute common to all variants
// that may change afterwards.
//
// Example usage:
//
//	dev, _ := NewDeveloper(3, "Carol", "Development", 5000, []string{"Go"}, Senior)
//	var e Employee = dev
//	fmt.Println(e.CalculateSalary()) // 10000
type Employee interface {
	// ID returns the positive identifier that is unique company-wide.
	ID() int
	// Name returns the display name.
	Name() string
	// Department returns the name of the department the employee was hired into.
	Department() string
	// BaseSalary returns the current base salary.
	BaseSalary() float64
	// SetBaseSalary replaces the base salary. Negative amounts are rejected.
	SetBaseSalary(amount float64) error
	// SalaryComponents returns the role salary breakdown.
	SalaryComponents() SalaryComponents
	// CalculateSalary returns the role salary with all adjustments applied.
	CalculateSalary() float64
	// AddAdjustment appends an adjustment to the salary pipeline.
	AddAdjustment(a Adjustment) error
	// Adjustments returns a copy of the adjustments in application order.
	Adjustments() []Adjustment
	// Kind reports the variant.
	Kind() Kind
	// Info returns a one-line human readable description.
	Info() string
	// Validate reports whether the value was created via a constructor.
	Validate() error
}

// SkillHolder is implemented by variants that carry a skill list.
type SkillHolder interface {
	Skills() []string
}

// profile holds the attributes every variant shares.
type profile struct {
	id          int
	name        string
	department  string
	baseSalary  float64
	adjustments []Adjustment
	guard       guard.ConstructorGuard
}

func newProfile(id int, name, department string, baseSalary float64) (profile, error) {
	p := profile{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDepartment(department),
		p.SetBaseSalary(baseSalary),
	); err != nil {
		return profile{}, err
	}
	return p, nil
}

func (p *profile) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id, 1, nil)
	}
	p.id = id
	return nil
}

func (p *profile) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *profile) setDepartment(department string) error {
	department = strings.TrimSpace(department)
	if department == "" {
		return ErrDepartmentIsRequired
	}
	p.department = department
	return nil
}

// ID returns the employee id.
func (p *profile) ID() int {
	return p.id
}

// Name returns the employee name.
func (p *profile) Name() string {
	return p.name
}

// Department returns the department name the employee belongs to.
func (p *profile) Department() string {
	return p.department
}

// BaseSalary returns the current base salary.
func (p *profile) BaseSalary() float64 {
	return p.baseSalary
}

// SetBaseSalary replaces the base salary.
//
// Returns:
//   - error: ValueIsOutOfRangeError if amount is negative; the salary is left unchanged
func (p *profile) SetBaseSalary(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsOutOfRangeError("base_salary", amount, 0, nil)
	}
	p.baseSalary = amount
	return nil
}

// AddAdjustment appends a to the salary pipeline.
func (p *profile) AddAdjustment(a Adjustment) error {
	if a.kind == UnknownAdjustment {
		return errs.NewValueIsInvalidError("adjustment")
	}
	p.adjustments = append(p.adjustments, a)
	return nil
}

// Adjustments returns a copy of the adjustments in application order.
func (p *profile) Adjustments() []Adjustment {
	out := make([]Adjustment, len(p.adjustments))
	copy(out, p.adjustments)
	return out
}

func (p *profile) salary(c SalaryComponents) float64 {
	return ApplyAdjustments(c.Gross(), p.adjustments...)
}

func (p *profile) validate() error {
	return p.guard.Validate(ErrEmployeeIsNotConstructed)
}

// info renders the shared part of Info followed by the variant extras.
func (p *profile) info(kind Kind, total float64, extras ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [id: %d, name: %s, department: %s, base salary: %s",
		kind, p.id, p.name, p.department, formatAmount(p.baseSalary))
	for _, e := range extras {
		b.WriteString(", ")
		b.WriteString(e)
	}
	fmt.Fprintf(&b, ", total salary: %s]", formatAmount(total))
	if len(p.adjustments) > 0 {
		parts := make([]string, 0, len(p.adjustments))
		for _, a := range p.adjustments {
			parts = append(parts, a.String())
		}
		fmt.Fprintf(&b, " adjustments: %s", strings.Join(parts, ", "))
	}
	return b.String()
}
