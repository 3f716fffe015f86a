package employee

import (
	"errors"
	"slices"
	"strings"

	"orgchart/internal/pkg/errs"
)

// ErrSkillIsRequired is returned when an empty skill name is added.
var ErrSkillIsRequired = errs.NewValueIsRequiredError("skill")

// Developer is paid base salary scaled by seniority and carries a skill list.
//
// Business rules:
//   - Skills keep insertion order; a skill already present is not added again
//   - Seniority must be Junior, Middle or Senior
type Developer struct {
	profile
	skills    []string
	seniority Seniority
}

var (
	_ Employee    = (*Developer)(nil)
	_ SkillHolder = (*Developer)(nil)
)

// NewDeveloper creates a developer.
//
// Example:
//
//	d, err := NewDeveloper(2, "Bob", "Development", 5000, []string{"Python", "Java"}, Senior)
//	// d.CalculateSalary() == 10000
func NewDeveloper(
	id int,
	name, department string,
	baseSalary float64,
	skills []string,
	seniority Seniority,
) (*Developer, error) {
	p, err := newProfile(id, name, department, baseSalary)
	d := &Developer{profile: p}
	if err := errors.Join(err, d.setSeniority(seniority), d.addSkills(skills)); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Developer) setSeniority(s Seniority) error {
	if err := s.Validate(); err != nil {
		return err
	}
	d.seniority = s
	return nil
}

func (d *Developer) addSkills(skills []string) error {
	var joined error
	for _, s := range skills {
		joined = errors.Join(joined, d.AddSkill(s))
	}
	return joined
}

// AddSkill appends skill unless it is already present.
func (d *Developer) AddSkill(skill string) error {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return ErrSkillIsRequired
	}
	if !slices.Contains(d.skills, skill) {
		d.skills = append(d.skills, skill)
	}
	return nil
}

// Skills returns a copy of the skill list in insertion order.
func (d *Developer) Skills() []string {
	return slices.Clone(d.skills)
}

// HasSkill reports whether the developer lists skill (exact match).
func (d *Developer) HasSkill(skill string) bool {
	return slices.Contains(d.skills, skill)
}

// Seniority returns the developer's level.
func (d *Developer) Seniority() Seniority {
	return d.seniority
}

// Kind returns KindDeveloper.
func (d *Developer) Kind() Kind {
	return KindDeveloper
}

// SalaryComponents returns the base salary with the seniority multiplier.
func (d *Developer) SalaryComponents() SalaryComponents {
	return SalaryComponents{Base: d.baseSalary, Multiplier: d.seniority.Multiplier()}
}

// CalculateSalary returns base * multiplier after adjustments.
func (d *Developer) CalculateSalary() float64 {
	return d.salary(d.SalaryComponents())
}

// Info describes the developer including level and skills.
func (d *Developer) Info() string {
	return d.info(KindDeveloper, d.CalculateSalary(),
		"seniority: "+d.seniority.String(),
		"skills: "+strings.Join(d.skills, ", "),
	)
}

// Validate returns ErrEmployeeIsNotConstructed for a nil or zero value.
func (d *Developer) Validate() error {
	if d == nil {
		return ErrEmployeeIsNotConstructed
	}
	return d.validate()
}
