package employee

import (
	"fmt"
	"strings"

	"orgchart/internal/pkg/errs"
)

// Seniority is a developer's level. It scales the base salary.
type Seniority int

const (
	// SeniorityUnknown is the zero value and is never valid.
	SeniorityUnknown Seniority = iota
	Junior
	Middle
	Senior
)

func getSeniorityStrings() map[Seniority]string {
	return map[Seniority]string{
		Junior: "junior",
		Middle: "middle",
		Senior: "senior",
	}
}

func getSeniorityMultipliers() map[Seniority]float64 {
	return map[Seniority]float64{
		Junior: 1.0,
		Middle: 1.5,
		Senior: 2.0,
	}
}

// String returns "junior", "middle", "senior" or "unknown".
func (s Seniority) String() string {
	if str, ok := getSeniorityStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects SeniorityUnknown and out-of-range values.
func (s Seniority) Validate() error {
	if _, ok := getSeniorityStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("seniority", fmt.Errorf("%d is not a valid seniority", s))
	}
	return nil
}

// Multiplier returns the salary multiplier for the level, 1 for invalid levels.
func (s Seniority) Multiplier() float64 {
	if m, ok := getSeniorityMultipliers()[s]; ok {
		return m
	}
	return 1
}

// ParseSeniority parses "junior", "middle" or "senior" (case-insensitive).
func ParseSeniority(s string) (Seniority, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for level, name := range getSeniorityStrings() {
		if name == needle {
			return level, nil
		}
	}
	return SeniorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"seniority",
		fmt.Errorf("%q is not one of junior, middle, senior", s),
	)
}
