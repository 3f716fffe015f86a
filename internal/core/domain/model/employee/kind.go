package employee

import (
	"strings"

	"orgchart/internal/pkg/errs"
)

// Kind identifies the employee variant.
type Kind int

const (
	// KindUnknown is the zero value and is never valid.
	KindUnknown Kind = iota

	// KindPlain is a regular employee paid the base salary.
	KindPlain

	// KindManager is paid base salary plus a fixed bonus.
	KindManager

	// KindDeveloper is paid base salary scaled by seniority.
	KindDeveloper

	// KindSalesperson is paid base salary plus commission on sales volume.
	KindSalesperson
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:     "Unknown",
		KindPlain:       "Employee",
		KindManager:     "Manager",
		KindDeveloper:   "Developer",
		KindSalesperson: "Salesperson",
	}
}

// String returns the variant name used in statistics and Info output.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects KindUnknown and out-of-range values.
func (k Kind) Validate() error {
	if k < KindPlain || k > KindSalesperson {
		return errs.NewValueIsInvalidError("kind")
	}
	return nil
}

// ParseKind parses a case-insensitive variant name. "plain" and "employee"
// both select KindPlain.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "employee", "plain":
		return KindPlain, nil
	case "manager":
		return KindManager, nil
	case "developer":
		return KindDeveloper, nil
	case "salesperson":
		return KindSalesperson, nil
	default:
		return KindUnknown, errs.NewValueIsInvalidError("kind " + s)
	}
}
