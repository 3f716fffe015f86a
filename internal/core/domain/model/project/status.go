package project

import (
	"fmt"
	"strings"

	"orgchart/internal/pkg/errs"
)

// Status is the lifecycle state of a project.
//
// Any valid status may be changed to any other valid status; the project does
// not enforce a transition graph.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Planning is the state of a project that has not started yet.
	Planning

	// Active is the state of a project the team is working on.
	Active

	// Completed is the state of a finished project.
	Completed

	// Cancelled is the state of an abandoned project.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Planning:  "planning",
		Active:    "active",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planning:  "planning",
		Active:    "active",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// AllowedStatuses lists the valid status strings in lifecycle order.
func AllowedStatuses() []string {
	return []string{"planning", "active", "completed", "cancelled"}
}

// Validate returns a StatusIsInvalidError for Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewStatusIsInvalidErrorWithCause(
			s.String(),
			fmt.Errorf("%d is not a valid status", s),
			AllowedStatuses()...,
		)
	}
	return nil
}

// String returns the lowercase status name used in storage and the API.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ParseStatus parses a case-insensitive status name.
//
// Example:
//
//	s, err := ParseStatus("active")    // Active, nil
//	_, err = ParseStatus("invalid")    // StatusIsInvalidError
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewStatusIsInvalidError(s, AllowedStatuses()...)
}
