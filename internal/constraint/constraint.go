// Package constraint evaluates a fixed catalogue of temporal consistency
// rules over classified date lists. Constraints are stateless, pure
// predicates; each returns at most one violation, citing the first
// offending pair found in temporal document order.
package constraint

import (
	"time"

	"github.com/ppiankov/docket/internal/model"
)

// Constraint is a named, described predicate over the full ordered date
// list. Check returns nil when the rule does not fire.
type Constraint struct {
	ID          string
	Description string
	Check       func(dates []model.ExtractedDate, now time.Time) *model.Violation
}

// Checker evaluates every registered constraint against the same input
// and concatenates non-nil results in registration order.
type Checker struct {
	constraints []Constraint
}

// NewChecker creates a checker with the standard catalogue registered
func NewChecker(noticePeriodDays int) *Checker {
	if noticePeriodDays <= 0 {
		noticePeriodDays = 7
	}
	return &Checker{
		constraints: []Constraint{
			futureJurat(),
			juratBeforeFiling(),
			signatureBeforeFiling(),
			serviceBeforeHearing(noticePeriodDays),
		},
	}
}

// Check evaluates the catalogue against the wall clock
func (c *Checker) Check(dates []model.ExtractedDate) []model.Violation {
	return c.CheckAt(dates, time.Now().UTC())
}

// CheckAt evaluates the catalogue at a fixed evaluation instant. Repeated
// calls with the same inputs yield identical results.
func (c *Checker) CheckAt(dates []model.ExtractedDate, now time.Time) []model.Violation {
	var violations []model.Violation
	for _, constraint := range c.constraints {
		if v := constraint.Check(dates, now); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

// Constraints returns the registered catalogue, in evaluation order
func (c *Checker) Constraints() []Constraint {
	return c.constraints
}

// datesOfType filters a date list by classification, preserving order
func datesOfType(dates []model.ExtractedDate, t model.DateType) []model.ExtractedDate {
	var filtered []model.ExtractedDate
	for _, d := range dates {
		if d.Type == t {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
