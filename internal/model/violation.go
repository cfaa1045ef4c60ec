package model

import (
	"encoding/json"
	"fmt"
)

// Severity represents the gravity of a violation on an ordered scale.
// Numeric ordering makes downstream sorting and filtering well-defined;
// lexical comparison of the names would not be.
type Severity int

const (
	SeverityLow      Severity = 1
	SeverityMedium   Severity = 2
	SeverityHigh     Severity = 3
	SeverityCritical Severity = 4
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	default:
		return "unknown"
	}
}

// MarshalJSON emits the severity as its lowercase name
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts either the name or the numeric value
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch name {
		case "critical":
			*s = SeverityCritical
		case "high":
			*s = SeverityHigh
		case "medium":
			*s = SeverityMedium
		case "low":
			*s = SeverityLow
		default:
			return fmt.Errorf("unknown severity: %q", name)
		}
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = Severity(n)
	return nil
}

// Violation records a single consistency rule firing. Dates carries the
// zero, one, or two extracted dates implicated by the rule.
type Violation struct {
	ConstraintID string          `json:"constraint_id"`
	Severity     Severity        `json:"severity"`
	Description  string          `json:"description"`
	Dates        []ExtractedDate `json:"dates,omitempty"`
}
