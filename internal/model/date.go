package model

import (
	"strings"
	"time"
)

// DateType classifies the legal role of an extracted date
type DateType string

const (
	DateTypeFiling    DateType = "filing"    // Received/stamped by a court or clerk
	DateTypeHearing   DateType = "hearing"   // Scheduled hearing or appearance
	DateTypeService   DateType = "service"   // Service of process
	DateTypeSignature DateType = "signature" // Execution/signing date
	DateTypeJurat     DateType = "jurat"     // Sworn before an authorized official
	DateTypeIncident  DateType = "incident"  // Date of the underlying incident
	DateTypeDeadline  DateType = "deadline"  // Response or compliance deadline
	DateTypeReference DateType = "reference" // Any other date mention
)

// Provenance records which extraction path produced an entity
type Provenance string

const (
	ProvenanceHeuristic Provenance = "heuristic" // Pattern/keyword extraction
	ProvenanceExternal  Provenance = "external"  // LLM-supplied extraction
)

// ExtractedDate represents a resolved calendar date found in document text.
// The Date field is always a concrete date; candidates that fail to parse
// are dropped at extraction time and never stored.
type ExtractedDate struct {
	Date    time.Time  `json:"date"`              // Resolved, timezone-naive
	Text    string     `json:"text"`              // Raw matched text
	Context string     `json:"context,omitempty"` // Surrounding snippet
	Type    DateType   `json:"type"`
	Start   int        `json:"start"` // Byte offset into source text
	End     int        `json:"end"`
	Source  Provenance `json:"source"`
}

// ParseDateType maps a free-form type string to a DateType. External
// extractors return loose, uncontrolled strings; anything unrecognized
// falls back to DateTypeReference rather than being rejected.
func ParseDateType(s string) DateType {
	switch DateType(strings.ToLower(strings.TrimSpace(s))) {
	case DateTypeFiling, DateTypeHearing, DateTypeService, DateTypeSignature,
		DateTypeJurat, DateTypeIncident, DateTypeDeadline, DateTypeReference:
		return DateType(strings.ToLower(strings.TrimSpace(s)))
	}

	// Tolerate common near-miss labels from LLM payloads
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "notar") || strings.Contains(lower, "sworn"):
		return DateTypeJurat
	case strings.Contains(lower, "fil"):
		return DateTypeFiling
	case strings.Contains(lower, "hear") || strings.Contains(lower, "trial"):
		return DateTypeHearing
	case strings.Contains(lower, "serv"):
		return DateTypeService
	case strings.Contains(lower, "sign") || strings.Contains(lower, "execut"):
		return DateTypeSignature
	case strings.Contains(lower, "deadline") || strings.Contains(lower, "due"):
		return DateTypeDeadline
	case strings.Contains(lower, "incident") || strings.Contains(lower, "accident"):
		return DateTypeIncident
	}

	return DateTypeReference
}
