package model

import "time"

// Document is a single case document: the one under analysis, or an
// entry in the known-document corpus supplied by the caller.
type Document struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type,omitempty"` // Declared kind, e.g. "Lease Agreement"
	Content string `json:"content"`
}

// AnalysisResult is the engine's sole output. It is constructed fresh on
// every analysis call and never mutated afterward; callers persist or
// discard it at their discretion.
type AnalysisResult struct {
	ID         string `json:"id"`          // Unique per analysis run
	DocumentID string `json:"document_id"` // Source document

	Dates      []ExtractedDate     `json:"dates"` // Sorted ascending by date
	References []DocumentReference `json:"references"`
	Signatures []Signature         `json:"signatures"`
	Violations []Violation         `json:"violations"`

	CriticalCount int       `json:"critical_count"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
	AIAugmented   bool      `json:"ai_augmented"` // External extraction was attempted
}

// CountCritical counts critical-severity violations
func CountCritical(violations []Violation) int {
	count := 0
	for _, v := range violations {
		if v.Severity == SeverityCritical {
			count++
		}
	}
	return count
}
