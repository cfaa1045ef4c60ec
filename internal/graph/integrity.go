package graph

import (
	"fmt"

	"github.com/ppiankov/docket/internal/extract"
	"github.com/ppiankov/docket/internal/model"
)

// IntegrityChecker flags references in a document that resolve to no
// known document in the case corpus.
type IntegrityChecker struct {
	refs *extract.ReferenceExtractor
}

// NewIntegrityChecker creates an integrity checker
func NewIntegrityChecker() *IntegrityChecker {
	return &IntegrityChecker{
		refs: extract.NewReferenceExtractor(),
	}
}

// Check extracts references from the document content and queries the
// graph for each one that carries a year or a non-generic document type.
// A bare "Exhibit A" with no year is never flagged: the label is too weak
// a signal to assert the document's absence.
func (c *IntegrityChecker) Check(content string, g *DocumentGraph) []model.Violation {
	var violations []model.Violation

	for _, ref := range c.refs.Extract(content) {
		if ref.Year == 0 && (ref.DocType == "" || extract.IsGenericDocType(ref.DocType)) {
			continue
		}

		criteria := Criteria{Year: ref.Year}
		if !extract.IsGenericDocType(ref.DocType) {
			criteria.DocType = ref.DocType
		}

		if g.Find(criteria) == nil {
			violations = append(violations, model.Violation{
				ConstraintID: "reference_not_found",
				Severity:     model.SeverityMedium,
				Description:  fmt.Sprintf("referenced document %q not found in case file", ref.Text),
			})
		}
	}

	return violations
}
