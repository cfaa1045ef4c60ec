package graph

import (
	"fmt"
	"strings"

	"github.com/ppiankov/docket/internal/model"
)

// signedDocTypes are document types that are invalid without a signature
var signedDocTypes = []string{"lease", "contract", "agreement"}

// CompletenessChecker flags document-type-specific structural omissions.
// Single rule today: a lease, contract, or agreement with no extracted
// signature.
type CompletenessChecker struct{}

// NewCompletenessChecker creates a completeness checker
func NewCompletenessChecker() *CompletenessChecker {
	return &CompletenessChecker{}
}

// Check returns violations for structural omissions given the document's
// declared type and its extracted signatures
func (c *CompletenessChecker) Check(docType string, signatures []model.Signature) []model.Violation {
	if len(signatures) > 0 {
		return nil
	}

	lower := strings.ToLower(docType)
	for _, signed := range signedDocTypes {
		if strings.Contains(lower, signed) {
			return []model.Violation{{
				ConstraintID: "missing_signature",
				Severity:     model.SeverityHigh,
				Description:  fmt.Sprintf("document of type %q has no signature", docType),
			}}
		}
	}

	return nil
}
