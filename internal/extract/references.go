package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/docket/internal/model"
)

// Reference-shaped patterns
var (
	// titledDocRe matches "<year> <Title Case phrase> <doc type>",
	// e.g. "2019 Service Agreement", "2021 Commercial Lease"
	titledDocRe = regexp.MustCompile(`\b((?:19|20)\d{2})\s+((?:[A-Z][A-Za-z'&-]*\s+){0,4}(?:Agreement|Contract|Notice|Order|Lease))\b`)

	// datedDocRe matches "<doc type> ... dated ... <year>",
	// e.g. "the lease agreement dated June 2020"
	datedDocRe = regexp.MustCompile(`(?i)\b(agreement|contract|notice|order|lease|affidavit|motion)\b[^.\n]{0,80}?\bdated\b[^.\n]{0,40}?\b(?:19|20)\d{2}\b`)

	// exhibitRe matches "Exhibit A", "Attachment 3", "Appendix B-1"
	exhibitRe = regexp.MustCompile(`\b(Exhibit|Attachment|Appendix)\s+([A-Z0-9]+(?:-[A-Z0-9]+)?)\b`)

	// yearRe is the secondary 4-digit-year scan over matched spans
	yearRe = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
)

// docTypeVocabulary is the fixed membership test for inferring a document
// type from a matched span. Generic container labels carry too weak a
// signal to assert a document's absence from a corpus.
var docTypeVocabulary = map[string]bool{
	"agreement": true, "contract": true, "notice": true, "order": true,
	"lease": true, "affidavit": true, "motion": true,
	"exhibit": true, "attachment": true, "appendix": true,
}

// genericDocTypes are labels that name a container, not a document kind
var genericDocTypes = map[string]bool{
	"exhibit": true, "attachment": true, "appendix": true,
}

// ReferenceExtractor finds textual references to other documents and
// exhibits. Output order follows match order; duplicates are allowed at
// extraction time and only collapsed when merging extraction sources.
type ReferenceExtractor struct{}

// NewReferenceExtractor creates a reference extractor
func NewReferenceExtractor() *ReferenceExtractor {
	return &ReferenceExtractor{}
}

// Extract returns all document references found in the text
func (e *ReferenceExtractor) Extract(text string) []model.DocumentReference {
	var refs []model.DocumentReference

	for _, pattern := range []*regexp.Regexp{titledDocRe, datedDocRe, exhibitRe} {
		for _, match := range pattern.FindAllStringIndex(text, -1) {
			span := text[match[0]:match[1]]
			refs = append(refs, model.DocumentReference{
				Text:    strings.TrimSpace(span),
				Year:    scanYear(span),
				DocType: scanDocType(span),
				Start:   match[0],
				End:     match[1],
				Source:  model.ProvenanceHeuristic,
			})
		}
	}

	return refs
}

// scanYear finds the first 4-digit year within a matched span
func scanYear(span string) int {
	match := yearRe.FindString(span)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// scanDocType finds the first vocabulary word within a matched span
func scanDocType(span string) string {
	for _, field := range strings.Fields(strings.ToLower(span)) {
		word := strings.Trim(field, ".,;:()")
		if docTypeVocabulary[word] {
			return word
		}
	}
	return ""
}

// IsGenericDocType reports whether a doc-type label names a container
// (exhibit, attachment, appendix) rather than a document kind
func IsGenericDocType(docType string) bool {
	return genericDocTypes[strings.ToLower(docType)]
}
