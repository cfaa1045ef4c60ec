package analyzer

import (
	"sort"
	"strings"

	"github.com/ppiankov/docket/internal/model"
)

// MergeDates merges externally sourced dates into an existing list. An
// incoming date is skipped when any existing date shares both its
// calendar date and its classified type; everything else is appended and
// the merged list re-sorted ascending.
func MergeDates(existing, incoming []model.ExtractedDate) []model.ExtractedDate {
	merged := make([]model.ExtractedDate, len(existing))
	copy(merged, existing)

	for _, candidate := range incoming {
		duplicate := false
		for _, have := range existing {
			if have.Date.Equal(candidate.Date) && have.Type == candidate.Type {
				duplicate = true
				break
			}
		}
		if !duplicate {
			merged = append(merged, candidate)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.Before(merged[j].Date)
		}
		return merged[i].Start < merged[j].Start
	})

	return merged
}

// MergeReferences merges externally sourced references into an existing
// list, dropping an incoming reference when its text loosely contains,
// or is contained by, an existing reference's text. Containment rather
// than equality: the two extraction paths rarely produce identical spans
// for the same citation.
func MergeReferences(existing, incoming []model.DocumentReference) []model.DocumentReference {
	merged := make([]model.DocumentReference, len(existing))
	copy(merged, existing)

	for _, candidate := range incoming {
		candidateText := strings.ToLower(strings.TrimSpace(candidate.Text))
		if candidateText == "" {
			continue
		}

		duplicate := false
		for _, have := range existing {
			haveText := strings.ToLower(strings.TrimSpace(have.Text))
			if strings.Contains(haveText, candidateText) || strings.Contains(candidateText, haveText) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			merged = append(merged, candidate)
		}
	}

	return merged
}
