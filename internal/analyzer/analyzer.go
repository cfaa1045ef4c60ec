// Package analyzer composes the extractors, the constraint catalogue and
// the corpus checks into a single analysis pass, with an optional second
// pass that merges externally extracted entities before re-evaluating
// the temporal rules.
package analyzer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/docket/internal/cache"
	"github.com/ppiankov/docket/internal/constraint"
	"github.com/ppiankov/docket/internal/extract"
	"github.com/ppiankov/docket/internal/graph"
	"github.com/ppiankov/docket/internal/llm"
	"github.com/ppiankov/docket/internal/model"
)

// Analyzer runs the temporal and referential integrity analysis
type Analyzer struct {
	dates        *extract.DateExtractor
	refs         *extract.ReferenceExtractor
	sigs         *extract.SignatureExtractor
	checker      *constraint.Checker
	integrity    *graph.IntegrityChecker
	completeness *graph.CompletenessChecker
	renderer     *Renderer
	extractor    llm.Extractor // Optional, nil when disabled
	verbose      bool
}

// New creates an analyzer from configuration. When an LLM provider is
// configured, provider failures at construction time disable augmented
// analysis rather than failing the analyzer.
func New(cfg *model.Config) *Analyzer {
	var extractor llm.Extractor
	if cfg.LLM.Provider != "" {
		e, err := llm.NewExtractor(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize extractor provider: %v\n", err)
		} else if e != nil {
			extractor = e
			if cfg.Cache.Enabled && cfg.Cache.Dir != "" {
				store := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
				extractor = llm.NewCachedExtractor(extractor, store, cfg.Cache.DiskTTL)
			}
		}
	}

	return &Analyzer{
		dates:        extract.NewDateExtractor(cfg.Analysis.ContextRadius),
		refs:         extract.NewReferenceExtractor(),
		sigs:         extract.NewSignatureExtractor(cfg.Analysis.SignatureWindow),
		checker:      constraint.NewChecker(cfg.Analysis.NoticePeriodDays),
		integrity:    graph.NewIntegrityChecker(),
		completeness: graph.NewCompletenessChecker(),
		renderer:     NewRenderer(cfg.Output.IncludeFooter, cfg.Output.NoColor),
		extractor:    extractor,
		verbose:      cfg.Output.Verbose,
	}
}

// Analyze runs the heuristic analysis pass. It is synchronous, performs
// no I/O, and builds its own document graph, so independent documents
// can be analyzed concurrently without shared state.
func (a *Analyzer) Analyze(doc model.Document, known []model.Document) *model.AnalysisResult {
	return a.analyzeAt(doc, known, time.Now().UTC())
}

// analyzeAt is Analyze with a fixed evaluation instant. With identical
// inputs and instant, the output is identical apart from the result ID.
func (a *Analyzer) analyzeAt(doc model.Document, known []model.Document, now time.Time) *model.AnalysisResult {
	text := doc.Content

	dates := a.dates.Extract(text)
	refs := a.refs.Extract(text)
	sigs := a.sigs.Extract(text)

	g := graph.BuildGraph(known)

	var violations []model.Violation
	violations = append(violations, a.checker.CheckAt(dates, now)...)
	violations = append(violations, a.integrity.Check(text, g)...)
	violations = append(violations, a.completeness.Check(docType(doc), sigs)...)

	return &model.AnalysisResult{
		ID:            uuid.NewString(),
		DocumentID:    doc.ID,
		Dates:         dates,
		References:    refs,
		Signatures:    sigs,
		Violations:    violations,
		CriticalCount: model.CountCritical(violations),
		AnalyzedAt:    now,
		AIAugmented:   false,
	}
}

// AnalyzeAugmented runs the heuristic pass, then consults the external
// extractor and merges its entities before re-evaluating the temporal
// constraints. Extractor failure degrades to the baseline result: the
// AIAugmented flag still reports that the attempt occurred, so callers
// must not read it as proof that new information arrived.
func (a *Analyzer) AnalyzeAugmented(ctx context.Context, doc model.Document, known []model.Document) *model.AnalysisResult {
	now := time.Now().UTC()
	result := a.analyzeAt(doc, known, now)
	result.AIAugmented = true

	var extDates []model.ExtractedDate
	var extRefs []model.DocumentReference

	if a.extractor == nil {
		if a.verbose {
			fmt.Fprintln(os.Stderr, "No extractor provider configured; returning heuristic result")
		}
		return result
	}

	resp, err := a.extractor.Extract(ctx, llm.ExtractRequest{Text: doc.Content})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: external extraction failed: %v\n", err)
	} else if resp != nil {
		var dropped int
		extDates, dropped = llm.ConvertDates(resp.Dates)
		extRefs = llm.ConvertReferences(resp.References)
		if a.verbose && dropped > 0 {
			fmt.Fprintf(os.Stderr, "Dropped %d external date candidates with unresolvable dates\n", dropped)
		}
	}

	result.Dates = MergeDates(result.Dates, extDates)
	result.References = MergeReferences(result.References, extRefs)

	// Only the temporal rules see the merged dates. Reference-integrity
	// and completeness findings from the heuristic pass are carried over
	// as-is: external references are not fed back into the graph lookup.
	violations := a.checker.CheckAt(result.Dates, now)
	for _, v := range result.Violations {
		if !a.isTemporal(v.ConstraintID) {
			violations = append(violations, v)
		}
	}

	result.Violations = violations
	result.CriticalCount = model.CountCritical(violations)

	return result
}

// isTemporal reports whether a constraint ID belongs to the temporal
// catalogue
func (a *Analyzer) isTemporal(constraintID string) bool {
	for _, c := range a.checker.Constraints() {
		if c.ID == constraintID {
			return true
		}
	}
	return false
}

// docType returns the document's declared type, falling back to its title
func docType(doc model.Document) string {
	if doc.Type != "" {
		return doc.Type
	}
	return doc.Title
}
