package worker

import (
	"context"

	"github.com/ppiankov/docket/internal/model"
)

// Runner defines the interface for analyzing a single document
type Runner interface {
	AnalyzeDocument(ctx context.Context, doc model.Document, known []model.Document) (*model.AnalysisResult, error)
}

// AnalyzeJob represents one document analysis job
type AnalyzeJob struct {
	Doc    model.Document
	Known  []model.Document
	Runner Runner
}

// Execute executes the analysis job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	result, err := j.Runner.AnalyzeDocument(ctx, j.Doc, j.Known)
	if err != nil {
		return &AnalyzeResult{
			DocumentID: j.Doc.ID,
			Result:     nil,
			Error:      err,
		}
	}
	return &AnalyzeResult{
		DocumentID: j.Doc.ID,
		Result:     result,
		Error:      nil,
	}
}

// AnalyzeResult represents the result of an analysis job
type AnalyzeResult struct {
	DocumentID string
	Result     *model.AnalysisResult
	Error      error
}

// GetError returns the error from the analysis result
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple documents concurrently. Each document
// in the batch is checked against the same known-document corpus, which
// typically includes the batch itself.
type BatchProcessor struct {
	runner      Runner
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(runner Runner, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
	}
}

// ProcessDocuments analyzes the documents concurrently
func (b *BatchProcessor) ProcessDocuments(ctx context.Context, docs, known []model.Document) []*AnalyzeResult {
	if len(docs) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, doc := range docs {
		pool.Submit(&AnalyzeJob{
			Doc:    doc,
			Known:  known,
			Runner: b.runner,
		})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}
