package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/docket/internal/analyzer"
	"github.com/ppiankov/docket/internal/corpus"
	"github.com/ppiankov/docket/internal/model"
	"github.com/ppiankov/docket/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// llm flags are defined in analyze.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze every document in a case directory in parallel",
	Long: `Batch analyzes an entire case file concurrently:
- Load every .txt/.md/.html document in the directory
- Analyze each document against the rest as its known-document corpus
- Process documents in parallel with a configurable worker count
- Write an individual report per document

Example:
  docket batch ./case-file
  docket batch ./case-file --concurrency 8 --output-dir ./reports
  docket batch ./case-file --llm --llm-provider anthropic`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./docket-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extractor response cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored terminal output")

	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM-augmented extraction")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// batchRunner adapts the analyzer to the worker.Runner interface, rate
// limiting augmented runs per provider
type batchRunner struct {
	analyzer  *analyzer.Analyzer
	limiter   *worker.Limiter
	provider  string
	augmented bool
}

func (r *batchRunner) AnalyzeDocument(ctx context.Context, doc model.Document, known []model.Document) (*model.AnalysisResult, error) {
	if !r.augmented {
		return r.analyzer.Analyze(doc, known), nil
	}
	if err := r.limiter.Wait(ctx, r.provider); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return r.analyzer.AnalyzeAugmented(ctx, doc, known), nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	docs, err := corpus.Load(dir)
	if err != nil {
		return fmt.Errorf("load case directory: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no documents found in %s", dir)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Analyzing %d documents with %d workers\n", len(docs), concurrency)

	a := analyzer.New(cfg)
	runner := &batchRunner{
		analyzer:  a,
		limiter:   worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst),
		provider:  cfg.LLM.Provider,
		augmented: llmEnabled,
	}

	processor := worker.NewBatchProcessor(runner, concurrency)
	results := processor.ProcessDocuments(ctx, docs, docs)

	succeeded, failed := 0, 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.DocumentID, res.Error)
			continue
		}
		succeeded++

		jsonPath := filepath.Join(outputDir, reportName(res.DocumentID)+".json")
		mdPath := filepath.Join(outputDir, reportName(res.DocumentID)+".md")
		if err := a.RenderReport(res.Result, jsonPath, mdPath, verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write report for %s: %v\n", res.DocumentID, err)
		}
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d succeeded, %d failed\n", succeeded, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}

// reportName derives a report file stem from a document ID
func reportName(documentID string) string {
	stem := strings.TrimSuffix(documentID, filepath.Ext(documentID))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, stem)
}
