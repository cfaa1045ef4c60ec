package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/docket/internal/analyzer"
	"github.com/ppiankov/docket/internal/corpus"
	"github.com/ppiankov/docket/internal/model"
)

var (
	outJSON     string
	outMD       string
	knownDir    string
	docType     string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	noColor     bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single document for temporal and referential consistency",
	Long: `Analyze extracts dates, document references, and signatures from a
legal document, classifies each by legal role, and evaluates the fixed
consistency catalogue:
- A sworn verification (jurat) must not be future-dated
- A jurat must precede the filing it belongs to
- A signature must precede the filing it belongs to
- Service of process must precede a hearing with adequate notice
- Cited documents must exist in the case file (--known-dir)
- A lease/contract/agreement must carry a signature

Example:
  docket analyze complaint.txt
  docket analyze complaint.txt --known-dir ./case-file --json report.json
  docket analyze lease.txt --doc-type "Lease Agreement" --llm --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored terminal output")

	// Analysis flags
	analyzeCmd.Flags().StringVar(&knownDir, "known-dir", "", "directory of known case documents for reference checks")
	analyzeCmd.Flags().StringVar(&docType, "doc-type", "", "declared document type (default: inferred from file name)")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout (only the LLM call can block)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extractor response cache")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM-augmented extraction")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	doc, err := corpus.LoadFile(file)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if docType != "" {
		doc.Type = docType
	}

	var known []model.Document
	if knownDir != "" {
		known, err = corpus.Load(knownDir)
		if err != nil {
			return fmt.Errorf("load known documents: %w", err)
		}
		// The document under analysis does not count as its own corpus entry
		known = excludeDocument(known, doc.ID)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", file)
		fmt.Fprintf(os.Stderr, "Known documents: %d\n", len(known))
		fmt.Fprintf(os.Stderr, "LLM augmentation: %v\n", llmEnabled)
		fmt.Fprintln(os.Stderr)
	}

	a := analyzer.New(cfg)

	var result *model.AnalysisResult
	if llmEnabled {
		result = a.AnalyzeAugmented(ctx, doc, known)
	} else {
		result = a.Analyze(doc, known)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracted %d dates, %d references, %d signatures\n",
			len(result.Dates), len(result.References), len(result.Signatures))
		fmt.Fprintf(os.Stderr, "Violations: %d (%d critical)\n", len(result.Violations), result.CriticalCount)
		fmt.Fprintln(os.Stderr)
	}

	if err := a.RenderReport(result, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles configuration from defaults, config file and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.Output.NoColor = noColor
	cfg.Cache.Enabled = !noCache

	if cfg.Cache.Dir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.Cache.Dir = filepath.Join(home, ".docket", "cache")
		} else {
			cfg.Cache.Enabled = false
		}
	}

	if !llmEnabled {
		return cfg, nil
	}

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}

// excludeDocument filters a document out of a known-document list by ID
func excludeDocument(docs []model.Document, id string) []model.Document {
	var filtered []model.Document
	for _, d := range docs {
		if d.ID != id {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
