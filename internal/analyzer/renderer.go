package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/ppiankov/docket/internal/model"
)

// Renderer writes analysis results as JSON and Markdown reports and as a
// colored terminal summary
type Renderer struct {
	includeFooter bool
	noColor       bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter, noColor bool) *Renderer {
	return &Renderer{
		includeFooter: includeFooter,
		noColor:       noColor,
	}
}

// RenderReport renders the result to the configured outputs
func (a *Analyzer) RenderReport(result *model.AnalysisResult, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := a.renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := a.renderer.RenderMarkdown(result, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", mdPath)
		}
	}

	a.renderer.RenderSummary(result)
	return nil
}

// RenderJSON writes the result as indented JSON
func (r *Renderer) RenderJSON(result *model.AnalysisResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderMarkdown writes the result as a Markdown report
func (r *Renderer) RenderMarkdown(result *model.AnalysisResult, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Integrity Report: %s\n\n", result.DocumentID)
	fmt.Fprintf(&b, "- Analyzed: %s\n", result.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- Dates found: %d\n", len(result.Dates))
	fmt.Fprintf(&b, "- References found: %d\n", len(result.References))
	fmt.Fprintf(&b, "- Signatures found: %d\n", len(result.Signatures))
	fmt.Fprintf(&b, "- AI-augmented: %v\n\n", result.AIAugmented)

	if len(result.Violations) == 0 {
		b.WriteString("## Violations\n\nNone detected.\n")
	} else {
		fmt.Fprintf(&b, "## Violations (%d, %d critical)\n\n", len(result.Violations), result.CriticalCount)
		b.WriteString("| Severity | Rule | Description |\n")
		b.WriteString("|---|---|---|\n")
		for _, v := range sortedBySeverity(result.Violations) {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", v.Severity, v.ConstraintID, v.Description)
		}
	}

	if len(result.Dates) > 0 {
		b.WriteString("\n## Date Timeline\n\n")
		b.WriteString("| Date | Type | Source | Text |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, d := range result.Dates {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				d.Date.Format("2006-01-02"), d.Type, d.Source, d.Text)
		}
	}

	if r.includeFooter {
		b.WriteString("\n---\nGenerated by docket. Rule-based diagnostics; not legal advice.\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// RenderSummary prints a severity-colored summary to stdout
func (r *Renderer) RenderSummary(result *model.AnalysisResult) {
	if r.noColor {
		color.NoColor = true
	}

	fmt.Printf("\nDocument: %s\n", result.DocumentID)
	fmt.Printf("Dates: %d  References: %d  Signatures: %d\n",
		len(result.Dates), len(result.References), len(result.Signatures))

	if len(result.Violations) == 0 {
		color.Green("No violations detected")
		fmt.Println()
		return
	}

	fmt.Printf("Violations: %d (%d critical)\n\n", len(result.Violations), result.CriticalCount)
	for _, v := range sortedBySeverity(result.Violations) {
		r.severityPrinter(v.Severity).Printf("  [%s] ", strings.ToUpper(v.Severity.String()))
		fmt.Printf("%s: %s\n", v.ConstraintID, v.Description)
	}
	fmt.Println()
}

func (r *Renderer) severityPrinter(s model.Severity) *color.Color {
	switch s {
	case model.SeverityCritical:
		return color.New(color.FgRed, color.Bold)
	case model.SeverityHigh:
		return color.New(color.FgRed)
	case model.SeverityMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

// sortedBySeverity orders violations worst first, preserving relative
// order within a severity
func sortedBySeverity(violations []model.Violation) []model.Violation {
	sorted := make([]model.Violation, len(violations))
	copy(sorted, violations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity > sorted[j].Severity
	})
	return sorted
}
