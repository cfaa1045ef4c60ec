// Package llm is the boundary to external entity extractors. Providers
// return loosely structured payloads; conversion to engine types lives
// here, with explicit fallbacks for unrecognized type strings and silent
// drops for unparsable dates.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ppiankov/docket/internal/model"
)

// Extractor defines the interface for external entity extractors
type Extractor interface {
	// Name returns the provider name
	Name() string

	// Extract requests supplementary date/reference extraction for text
	Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// ExtractRequest contains the input for external extraction
type ExtractRequest struct {
	// Text is the raw document text to extract from
	Text string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ExtractResponse contains the provider's raw extraction payload
type ExtractResponse struct {
	Dates      []DatePayload      `json:"dates"`
	References []ReferencePayload `json:"references"`

	// Model is the model that generated the response
	Model string `json:"-"`

	// TokensUsed tracks token consumption
	TokensUsed int `json:"-"`
}

// DatePayload is one date as the provider reported it. All fields are
// free-form strings; nothing here is trusted until conversion.
type DatePayload struct {
	Date    string `json:"date"` // Normalized date, ideally YYYY-MM-DD
	Text    string `json:"text,omitempty"`
	Context string `json:"context,omitempty"`
	Type    string `json:"type,omitempty"`
}

// ReferencePayload is one document reference as the provider reported it
type ReferencePayload struct {
	Text    string  `json:"text"`
	Year    FlexInt `json:"year,omitempty"`
	DocType string  `json:"document_type,omitempty"`
}

// FlexInt tolerates providers emitting numbers as JSON strings
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil // Unparsable year degrades to unknown, not an error
	}
	*f = FlexInt(n)
	return nil
}

// payloadDateLayouts are the accepted normalized-date shapes, most
// specific first
var payloadDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"January 2, 2006",
}

// ConvertDates converts date payloads to engine values, dropping entries
// whose normalized date does not resolve. It returns the converted dates
// and the count of dropped candidates for diagnostics.
func ConvertDates(payloads []DatePayload) ([]model.ExtractedDate, int) {
	var dates []model.ExtractedDate
	dropped := 0

	for _, p := range payloads {
		resolved, ok := parsePayloadDate(p.Date)
		if !ok {
			dropped++
			continue
		}
		dates = append(dates, model.ExtractedDate{
			Date:    resolved,
			Text:    p.Text,
			Context: p.Context,
			Type:    model.ParseDateType(p.Type),
			Source:  model.ProvenanceExternal,
		})
	}

	return dates, dropped
}

// ConvertReferences converts reference payloads to engine values,
// dropping entries with no text
func ConvertReferences(payloads []ReferencePayload) []model.DocumentReference {
	var refs []model.DocumentReference
	for _, p := range payloads {
		text := strings.TrimSpace(p.Text)
		if text == "" {
			continue
		}
		refs = append(refs, model.DocumentReference{
			Text:    text,
			Year:    int(p.Year),
			DocType: strings.ToLower(strings.TrimSpace(p.DocType)),
			Source:  model.ProvenanceExternal,
		})
	}
	return refs
}

func parsePayloadDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range payloadDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// Config holds extractor provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 2000,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:   modelConfig.Provider,
		Model:      modelConfig.Model,
		APIKey:     modelConfig.APIKey,
		BaseURL:    modelConfig.BaseURL,
		Timeout:    modelConfig.Timeout,
		MaxTokens:  modelConfig.MaxTokens,
		HTTPProxy:  modelConfig.HTTPProxy,
		HTTPSProxy: modelConfig.HTTPSProxy,
		NoProxy:    modelConfig.NoProxy,
	}
}

// extractionSystemPrompt pins the model to JSON-only output
const extractionSystemPrompt = "You are a legal document analysis assistant. You respond only with a single JSON object, no prose and no code fences."

// BuildPrompt constructs the default extraction prompt
func BuildPrompt(text string) string {
	return fmt.Sprintf(`Extract every calendar date and every reference to another document from the legal text below.

Respond with exactly this JSON shape:
{
  "dates": [{"date": "YYYY-MM-DD", "text": "<matched text>", "context": "<surrounding words>", "type": "<one of: filing, hearing, service, signature, jurat, incident, deadline, reference>"}],
  "references": [{"text": "<reference text>", "year": <4-digit year or omit>, "document_type": "<e.g. agreement, lease, exhibit, or omit>"}]
}

Rules:
- "date" must be the resolved calendar date in YYYY-MM-DD form.
- Classify a date as "jurat" when it belongs to a notarization or sworn verification.
- Omit dates you cannot resolve to a concrete day.
- Do not invent entities that are not present in the text.

Legal text:
---
%s
---`, text)
}

// ParseExtraction parses a provider's raw completion into a response,
// tolerating markdown code fences around the JSON object
func ParseExtraction(completion string) (*ExtractResponse, error) {
	cleaned := strings.TrimSpace(completion)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	// Some models wrap the object in prose despite instructions; take the
	// outermost braces
	if start := strings.Index(cleaned, "{"); start > 0 {
		if end := strings.LastIndex(cleaned, "}"); end > start {
			cleaned = cleaned[start : end+1]
		}
	}

	var resp ExtractResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, fmt.Errorf("parse extraction payload: %w", err)
	}
	return &resp, nil
}
