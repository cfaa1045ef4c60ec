package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(0), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityLow < SeverityMedium && SeverityMedium < SeverityHigh && SeverityHigh < SeverityCritical) {
		t.Error("severity constants must be strictly increasing")
	}
}

func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(SeverityCritical)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"critical"` {
		t.Errorf("expected \"critical\", got %s", data)
	}

	var s Severity
	if err := json.Unmarshal([]byte(`"high"`), &s); err != nil {
		t.Fatalf("unmarshal name: %v", err)
	}
	if s != SeverityHigh {
		t.Errorf("expected high, got %s", s)
	}

	if err := json.Unmarshal([]byte(`2`), &s); err != nil {
		t.Fatalf("unmarshal numeric: %v", err)
	}
	if s != SeverityMedium {
		t.Errorf("expected medium from numeric 2, got %s", s)
	}

	if err := json.Unmarshal([]byte(`"catastrophic"`), &s); err == nil {
		t.Error("expected error for unknown severity name")
	}
}

func TestParseDateType(t *testing.T) {
	tests := []struct {
		input string
		want  DateType
	}{
		{"filing", DateTypeFiling},
		{"Filing", DateTypeFiling},
		{" hearing ", DateTypeHearing},
		{"notarization", DateTypeJurat},
		{"sworn statement", DateTypeJurat},
		{"date filed", DateTypeFiling},
		{"trial date", DateTypeHearing},
		{"served on defendant", DateTypeService},
		{"execution date", DateTypeSignature},
		{"response due", DateTypeDeadline},
		{"accident date", DateTypeIncident},
		{"", DateTypeReference},
		{"something else entirely", DateTypeReference},
	}
	for _, tt := range tests {
		if got := ParseDateType(tt.input); got != tt.want {
			t.Errorf("ParseDateType(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestCountCritical(t *testing.T) {
	violations := []Violation{
		{ConstraintID: "a", Severity: SeverityCritical},
		{ConstraintID: "b", Severity: SeverityHigh},
		{ConstraintID: "c", Severity: SeverityCritical},
		{ConstraintID: "d", Severity: SeverityMedium},
	}
	if got := CountCritical(violations); got != 2 {
		t.Errorf("CountCritical = %d, want 2", got)
	}
	if got := CountCritical(nil); got != 0 {
		t.Errorf("CountCritical(nil) = %d, want 0", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analysis.NoticePeriodDays != 7 {
		t.Errorf("expected default notice period 7, got %d", cfg.Analysis.NoticePeriodDays)
	}
	if cfg.Analysis.ContextRadius <= 0 {
		t.Errorf("expected positive context radius, got %d", cfg.Analysis.ContextRadius)
	}
	if cfg.Analysis.SignatureWindow <= 0 {
		t.Errorf("expected positive signature window, got %d", cfg.Analysis.SignatureWindow)
	}
}

func TestExtractedDateJSON(t *testing.T) {
	date := ExtractedDate{
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Text:   "3/1/2024",
		Type:   DateTypeFiling,
		Source: ProvenanceHeuristic,
	}

	data, err := json.Marshal(date)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back ExtractedDate
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Type != DateTypeFiling || !back.Date.Equal(date.Date) {
		t.Errorf("round-trip mismatch: %+v", back)
	}
}
