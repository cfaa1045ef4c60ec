package constraint

import (
	"testing"
	"time"

	"github.com/ppiankov/docket/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func typedDate(t model.DateType, when time.Time) model.ExtractedDate {
	return model.ExtractedDate{
		Date:   when,
		Text:   when.Format("1/2/2006"),
		Type:   t,
		Source: model.ProvenanceHeuristic,
	}
}

func TestJuratBeforeFiling(t *testing.T) {
	checker := NewChecker(7)
	now := date(2024, 6, 1)

	dates := []model.ExtractedDate{
		typedDate(model.DateTypeFiling, date(2024, 3, 1)),
		typedDate(model.DateTypeJurat, date(2024, 3, 10)),
	}

	violations := checker.CheckAt(dates, now)
	if len(violations) != 1 {
		t.Fatalf("expected exactly 1 violation, got %d: %+v", len(violations), violations)
	}
	if violations[0].ConstraintID != "jurat_before_filing" {
		t.Errorf("expected jurat_before_filing, got %s", violations[0].ConstraintID)
	}
	if violations[0].Severity != model.SeverityCritical {
		t.Errorf("expected critical severity, got %s", violations[0].Severity)
	}
}

func TestJuratBeforeFiling_SameDayOK(t *testing.T) {
	checker := NewChecker(7)
	now := date(2024, 6, 1)

	dates := []model.ExtractedDate{
		typedDate(model.DateTypeJurat, date(2024, 3, 1)),
		typedDate(model.DateTypeFiling, date(2024, 3, 1)),
	}

	if violations := checker.CheckAt(dates, now); len(violations) != 0 {
		t.Errorf("same-day jurat and filing should not violate, got %+v", violations)
	}
}

func TestFutureJurat(t *testing.T) {
	checker := NewChecker(7)
	now := date(2024, 3, 1)

	dates := []model.ExtractedDate{
		typedDate(model.DateTypeJurat, date(2024, 3, 15)),
	}

	violations := checker.CheckAt(dates, now)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if violations[0].ConstraintID != "future_jurat" {
		t.Errorf("expected future_jurat, got %s", violations[0].ConstraintID)
	}
	if violations[0].Severity != model.SeverityCritical {
		t.Errorf("expected critical severity, got %s", violations[0].Severity)
	}
}

func TestFutureJurat_TodayTolerated(t *testing.T) {
	checker := NewChecker(7)
	now := date(2024, 3, 1)

	// Dated today: inside the one-day grace window for timezone skew
	dates := []model.ExtractedDate{
		typedDate(model.DateTypeJurat, date(2024, 3, 1)),
	}

	if violations := checker.CheckAt(dates, now); len(violations) != 0 {
		t.Errorf("same-day jurat should not be flagged as future, got %+v", violations)
	}
}

func TestSignatureBeforeFiling(t *testing.T) {
	checker := NewChecker(7)
	now := date(2024, 6, 1)

	dates := []model.ExtractedDate{
		typedDate(model.DateTypeFiling, date(2024, 3, 1)),
		typedDate(model.DateTypeSignature, date(2024, 3, 5)),
	}

	violations := checker.CheckAt(dates, now)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d: %+v", len(violations), violations)
	}
	if violations[0].ConstraintID != "signature_before_filing" {
		t.Errorf("expected signature_before_filing, got %s", violations[0].ConstraintID)
	}
	if violations[0].Severity != model.SeverityHigh {
		t.Errorf("expected high severity, got %s", violations[0].Severity)
	}
}

func TestServiceBeforeHearing(t *testing.T) {
	tests := []struct {
		name         string
		service      time.Time
		hearing      time.Time
		wantCount    int
		wantSeverity model.Severity
	}{
		{
			name:      "adequate notice",
			service:   date(2024, 1, 1),
			hearing:   date(2024, 1, 9),
			wantCount: 0,
		},
		{
			name:      "exact notice period",
			service:   date(2024, 1, 1),
			hearing:   date(2024, 1, 8),
			wantCount: 0,
		},
		{
			name:         "insufficient notice",
			service:      date(2024, 1, 1),
			hearing:      date(2024, 1, 6),
			wantCount:    1,
			wantSeverity: model.SeverityHigh,
		},
		{
			name:         "same day",
			service:      date(2024, 1, 1),
			hearing:      date(2024, 1, 1),
			wantCount:    1,
			wantSeverity: model.SeverityHigh,
		},
		{
			name:         "hearing before service",
			service:      date(2024, 1, 10),
			hearing:      date(2024, 1, 5),
			wantCount:    1,
			wantSeverity: model.SeverityCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewChecker(7)
			now := date(2024, 6, 1)

			dates := []model.ExtractedDate{
				typedDate(model.DateTypeService, tt.service),
				typedDate(model.DateTypeHearing, tt.hearing),
			}

			violations := checker.CheckAt(dates, now)
			if len(violations) != tt.wantCount {
				t.Fatalf("expected %d violations, got %d: %+v", tt.wantCount, len(violations), violations)
			}
			if tt.wantCount > 0 {
				if violations[0].ConstraintID != "service_before_hearing" {
					t.Errorf("expected service_before_hearing, got %s", violations[0].ConstraintID)
				}
				if violations[0].Severity != tt.wantSeverity {
					t.Errorf("expected severity %s, got %s", tt.wantSeverity, violations[0].Severity)
				}
			}
		})
	}
}

func TestServiceBeforeHearing_AllPairsConsidered(t *testing.T) {
	checker := NewChecker(7)
	now := date(2024, 6, 1)

	// The benign pair (service 1/1, hearing 1/20) must not mask the
	// impossible pair (service 1/10, hearing 1/5)
	dates := []model.ExtractedDate{
		typedDate(model.DateTypeService, date(2024, 1, 1)),
		typedDate(model.DateTypeHearing, date(2024, 1, 5)),
		typedDate(model.DateTypeService, date(2024, 1, 10)),
		typedDate(model.DateTypeHearing, date(2024, 1, 20)),
	}

	violations := checker.CheckAt(dates, now)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d: %+v", len(violations), violations)
	}
	if violations[0].Severity != model.SeverityCritical {
		t.Errorf("expected the impossible pair to dominate, got %s", violations[0].Severity)
	}
}

func TestChecker_MultipleConstraints(t *testing.T) {
	checker := NewChecker(7)
	now := date(2024, 6, 1)

	dates := []model.ExtractedDate{
		typedDate(model.DateTypeFiling, date(2024, 3, 1)),
		typedDate(model.DateTypeJurat, date(2024, 3, 10)),
		typedDate(model.DateTypeSignature, date(2024, 3, 5)),
	}

	violations := checker.CheckAt(dates, now)
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %+v", len(violations), violations)
	}

	ids := map[string]bool{}
	for _, v := range violations {
		ids[v.ConstraintID] = true
	}
	if !ids["jurat_before_filing"] || !ids["signature_before_filing"] {
		t.Errorf("expected jurat_before_filing and signature_before_filing, got %+v", ids)
	}
}

func TestChecker_EmptyDates(t *testing.T) {
	checker := NewChecker(7)

	if violations := checker.CheckAt(nil, date(2024, 6, 1)); len(violations) != 0 {
		t.Errorf("expected no violations for empty input, got %+v", violations)
	}
}

func TestChecker_Catalogue(t *testing.T) {
	checker := NewChecker(7)

	constraints := checker.Constraints()
	if len(constraints) != 4 {
		t.Fatalf("expected 4 registered constraints, got %d", len(constraints))
	}
	for _, c := range constraints {
		if c.ID == "" || c.Description == "" || c.Check == nil {
			t.Errorf("constraint %q incompletely registered", c.ID)
		}
	}
}
