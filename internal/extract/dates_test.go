package extract

import (
	"testing"
	"time"

	"github.com/ppiankov/docket/internal/model"
)

func TestDateExtractor_BasicFormats(t *testing.T) {
	extractor := NewDateExtractor(60)

	text := `The complaint was filed on 3/1/2024 with the clerk.
The hearing is set for March 15, 2024 in Department 12.
Response deadline recorded as 2024-04-01 in the docket.`

	dates := extractor.Extract(text)

	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}

	want := []time.Time{
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, w := range want {
		if !dates[i].Date.Equal(w) {
			t.Errorf("date %d: expected %v, got %v", i, w, dates[i].Date)
		}
	}
}

func TestDateExtractor_DiscardsUnresolvable(t *testing.T) {
	extractor := NewDateExtractor(60)

	// 13/45/2024 is date-shaped but resolves to no real day
	text := "Filed 13/45/2024 and again on 2/30/2024, heard on 3/1/2024."

	dates := extractor.Extract(text)

	if len(dates) != 1 {
		t.Fatalf("expected 1 resolvable date, got %d", len(dates))
	}
	if dates[0].Text != "3/1/2024" {
		t.Errorf("expected surviving date 3/1/2024, got %q", dates[0].Text)
	}
}

func TestDateExtractor_SortedAscending(t *testing.T) {
	extractor := NewDateExtractor(60)

	text := "Hearing December 1, 2024. Filed January 5, 2024. Served June 10, 2024."

	dates := extractor.Extract(text)

	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if dates[i].Date.Before(dates[i-1].Date) {
			t.Errorf("dates not sorted ascending at index %d: %v before %v",
				i, dates[i].Date, dates[i-1].Date)
		}
	}
}

func TestDateExtractor_Classification(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.DateType
	}{
		{"filing", "This complaint was filed with the court on 3/1/2024.", model.DateTypeFiling},
		{"hearing", "A hearing is scheduled for 3/1/2024 before Judge Roy.", model.DateTypeHearing},
		{"service", "Defendant was served with process on 3/1/2024.", model.DateTypeService},
		{"signature", "This agreement was signed and executed on 3/1/2024.", model.DateTypeSignature},
		{"jurat", "Sworn and subscribed before me this 3/1/2024.", model.DateTypeJurat},
		{"fallback", "The weather on 3/1/2024 was unremarkable.", model.DateTypeReference},
	}

	extractor := NewDateExtractor(60)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := extractor.Extract(tt.text)
			if len(dates) != 1 {
				t.Fatalf("expected 1 date, got %d", len(dates))
			}
			if dates[0].Type != tt.want {
				t.Errorf("expected type %s, got %s", tt.want, dates[0].Type)
			}
		})
	}
}

func TestDateExtractor_JuratOutranksFiling(t *testing.T) {
	extractor := NewDateExtractor(60)

	// Both cues in the same context window; jurat must win
	text := "Sworn before me and filed on 3/10/2024."

	dates := extractor.Extract(text)
	if len(dates) != 1 {
		t.Fatalf("expected 1 date, got %d", len(dates))
	}
	if dates[0].Type != model.DateTypeJurat {
		t.Errorf("expected jurat to outrank filing, got %s", dates[0].Type)
	}
}

func TestDateExtractor_ContextWindow(t *testing.T) {
	extractor := NewDateExtractor(60)

	text := "The parties executed this lease agreement effective 6/15/2023 for the premises."

	dates := extractor.Extract(text)
	if len(dates) != 1 {
		t.Fatalf("expected 1 date, got %d", len(dates))
	}
	if dates[0].Context == "" {
		t.Error("expected non-empty context")
	}
	if dates[0].Source != model.ProvenanceHeuristic {
		t.Errorf("expected heuristic provenance, got %s", dates[0].Source)
	}
}

func TestDateExtractor_TwoDigitYearPivot(t *testing.T) {
	extractor := NewDateExtractor(60)

	dates := extractor.Extract("Signed 3/1/98 and filed 3/1/24.")
	if len(dates) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(dates))
	}
	if dates[0].Date.Year() != 1998 {
		t.Errorf("expected 98 -> 1998, got %d", dates[0].Date.Year())
	}
	if dates[1].Date.Year() != 2024 {
		t.Errorf("expected 24 -> 2024, got %d", dates[1].Date.Year())
	}
}

func TestDateExtractor_EmptyText(t *testing.T) {
	extractor := NewDateExtractor(60)

	if dates := extractor.Extract(""); len(dates) != 0 {
		t.Errorf("expected no dates from empty text, got %d", len(dates))
	}
	if dates := extractor.Extract("No dates in this sentence at all."); len(dates) != 0 {
		t.Errorf("expected no dates, got %d", len(dates))
	}
}

func TestDateExtractor_Deterministic(t *testing.T) {
	extractor := NewDateExtractor(60)

	text := "Filed 1/5/2024. Served 2/1/2024. Hearing March 1, 2024. Sworn before me 1/2/2024."

	first := extractor.Extract(text)
	second := extractor.Extract(text)

	if len(first) != len(second) {
		t.Fatalf("repeated extraction sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] && !first[i].Date.Equal(second[i].Date) {
			t.Errorf("extraction %d differs between runs", i)
		}
	}
}

func TestFindFirstDate(t *testing.T) {
	date, ok := FindFirstDate("nothing here ... March 3, 2024 and later 4/1/2024")
	if !ok {
		t.Fatal("expected a date")
	}
	want := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("expected first date %v, got %v", want, date)
	}

	if _, ok := FindFirstDate("no dates at all"); ok {
		t.Error("expected no date")
	}
}
