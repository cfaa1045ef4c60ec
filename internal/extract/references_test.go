package extract

import (
	"testing"

	"github.com/ppiankov/docket/internal/model"
)

func TestReferenceExtractor_TitledDocuments(t *testing.T) {
	extractor := NewReferenceExtractor()

	text := "Pursuant to the 2019 Service Agreement and the 2021 Commercial Lease, rent is due monthly."

	refs := extractor.Extract(text)
	if len(refs) != 2 {
		t.Fatalf("expected 2 references, got %d", len(refs))
	}

	if refs[0].Text != "2019 Service Agreement" {
		t.Errorf("expected '2019 Service Agreement', got %q", refs[0].Text)
	}
	if refs[0].Year != 2019 {
		t.Errorf("expected year 2019, got %d", refs[0].Year)
	}
	if refs[0].DocType != "agreement" {
		t.Errorf("expected doc type agreement, got %q", refs[0].DocType)
	}

	if refs[1].Year != 2021 {
		t.Errorf("expected year 2021, got %d", refs[1].Year)
	}
	if refs[1].DocType != "lease" {
		t.Errorf("expected doc type lease, got %q", refs[1].DocType)
	}
}

func TestReferenceExtractor_DatedDocuments(t *testing.T) {
	extractor := NewReferenceExtractor()

	text := "As set forth in the lease agreement dated June 2020, tenant shall maintain the premises."

	refs := extractor.Extract(text)
	if len(refs) == 0 {
		t.Fatal("expected at least one reference")
	}

	found := false
	for _, ref := range refs {
		if ref.Year == 2020 && ref.DocType == "lease" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a lease reference with year 2020, got %+v", refs)
	}
}

func TestReferenceExtractor_Exhibits(t *testing.T) {
	extractor := NewReferenceExtractor()

	text := "See Exhibit A and Attachment 3 for the complete schedule, plus Appendix B-1."

	refs := extractor.Extract(text)
	if len(refs) != 3 {
		t.Fatalf("expected 3 references, got %d", len(refs))
	}

	wantTexts := map[string]bool{"Exhibit A": true, "Attachment 3": true, "Appendix B-1": true}
	for _, ref := range refs {
		if !wantTexts[ref.Text] {
			t.Errorf("unexpected reference text %q", ref.Text)
		}
		if ref.Year != 0 {
			t.Errorf("expected no year for %q, got %d", ref.Text, ref.Year)
		}
		if !IsGenericDocType(ref.DocType) {
			t.Errorf("expected generic doc type for %q, got %q", ref.Text, ref.DocType)
		}
		if ref.Source != model.ProvenanceHeuristic {
			t.Errorf("expected heuristic provenance, got %s", ref.Source)
		}
	}
}

func TestReferenceExtractor_NoReferences(t *testing.T) {
	extractor := NewReferenceExtractor()

	if refs := extractor.Extract("The quick brown fox jumps over the lazy dog."); len(refs) != 0 {
		t.Errorf("expected no references, got %d", len(refs))
	}
}

func TestIsGenericDocType(t *testing.T) {
	for _, generic := range []string{"exhibit", "Exhibit", "attachment", "appendix", ""} {
		want := generic != ""
		if got := IsGenericDocType(generic); got != want {
			t.Errorf("IsGenericDocType(%q) = %v, want %v", generic, got, want)
		}
	}
	if IsGenericDocType("lease") {
		t.Error("lease should not be generic")
	}
}
