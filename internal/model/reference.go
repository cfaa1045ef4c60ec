package model

import "time"

// DocumentReference represents a textual mention of another document or
// exhibit. Year and DocType are inferred after matching; zero values mean
// the reference carried no such signal. No uniqueness is enforced at
// extraction time; deduplication happens only at merge time.
type DocumentReference struct {
	Text    string     `json:"text"`               // Raw matched text
	Year    int        `json:"year,omitempty"`     // 0 = no year detected
	DocType string     `json:"doc_type,omitempty"` // "" = no type detected
	Start   int        `json:"start"`
	End     int        `json:"end"`
	Source  Provenance `json:"source"`
}

// Signature represents a signature block found in document text, with the
// nearest date-shaped substring attached when one follows within the
// scan window.
type Signature struct {
	Name  string     `json:"name"`
	Date  *time.Time `json:"date,omitempty"`
	Start int        `json:"start"`
	End   int        `json:"end"`
}
