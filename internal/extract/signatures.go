package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/docket/internal/model"
)

// signatureRe matches executor-introducing phrases followed by a
// capitalized name: "Signed by John Smith", "By: Jane Doe", "/s/ J. Roe"
// Name tokens stay on one line so following headings ("Dated:") are not
// swallowed into the name.
var signatureRe = regexp.MustCompile(`(?:Signed by|Signature of|/s/|By:)[ \t]*((?:[A-Z][A-Za-z.'-]*[ \t]*){1,4})`)

// SignatureExtractor finds signature blocks and the date nearest to each,
// if one appears within a fixed forward window.
type SignatureExtractor struct {
	dateWindow int
}

// NewSignatureExtractor creates a signature extractor with the given
// forward scan window for associated dates
func NewSignatureExtractor(dateWindow int) *SignatureExtractor {
	if dateWindow <= 0 {
		dateWindow = 200
	}
	return &SignatureExtractor{dateWindow: dateWindow}
}

// Extract returns all signatures found in the text. A signature without a
// date-shaped substring in its forward window has a nil Date.
func (e *SignatureExtractor) Extract(text string) []model.Signature {
	var signatures []model.Signature

	for _, match := range signatureRe.FindAllStringSubmatchIndex(text, -1) {
		name := strings.TrimSpace(text[match[2]:match[3]])
		if name == "" {
			continue
		}

		sig := model.Signature{
			Name:  name,
			Start: match[0],
			End:   match[1],
		}

		windowEnd := match[1] + e.dateWindow
		if windowEnd > len(text) {
			windowEnd = len(text)
		}
		if date, ok := FindFirstDate(text[match[1]:windowEnd]); ok {
			sig.Date = &date
		}

		signatures = append(signatures, sig)
	}

	return signatures
}
