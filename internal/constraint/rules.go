package constraint

import (
	"fmt"
	"time"

	"github.com/ppiankov/docket/internal/model"
)

// futureJurat flags a jurat dated more than one day past the evaluation
// instant. A notarization from the future means fraud or an OCR error,
// either way the verification cannot stand.
func futureJurat() Constraint {
	return Constraint{
		ID:          "future_jurat",
		Description: "A sworn verification must not be dated in the future",
		Check: func(dates []model.ExtractedDate, now time.Time) *model.Violation {
			for _, jurat := range datesOfType(dates, model.DateTypeJurat) {
				if jurat.Date.After(now.Add(24 * time.Hour)) {
					return &model.Violation{
						ConstraintID: "future_jurat",
						Severity:     model.SeverityCritical,
						Description: fmt.Sprintf("jurat dated %s is in the future",
							jurat.Date.Format("2006-01-02")),
						Dates: []model.ExtractedDate{jurat},
					}
				}
			}
			return nil
		},
	}
}

// juratBeforeFiling requires every jurat date to be at or before every
// filing date: a document cannot be sworn after it was filed.
func juratBeforeFiling() Constraint {
	return Constraint{
		ID:          "jurat_before_filing",
		Description: "A sworn verification must precede the filing it belongs to",
		Check: func(dates []model.ExtractedDate, now time.Time) *model.Violation {
			filings := datesOfType(dates, model.DateTypeFiling)
			for _, jurat := range datesOfType(dates, model.DateTypeJurat) {
				for _, filing := range filings {
					if jurat.Date.After(filing.Date) {
						return &model.Violation{
							ConstraintID: "jurat_before_filing",
							Severity:     model.SeverityCritical,
							Description: fmt.Sprintf("jurat dated %s postdates filing dated %s",
								jurat.Date.Format("2006-01-02"), filing.Date.Format("2006-01-02")),
							Dates: []model.ExtractedDate{jurat, filing},
						}
					}
				}
			}
			return nil
		},
	}
}

// signatureBeforeFiling requires every signature date to be at or before
// every filing date. High rather than critical: amended filings have
// legitimate explanations, but the pattern still warrants review.
func signatureBeforeFiling() Constraint {
	return Constraint{
		ID:          "signature_before_filing",
		Description: "A signature must precede the filing it belongs to",
		Check: func(dates []model.ExtractedDate, now time.Time) *model.Violation {
			filings := datesOfType(dates, model.DateTypeFiling)
			for _, sig := range datesOfType(dates, model.DateTypeSignature) {
				for _, filing := range filings {
					if sig.Date.After(filing.Date) {
						return &model.Violation{
							ConstraintID: "signature_before_filing",
							Severity:     model.SeverityHigh,
							Description: fmt.Sprintf("signature dated %s postdates filing dated %s",
								sig.Date.Format("2006-01-02"), filing.Date.Format("2006-01-02")),
							Dates: []model.ExtractedDate{sig, filing},
						}
					}
				}
			}
			return nil
		},
	}
}

// serviceBeforeHearing evaluates every (service, hearing) pair. A hearing
// before service is temporally impossible; a gap under the notice period
// is insufficient notice. All pairs are considered so OCR noise or
// multiple proceedings cannot hide the worst violation behind a benign
// adjacent pair.
func serviceBeforeHearing(noticePeriodDays int) Constraint {
	noticePeriod := time.Duration(noticePeriodDays) * 24 * time.Hour

	return Constraint{
		ID:          "service_before_hearing",
		Description: "Service of process must precede a hearing with adequate notice",
		Check: func(dates []model.ExtractedDate, now time.Time) *model.Violation {
			var worst *model.Violation
			hearings := datesOfType(dates, model.DateTypeHearing)
			for _, service := range datesOfType(dates, model.DateTypeService) {
				for _, hearing := range hearings {
					if hearing.Date.Before(service.Date) {
						return &model.Violation{
							ConstraintID: "service_before_hearing",
							Severity:     model.SeverityCritical,
							Description: fmt.Sprintf("hearing dated %s precedes service dated %s",
								hearing.Date.Format("2006-01-02"), service.Date.Format("2006-01-02")),
							Dates: []model.ExtractedDate{service, hearing},
						}
					}
					if worst == nil && hearing.Date.Sub(service.Date) < noticePeriod {
						worst = &model.Violation{
							ConstraintID: "service_before_hearing",
							Severity:     model.SeverityHigh,
							Description: fmt.Sprintf("insufficient notice: %d days between service (%s) and hearing (%s), minimum is %d",
								int(hearing.Date.Sub(service.Date).Hours()/24),
								service.Date.Format("2006-01-02"), hearing.Date.Format("2006-01-02"),
								noticePeriodDays),
							Dates: []model.ExtractedDate{service, hearing},
						}
					}
				}
			}
			return worst
		},
	}
}
