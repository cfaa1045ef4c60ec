package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ppiankov/docket/internal/model"
)

// Date-shaped textual patterns
var (
	// slashDateRe matches 3/1/2024, 03/01/24 and similar
	slashDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)

	// monthNameDateRe matches "March 1, 2024", "March 1st 2024"
	monthNameDateRe = regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)

	// isoDateRe matches 2024-03-01
	isoDateRe = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// DateExtractor finds calendar dates in raw text and classifies each by
// legal role using keywords in the surrounding context window.
type DateExtractor struct {
	contextRadius int
}

// NewDateExtractor creates a date extractor with the given context window
// radius (characters kept on each side of a match for classification)
func NewDateExtractor(contextRadius int) *DateExtractor {
	if contextRadius <= 0 {
		contextRadius = 60
	}
	return &DateExtractor{contextRadius: contextRadius}
}

// Extract returns all resolvable dates in the text, sorted ascending by
// calendar date. Candidates that do not resolve to a concrete date are
// dropped; partial extraction is expected and non-fatal.
func (e *DateExtractor) Extract(text string) []model.ExtractedDate {
	var dates []model.ExtractedDate

	for _, match := range slashDateRe.FindAllStringSubmatchIndex(text, -1) {
		resolved, ok := resolveSlashDate(
			text[match[2]:match[3]], text[match[4]:match[5]], text[match[6]:match[7]])
		if !ok {
			continue
		}
		dates = append(dates, e.build(text, match[0], match[1], resolved))
	}

	for _, match := range monthNameDateRe.FindAllStringSubmatchIndex(text, -1) {
		resolved, ok := resolveMonthNameDate(
			text[match[2]:match[3]], text[match[4]:match[5]], text[match[6]:match[7]])
		if !ok {
			continue
		}
		dates = append(dates, e.build(text, match[0], match[1], resolved))
	}

	for _, match := range isoDateRe.FindAllStringSubmatchIndex(text, -1) {
		resolved, ok := resolveNumericDate(
			text[match[6]:match[7]], text[match[4]:match[5]], text[match[2]:match[3]])
		if !ok {
			continue
		}
		dates = append(dates, e.build(text, match[0], match[1], resolved))
	}

	sort.SliceStable(dates, func(i, j int) bool {
		if !dates[i].Date.Equal(dates[j].Date) {
			return dates[i].Date.Before(dates[j].Date)
		}
		return dates[i].Start < dates[j].Start
	})

	return dates
}

// build assembles an ExtractedDate from a match span and resolved date
func (e *DateExtractor) build(text string, start, end int, resolved time.Time) model.ExtractedDate {
	ctxStart := start - e.contextRadius
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := end + e.contextRadius
	if ctxEnd > len(text) {
		ctxEnd = len(text)
	}
	context := text[ctxStart:ctxEnd]

	return model.ExtractedDate{
		Date:    resolved,
		Text:    text[start:end],
		Context: strings.TrimSpace(context),
		Type:    classifyDate(context),
		Start:   start,
		End:     end,
		Source:  model.ProvenanceHeuristic,
	}
}

// Classification cues in precedence order. A context window can contain
// multiple cues ("filed" near "sworn"); jurat outranks everything because
// it is dispositive of document validity.
var classificationCues = []struct {
	dateType model.DateType
	cues     []string
}{
	{model.DateTypeJurat, []string{"sworn", "subscribed", "notar", "jurat", "before me"}},
	{model.DateTypeFiling, []string{"filed", "filing", "docket", "clerk", "e-filed"}},
	{model.DateTypeSignature, []string{"signed", "executed", "execution", "signature", "witness whereof"}},
	{model.DateTypeService, []string{"served", "service of", "process server", "delivered", "mailed"}},
	{model.DateTypeHearing, []string{"hearing", "appear", "trial", "oral argument", "calendar call"}},
}

// classifyDate classifies a date by keywords in its context window,
// honoring cue precedence
func classifyDate(context string) model.DateType {
	lower := strings.ToLower(context)
	for _, entry := range classificationCues {
		for _, cue := range entry.cues {
			if strings.Contains(lower, cue) {
				return entry.dateType
			}
		}
	}
	return model.DateTypeReference
}

// resolveSlashDate resolves M/D/Y components. Two-digit years pivot at
// 50: below maps to 2000s, at or above to 1900s.
func resolveSlashDate(monthStr, dayStr, yearStr string) (time.Time, bool) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, false
	}
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	return resolveNumericDate(dayStr, monthStr, strconv.Itoa(year))
}

// resolveMonthNameDate resolves a month-name date like "March 1, 2024"
func resolveMonthNameDate(monthName, dayStr, yearStr string) (time.Time, bool) {
	month, ok := monthsByName[strings.ToLower(monthName)]
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, false
	}
	return makeDate(year, month, day)
}

// resolveNumericDate resolves numeric day/month/year strings
func resolveNumericDate(dayStr, monthStr, yearStr string) (time.Time, bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, false
	}
	monthNum, err := strconv.Atoi(monthStr)
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, false
	}
	return makeDate(year, time.Month(monthNum), day)
}

// makeDate builds a UTC date and rejects components that do not round-trip
// (e.g. 13/45/2024 would otherwise normalize into a different date)
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if year < 1000 || year > 9999 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// FindFirstDate scans text for the first date-shaped substring and
// resolves it. Used for attaching dates to signature blocks.
func FindFirstDate(text string) (time.Time, bool) {
	type candidate struct {
		start    int
		resolved time.Time
	}
	var best *candidate

	consider := func(start int, resolved time.Time, ok bool) {
		if !ok {
			return
		}
		if best == nil || start < best.start {
			best = &candidate{start: start, resolved: resolved}
		}
	}

	if m := slashDateRe.FindStringSubmatchIndex(text); m != nil {
		resolved, ok := resolveSlashDate(text[m[2]:m[3]], text[m[4]:m[5]], text[m[6]:m[7]])
		consider(m[0], resolved, ok)
	}
	if m := monthNameDateRe.FindStringSubmatchIndex(text); m != nil {
		resolved, ok := resolveMonthNameDate(text[m[2]:m[3]], text[m[4]:m[5]], text[m[6]:m[7]])
		consider(m[0], resolved, ok)
	}
	if m := isoDateRe.FindStringSubmatchIndex(text); m != nil {
		resolved, ok := resolveNumericDate(text[m[6]:m[7]], text[m[4]:m[5]], text[m[2]:m[3]])
		consider(m[0], resolved, ok)
	}

	if best == nil {
		return time.Time{}, false
	}
	return best.resolved, true
}
