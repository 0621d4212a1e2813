package verify

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ExpirationFinding reports whether an expiration date was detected and, if
// so, whether it lies in the past. Expiration is an opt-in check: text with
// no signal phrase yields Found=false, which is not a failure.
type ExpirationFinding struct {
	Date      *time.Time `json:"date,omitempty"`
	IsExpired bool       `json:"is_expired"`
	Found     bool       `json:"found"`
}

// expirySignals are the phrases that opt a document into the expiration
// check.
var expirySignals = []string{
	"expiry",
	"expiration",
	"valid until",
	"expires",
	"exp date",
}

// numericDatePattern matches a 3-part numeric date with / or - separators.
var numericDatePattern = regexp.MustCompile(`(\d{1,4})[/-](\d{1,2})[/-](\d{2,4})`)

// ExpiryEvaluator detects expiration signal phrases and parses the date that
// follows them.
type ExpiryEvaluator struct {
	dates *DateExtractor
}

// NewExpiryEvaluator creates an ExpiryEvaluator using the extractor's month
// table for month-name date forms.
func NewExpiryEvaluator(dates *DateExtractor) *ExpiryEvaluator {
	return &ExpiryEvaluator{dates: dates}
}

// Evaluate scans text for an expiration signal phrase and parses the date
// following the first one found. Patterns are tried in order: numeric D/M/Y
// (month-first fallback when the day part is out of range), numeric Y/M/D,
// <month-name> D, Y, then D <month-name> Y. The first syntactically valid
// calendar date wins; candidates that match a pattern but form an impossible
// date are discarded and the next pattern is tried. The parsed date is
// compared to now at midnight.
func (e *ExpiryEvaluator) Evaluate(text string, now time.Time) ExpirationFinding {
	lower := strings.ToLower(text)

	signalEnd := -1
	for _, sig := range expirySignals {
		if idx := strings.Index(lower, sig); idx >= 0 {
			end := idx + len(sig)
			if signalEnd == -1 || end < signalEnd {
				signalEnd = end
			}
		}
	}
	if signalEnd == -1 {
		return ExpirationFinding{}
	}

	tail := lower[signalEnd:]
	date, ok := e.parseFirstDate(tail)
	if !ok {
		return ExpirationFinding{}
	}

	today := midnight(now)
	return ExpirationFinding{
		Date:      &date,
		Found:     true,
		IsExpired: date.Before(today),
	}
}

// parseFirstDate tries the numeric then month-name patterns against the text
// following a signal phrase.
func (e *ExpiryEvaluator) parseFirstDate(tail string) (time.Time, bool) {
	if m := numericDatePattern.FindStringSubmatch(tail); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		c, _ := strconv.Atoi(m[3])
		if len(m[1]) == 4 {
			// Y/M/D
			if d, ok := calendarDate(a, b, c); ok {
				return d, true
			}
		} else {
			// D/M/Y, falling back to M/D/Y when D/M/Y is not a real date
			if d, ok := calendarDate(c, b, a); ok {
				return d, true
			}
			if d, ok := calendarDate(c, a, b); ok {
				return d, true
			}
		}
	}

	if m := e.dates.monthFirst.FindStringSubmatch(tail); m != nil {
		if d, ok := e.monthNameDate(m[1], m[2], m[3]); ok {
			return d, true
		}
	}
	if m := e.dates.dayFirst.FindStringSubmatch(tail); m != nil {
		if d, ok := e.monthNameDate(m[2], m[1], m[3]); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func (e *ExpiryEvaluator) monthNameDate(monthStr, dayStr, yearStr string) (time.Time, bool) {
	month, ok := e.dates.months.Resolve(monthStr)
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)
	return calendarDate(year, int(month), day)
}

// calendarDate validates y/m/d as a real calendar date and returns it at
// midnight UTC. Two-digit years are taken as 2000s: identity documents
// expire in the present era.
func calendarDate(year, month, day int) (time.Time, bool) {
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1900 || year > 2200 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
