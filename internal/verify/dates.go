package verify

import (
	"regexp"
	"strconv"
	"time"
)

// DateExpression is one day/month/year expression found in free text.
type DateExpression struct {
	Raw   string     `json:"raw"`
	Day   int        `json:"day"`
	Month time.Month `json:"month"`
	Year  int        `json:"year"`
}

// DateExtractor scans free text for month-name date expressions in day-first
// and month-first order. It holds only compiled patterns, so the same text
// can be scanned repeatedly with identical results.
type DateExtractor struct {
	months     *MonthTable
	dayFirst   *regexp.Regexp // <day> <month-name> <year>
	monthFirst *regexp.Regexp // <month-name> <day>[,] <year>
}

// NewDateExtractor compiles the two surface patterns against the month
// table's accepted variants.
func NewDateExtractor(months *MonthTable) *DateExtractor {
	alt := months.alternation()
	return &DateExtractor{
		months:     months,
		dayFirst:   regexp.MustCompile(`(?i)\b(\d{1,2})\s+(` + alt + `)[a-z]*\.?\s+(\d{2,4})\b`),
		monthFirst: regexp.MustCompile(`(?i)\b(` + alt + `)[a-z]*\.?\s+(\d{1,2})\s*,?\s+(\d{2,4})\b`),
	}
}

// Extract reports every non-overlapping occurrence of either pattern anywhere
// in the text. Day is 1-2 digits, year 2-4 digits. Duplicates across the two
// patterns are both returned; deduplication, if ever needed, belongs to the
// caller.
func (e *DateExtractor) Extract(text string) []DateExpression {
	var out []DateExpression
	for _, m := range e.dayFirst.FindAllStringSubmatch(text, -1) {
		if expr, ok := e.build(m[0], m[1], m[2], m[3]); ok {
			out = append(out, expr)
		}
	}
	for _, m := range e.monthFirst.FindAllStringSubmatch(text, -1) {
		if expr, ok := e.build(m[0], m[2], m[1], m[3]); ok {
			out = append(out, expr)
		}
	}
	return out
}

func (e *DateExtractor) build(raw, dayStr, monthStr, yearStr string) (DateExpression, bool) {
	month, ok := e.months.Resolve(monthStr)
	if !ok {
		return DateExpression{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return DateExpression{}, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return DateExpression{}, false
	}
	return DateExpression{Raw: raw, Day: day, Month: month, Year: year}, true
}
