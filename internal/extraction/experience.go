package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// compileDateRange builds "<month> <year> <sep> <month> <year|present|current>" with
// the month optional on both sides. months is an alternation of quoted names. Years
// are limited to 19xx and 20xx so digit runs in phone numbers are not read as ranges.
func compileDateRange(months string) *regexp.Regexp {
	month := `(?:` + months + `)`
	year := `(?:19|20)\d{2}\b`
	return regexp.MustCompile(
		`(?i)(\b` + month + `?\.?\s*` + year + `)\s*(?:-|–|—|to|/)+\s*(\b` + month + `?\.?\s*(?:` + year + `|present|current))`,
	)
}

// FindDateRanges returns every non-overlapping date range mention in document order.
// Ranges whose start has no readable year are skipped.
func FindDateRanges(text string, months *MonthTable) []DateRange {
	var ranges []DateRange
	for _, m := range months.ranges.FindAllStringSubmatch(text, -1) {
		start := ParseDateToken(splitMonthYear(m[1]), months)
		if start.Year == 0 {
			continue
		}

		r := DateRange{Start: start}
		end := strings.ToLower(m[2])
		if strings.Contains(end, "present") || strings.Contains(end, "current") {
			r.Present = true
		} else {
			r.End = ParseDateToken(splitMonthYear(m[2]), months)
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// EarliestStart returns the first-encountered minimal start date.
func EarliestStart(ranges []DateRange) (DateToken, bool) {
	if len(ranges) == 0 {
		return DateToken{}, false
	}
	earliest := ranges[0].Start
	for _, r := range ranges[1:] {
		if r.Start.Before(earliest) {
			earliest = r.Start
		}
	}
	return earliest, true
}

// EstimateExperience measures the time from the earliest start date found in text to
// now, formatted as "<years> years" with two decimals. Individual stints are not
// summed, so gaps between jobs count as experience.
func EstimateExperience(text string, months *MonthTable, now time.Time) Field {
	start, ok := EarliestStart(FindDateRanges(text, months))
	if !ok {
		return Missing
	}

	total := MonthsBetween(start, DateOf(now))
	if total <= 0 {
		return Missing
	}
	return Found(fmt.Sprintf("%.2f years", float64(total)/12))
}

// splitMonthYear inserts a space between a month name and a glued year ("Jan2019").
func splitMonthYear(s string) string {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if i <= 0 || s[i-1] == ' ' {
		return s
	}
	return s[:i] + " " + s[i:]
}
