package extraction

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DateToken is a calendar point with month granularity. Month is 0-based (January = 0).
type DateToken struct {
	Year  int
	Month int
}

// Before reports whether d is chronologically earlier than other.
func (d DateToken) Before(other DateToken) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	return d.Month < other.Month
}

// DateRange is one "start - end" mention found in a document.
// End is meaningful only when Present is false.
type DateRange struct {
	Start   DateToken
	End     DateToken
	Present bool
}

// DefaultMonth is the month assumed when a token has no recognizable month name.
const DefaultMonth = 0

// MonthTable maps lower-case month names and abbreviations to month indexes 0-11 and
// carries the date-range pattern built from those names. It is read-only after
// construction and safe to share between goroutines.
type MonthTable struct {
	index  map[string]int
	ranges *regexp.Regexp
}

// NewMonthTable builds a table from name -> month index (0-11). Names are matched
// case-insensitively.
func NewMonthTable(names map[string]int) *MonthTable {
	index := make(map[string]int, len(names))
	keys := make([]string, 0, len(names))
	for name, m := range names {
		name = strings.ToLower(name)
		index[name] = m
		keys = append(keys, regexp.QuoteMeta(name))
	}
	// Longest first so "september" wins over "sep".
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	return &MonthTable{
		index:  index,
		ranges: compileDateRange(strings.Join(keys, "|")),
	}
}

// EnglishMonths returns the full English month names plus their 3-letter abbreviations.
func EnglishMonths() *MonthTable {
	names := map[string]int{"sept": 8}
	for i, name := range []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	} {
		names[name] = i
		names[name[:3]] = i
	}
	return NewMonthTable(names)
}

// Lookup returns the month index for name, ignoring case and a trailing period.
func (t *MonthTable) Lookup(name string) (int, bool) {
	m, ok := t.index[strings.ToLower(strings.TrimSuffix(name, "."))]
	return m, ok
}

// MonthOrDefault resolves name through the table and falls back to DefaultMonth.
func (t *MonthTable) MonthOrDefault(name string) int {
	if m, ok := t.Lookup(name); ok {
		return m
	}
	return DefaultMonth
}

// ParseDateToken converts "March 2020", "Mar 2020" or "2020" into a DateToken.
// It never fails: the last whitespace-separated token is read as the year and an
// unknown or missing month becomes DefaultMonth. A last token without digits
// yields Year 0.
func ParseDateToken(s string, months *MonthTable) DateToken {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return DateToken{Month: DefaultMonth}
	}

	d := DateToken{
		Year:  trailingNumber(parts[len(parts)-1]),
		Month: DefaultMonth,
	}
	if len(parts) > 1 {
		d.Month = months.MonthOrDefault(parts[0])
	}
	return d
}

// DateOf converts a wall-clock time into a DateToken.
func DateOf(t time.Time) DateToken {
	return DateToken{Year: t.Year(), Month: int(t.Month()) - 1}
}

// MonthsBetween returns the whole-month difference end - start. Days are ignored and
// the result is negative when start is after end.
func MonthsBetween(start, end DateToken) int {
	return (end.Year-start.Year)*12 + (end.Month - start.Month)
}

func trailingNumber(s string) int {
	i := len(s)
	for i > 0 && unicode.IsDigit(rune(s[i-1])) {
		i--
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0
	}
	return n
}
