package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateToken(t *testing.T) {
	months := EnglishMonths()

	tests := []struct {
		name  string
		input string
		want  DateToken
	}{
		{"full month name", "March 2020", DateToken{Year: 2020, Month: 2}},
		{"year only", "2020", DateToken{Year: 2020, Month: 0}},
		{"abbreviation", "Dec 2018", DateToken{Year: 2018, Month: 11}},
		{"abbreviation with period", "Sept. 2017", DateToken{Year: 2017, Month: 8}},
		{"case insensitive", "JUNE 2015", DateToken{Year: 2015, Month: 5}},
		{"unknown month defaults to january", "Spring 2016", DateToken{Year: 2016, Month: DefaultMonth}},
		{"no digits", "Present", DateToken{Year: 0, Month: DefaultMonth}},
		{"empty", "", DateToken{Year: 0, Month: DefaultMonth}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDateToken(tt.input, months))
		})
	}
}

func TestMonthTable_LookupAndDefault(t *testing.T) {
	months := EnglishMonths()

	m, ok := months.Lookup("Aug")
	assert.True(t, ok)
	assert.Equal(t, 7, m)

	_, ok = months.Lookup("Smarch")
	assert.False(t, ok)
	assert.Equal(t, DefaultMonth, months.MonthOrDefault("Smarch"))
}

func TestParseDateToken_AlternateLocale(t *testing.T) {
	german := NewMonthTable(map[string]int{"januar": 0, "märz": 2, "dezember": 11})

	assert.Equal(t, DateToken{Year: 2021, Month: 2}, ParseDateToken("März 2021", german))
	// English names are unknown to this table and fall back to the default.
	assert.Equal(t, DateToken{Year: 2021, Month: DefaultMonth}, ParseDateToken("March 2021", german))
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 30, MonthsBetween(DateToken{Year: 2019, Month: 0}, DateToken{Year: 2021, Month: 6}))
	assert.Equal(t, 0, MonthsBetween(DateToken{Year: 2020, Month: 4}, DateToken{Year: 2020, Month: 4}))
	assert.Equal(t, -12, MonthsBetween(DateToken{Year: 2021, Month: 0}, DateToken{Year: 2020, Month: 0}))
}

func TestDateOf(t *testing.T) {
	now := time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, DateToken{Year: 2024, Month: 6}, DateOf(now))
}

func TestDateToken_Before(t *testing.T) {
	assert.True(t, DateToken{Year: 2018, Month: 11}.Before(DateToken{Year: 2019, Month: 0}))
	assert.True(t, DateToken{Year: 2019, Month: 0}.Before(DateToken{Year: 2019, Month: 1}))
	assert.False(t, DateToken{Year: 2019, Month: 1}.Before(DateToken{Year: 2019, Month: 1}))
}
