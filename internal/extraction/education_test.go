package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducation(t *testing.T) {
	e, ok := ParseEducation("Education\nBachelor's in Computer Science, 2015 - 2019\nState University")

	require.True(t, ok)
	assert.Equal(t, Education{Degree: "Bachelor's", Field: "Computer Science", Start: "2015", End: "2019"}, e)
}

func TestExtractEducation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Field
	}{
		{"degree and field", "Master of Science in Data Engineering, MIT", Found("Master in Science in Data Engineering")},
		{"abbreviation with periods", "Systems engineer\nM.S. in Robotics", Found("M.S. in Robotics")},
		{"typographic apostrophe", "Master’s in Data Science, 2020", Found("Master’s in Data Science")},
		{"phd", "PhD Physics, 2012", Found("PhD in Physics")},
		{"missing field", "MBA, 2018", Found("MBA in " + FieldNotFound)},
		{"lower-case abbreviations are ordinary words", "I want to be a member of ms teams", Missing},
		{"nothing", "High school diploma", Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEducation(tt.text))
		})
	}
}

func TestEducationSummary_Defaults(t *testing.T) {
	assert.Equal(t, DegreeNotFound+" in "+FieldNotFound, Education{}.Summary())
}
