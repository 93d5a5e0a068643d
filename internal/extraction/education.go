package extraction

import (
	"regexp"
	"strings"
)

// Full degree words match in any case; abbreviations must be upper case so that
// ordinary words such as "be" or "ms" inside "systems" do not qualify.
var educationRegex = regexp.MustCompile(
	`\b((?i:bachelor|master)(?:['’]?s)?|(?i:phd|doctorate)|Ph\.D\.?|MBA|B\.?E\.?|M\.?S\.?)` +
		`(?:[ \t]*:?[ \t]+([^,\n]*)|[^\w'’.]|$)` +
		`(?:,?[ \t]*(\d{4}))?(?:[ \t]*(?:-|–|to)[ \t]*(\d{4}))?`,
)

// Education is the first degree mention in a document.
type Education struct {
	Degree string
	Field  string
	Start  string
	End    string
}

// Summary renders "<degree> in <field>" with per-part defaults.
func (e Education) Summary() string {
	degree, field := e.Degree, e.Field
	if degree == "" {
		degree = DegreeNotFound
	}
	if field == "" {
		field = FieldNotFound
	}
	return degree + " in " + field
}

// ParseEducation finds the first degree keyword and the field of study that follows it
// up to the next comma or line break.
func ParseEducation(text string) (Education, bool) {
	m := educationRegex.FindStringSubmatch(text)
	if m == nil {
		return Education{}, false
	}
	return Education{
		Degree: strings.TrimSpace(m[1]),
		Field:  trimConnector(strings.TrimSpace(m[2])),
		Start:  m[3],
		End:    m[4],
	}, true
}

// ExtractEducation returns the composed summary of the first degree mention.
func ExtractEducation(text string) Field {
	e, ok := ParseEducation(text)
	if !ok {
		return Missing
	}
	return Found(e.Summary())
}

// trimConnector drops a leading "in"/"of" so the summary does not read "in in".
func trimConnector(field string) string {
	lower := strings.ToLower(field)
	for _, prefix := range []string{"in ", "of "} {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(field[len(prefix):])
		}
	}
	return field
}
