package extraction

import (
	"regexp"
	"strings"
)

// An optional label followed by one or two capitalized words. The value may sit on the
// line after the label, but the words themselves never span lines. Without a label any
// capitalized pair in the text qualifies, so the first match is only a guess.
var nameRegex = regexp.MustCompile(
	`(?:Full Name|Applicant Name|Candidate Name|Resume of|Name)?:?\s*([A-Z][a-zA-Z]+(?:[ \t]+[A-Z][a-zA-Z]+)?)`,
)

// ExtractName returns the first plausible person name in text as "First Last".
// Middle names are dropped; a single word is returned alone.
func ExtractName(text string) Field {
	m := nameRegex.FindStringSubmatch(text)
	if m == nil {
		return Missing
	}

	words := strings.Fields(m[1])
	if len(words) >= 2 {
		return Found(words[0] + " " + words[len(words)-1])
	}
	return Found(words[0])
}
