package extraction

import (
	"regexp"
	"strings"
)

var (
	// Longer labels come first so "Phone Number:" is consumed as a whole.
	labeledPhoneRegex = regexp.MustCompile(
		`(?i)(?:Phone Number|Mobile Number|Phone|Contact|Mobile|Tel):?\s*(?:\+?\d{1,3}[\s-]?)?(\(?\d{3}\)?[\s-]?\d{3}[\s-]?\d{4})`,
	)
	standalonePhoneRegex = regexp.MustCompile(`(?:\+?\d{1,3}[ -]?)?\(?\d{3}\)?[ -]?\d{3}[ -]?\d{4}`)
	emailRegex           = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// ExtractContact resolves phone and email independently of each other.
func ExtractContact(text string) ContactInfo {
	return ContactInfo{
		Phone: ExtractPhone(text),
		Email: ExtractEmail(text),
	}
}

// ExtractPhone prefers a labeled number ("Phone: ...") and falls back to the first
// bare 10-digit shaped sequence anywhere in the text.
func ExtractPhone(text string) Field {
	if m := labeledPhoneRegex.FindStringSubmatch(text); m != nil {
		return Found(strings.TrimSpace(m[1]))
	}
	if m := standalonePhoneRegex.FindString(text); m != "" {
		return Found(strings.TrimSpace(m))
	}
	return Missing
}

// ExtractEmail returns the first local@domain.tld address in document order.
func ExtractEmail(text string) Field {
	if m := emailRegex.FindString(text); m != "" {
		return Found(m)
	}
	return Missing
}
