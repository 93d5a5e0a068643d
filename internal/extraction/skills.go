package extraction

import (
	"regexp"
	"strings"
)

var (
	skillsHeaderRegex = regexp.MustCompile(`(?i)(?:Management Skills|Soft Skills|Technical Skills|Skill Sets|Skills):?`)
	blankLineRegex    = regexp.MustCompile(`\n\s*\n`)
	bulletReplacer    = strings.NewReplacer("•", "", "‣", "", "▪", "", "▫", "")

	yearMentionRegex = regexp.MustCompile(`(?i)\b(?:years?|20\d{2})\b`)
	languageTalk     = regexp.MustCompile(`(?i)\b(?:languages?|speak|fluent|proficient)\b`)
)

// NaturalLanguages are spoken languages that are not reported as skills.
var NaturalLanguages = []string{
	"English", "Spanish", "German", "French", "Chinese", "Hindi",
	"Portuguese", "Arabic", "Russian", "Italian", "Japanese", "Korean",
}

var naturalLanguageRegex = regexp.MustCompile(`(?i)\b(?:` + strings.Join(NaturalLanguages, "|") + `)\b`)

// ExtractSkills locates the skills section and returns its filtered tokens in order.
func ExtractSkills(text string) SkillList {
	block, ok := LocateSkillsSection(text)
	if !ok {
		return SkillList{}
	}
	return SkillList{
		Items: FilterSkills(TrimSkills(SplitSkills(StripBullets(block)))),
		Found: true,
	}
}

// LocateSkillsSection returns the text after the first skills header up to the next
// blank line or the end of the document. An empty section counts as not located.
func LocateSkillsSection(text string) (string, bool) {
	loc := skillsHeaderRegex.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	rest := strings.TrimLeft(text[loc[1]:], " \t\r\n\f\v")
	if end := blankLineRegex.FindStringIndex(rest); end != nil {
		rest = rest[:end[0]]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// StripBullets removes bullet glyphs.
func StripBullets(block string) string {
	return bulletReplacer.Replace(block)
}

// SplitSkills treats newlines as commas and splits on commas.
func SplitSkills(block string) []string {
	block = strings.ReplaceAll(block, "\r\n", "\n")
	return strings.Split(strings.ReplaceAll(block, "\n", ","), ",")
}

// TrimSkills trims surrounding whitespace from every token.
func TrimSkills(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.TrimSpace(t)
	}
	return out
}

// FilterSkills drops empty tokens, year mentions and spoken-language entries.
// Order, duplicates and casing are preserved.
func FilterSkills(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" ||
			yearMentionRegex.MatchString(t) ||
			languageTalk.MatchString(t) ||
			naturalLanguageRegex.MatchString(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
