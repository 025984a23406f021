package extract

import "regexp"

var (
	// $20, $ 3.79
	symbolPattern = regexp.MustCompile(`\$\s*([0-9]+(?:\.[0-9]{1,2})?)`)
	// ទទួលប្រាក់ចំនួន 1.23 ដុល្លារ, បានទទួល 28.80 ដុល្លារ
	phrasePattern = regexp.MustCompile(`ទទួល(?:ប្រាក់ចំនួន)?\s*([0-9]+(?:\.[0-9]{1,2})?)\s*ដុល្លារ`)
)

var patterns = []*regexp.Regexp{symbolPattern, phrasePattern}

// Extract returns the amounts found in text as decimal strings.
// All symbol matches come first, then all phrase matches, each in order of appearance.
func Extract(text string) []string {
	var amounts []string
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			amounts = append(amounts, m[1])
		}
	}
	return amounts
}
