package extract

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?\d{8,15}$`)

// Phone extracts a normalized phone number from free text. Whitespace,
// hyphens, parentheses and dots are stripped; the remainder must be an
// optional leading + followed by 8 to 15 digits.
func Phone(text string) (string, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(text))

	if phonePattern.MatchString(cleaned) {
		return cleaned, true
	}
	return "", false
}
