// Package extract pulls structured values (weights, phone numbers) out of
// free-text chat messages.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Weight extraction patterns, tried in order; the first match wins.
var (
	poundsPattern     = regexp.MustCompile(`(?i)([\d.]+)\s*(?:libras?|lbs?|lb)`)
	kilosPattern      = regexp.MustCompile(`(?i)([\d.]+)\s*(?:kilos?|kg)`)
	contextualPattern = regexp.MustCompile(`(?i)(?:de|son|pesa|pesan|tiene|como|aproximadamente|aprox)\s*([\d.]+)`)
	bareNumberPattern = regexp.MustCompile(`^[\d.]+$`)

	mentionsKilos = regexp.MustCompile(`(?i)kilo|kg`)
)

// PoundsPerKilo converts kilogram weights to the pounds used for pricing.
const PoundsPerKilo = 2.205

// Weight extracts a weight in pounds from free text. Kilogram mentions are
// converted to pounds. Returns false when no pattern matches; zero must not
// be assumed.
func Weight(text string) (float64, bool) {
	for _, pattern := range []*regexp.Regexp{poundsPattern, kilosPattern, contextualPattern} {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		num, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if mentionsKilos.MatchString(text) {
			num *= PoundsPerKilo
		}
		return num, true
	}

	trimmed := strings.TrimSpace(text)
	if bareNumberPattern.MatchString(trimmed) {
		num, err := strconv.ParseFloat(trimmed, 64)
		if err == nil {
			return num, true
		}
	}

	return 0, false
}
