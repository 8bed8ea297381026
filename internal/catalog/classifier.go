// Package catalog classifies free-text package descriptions against the
// prohibited and restricted item keyword tables.
package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Match is a single classified item with the reason it is prohibited or the
// documentation it requires.
type Match struct {
	Item   string `json:"item"`
	Detail string `json:"detail"`
}

// Result holds every prohibited and restricted item mentioned in a text,
// deduplicated by canonical item label.
type Result struct {
	Prohibited []Match `json:"prohibited"`
	Restricted []Match `json:"restricted"`
}

// HasProhibited reports whether any prohibited item was found.
func (r Result) HasProhibited() bool { return len(r.Prohibited) > 0 }

// HasRestricted reports whether any restricted item was found.
func (r Result) HasRestricted() bool { return len(r.Restricted) > 0 }

// ProhibitedItems returns the canonical labels of the prohibited matches.
func (r Result) ProhibitedItems() []string {
	items := make([]string, len(r.Prohibited))
	for i, m := range r.Prohibited {
		items[i] = m.Item
	}
	return items
}

// Classifier matches free text against the keyword tables. The zero value is
// not usable; call New. A Classifier is immutable after construction and safe
// for concurrent use.
type Classifier struct {
	prohibited []Group
	restricted []Group
}

// New returns a Classifier backed by the built-in keyword tables.
func New() *Classifier {
	return &Classifier{prohibited: prohibitedGroups, restricted: restrictedGroups}
}

// stripAccents removes combining marks so "pólvora" matches "polvora".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text and strips diacritics for accent-insensitive
// matching.
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	out, _, err := transform.String(stripAccents, lowered)
	if err != nil {
		return lowered
	}
	return out
}

// Classify scans the text for prohibited and restricted items. Matching is
// plain substring containment after normalization; misspellings and synonyms
// outside the tables are not caught. A label that matches both tables is
// reported as prohibited only.
func (c *Classifier) Classify(text string) Result {
	normalized := Normalize(text)

	var res Result
	seen := make(map[string]bool)

	for _, g := range c.prohibited {
		if seen[g.Item] {
			continue
		}
		for _, kw := range g.Keywords {
			if strings.Contains(normalized, Normalize(kw)) {
				res.Prohibited = append(res.Prohibited, Match{Item: g.Item, Detail: g.Detail})
				seen[g.Item] = true
				break
			}
		}
	}

	for _, g := range c.restricted {
		if seen[g.Item] {
			continue
		}
		for _, kw := range g.Keywords {
			if strings.Contains(normalized, Normalize(kw)) {
				res.Restricted = append(res.Restricted, Match{Item: g.Item, Detail: g.Detail})
				seen[g.Item] = true
				break
			}
		}
	}

	return res
}
