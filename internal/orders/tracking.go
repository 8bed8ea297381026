package orders

import (
	"strings"
	"time"
)

// FormatTrackingNumber builds a tracking number from an order ID and the
// creation date: "YE" + yyyymmdd + the first three characters of the ID,
// uppercased.
func FormatTrackingNumber(id string, at time.Time) string {
	prefix := id
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return "YE" + at.Format("20060102") + strings.ToUpper(prefix)
}

// NormalizeTracking strips everything but letters and digits and uppercases,
// so "ye-20240101-abc" and "YE20240101ABC" look up the same order.
func NormalizeTracking(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}
