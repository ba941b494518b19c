package helper

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// RoundRupees rounds a money amount to two decimal places. All bill math
// rounds through this so subtotal, GST and total stay consistent with what
// gets printed on the receipt.
func RoundRupees(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// SanitizeTemplateID derives the stable template id from a dish name:
// uppercase, alphanumerics kept, everything else collapsed to single
// underscores. "Masala Dosa" and "masala  dosa" map to the same template.
func SanitizeTemplateID(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// DateString formats a time as the calendar date used for prepared-stock
// batches and daily analytics buckets.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayBounds returns the inclusive start and end instants of the calendar day
// containing t, in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
