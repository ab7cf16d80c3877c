// Package dosing implements the dose computation core: frequency parsing,
// body surface area estimation, per-rule dose calculation, catalog building
// and report rendering.
package dosing

import (
	"strconv"
	"strings"
)

// ParseFrequency converts a dosing frequency code into doses per day.
// Recognized forms, in precedence order:
//   - "günde<N>": N administrations per day
//   - "od" or "q24h": once daily
//   - "q<N>h": every N hours, 24/N doses per day (may be fractional)
//
// Matching is case and whitespace insensitive. ok is false when the code
// matches no form; callers must treat that as "frequency unknown", not as
// once daily.
func ParseFrequency(freq string) (dosesPerDay float64, ok bool) {
	f := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(freq)), " ", "")

	if rest, found := strings.CutPrefix(f, "günde"); found {
		digits := ""
		for _, ch := range rest {
			if ch >= '0' && ch <= '9' {
				digits += string(ch)
			}
		}
		if digits == "" {
			return 0, false
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n <= 0 {
			return 0, false
		}
		return float64(n), true
	}

	if f == "od" || f == "q24h" {
		return 1.0, true
	}

	if strings.HasPrefix(f, "q") && strings.HasSuffix(f, "h") && len(f) > 2 {
		hours, err := strconv.Atoi(f[1 : len(f)-1])
		// hours == 0 would divide by zero
		if err == nil && hours > 0 {
			return 24.0 / float64(hours), true
		}
	}

	return 0, false
}
