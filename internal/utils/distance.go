package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseDistanceKm extracts a distance in kilometers from free-form route
// text such as "20 km", "20.5 km" or "1,234 km". Thousands separators are
// stripped before parsing. Returns 0 when no number can be found.
func ParseDistanceKm(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	// Take the leading numeric run, allowing separators inside it.
	end := 0
	for end < len(s) {
		ch := rune(s[end])
		if unicode.IsDigit(ch) || ch == '.' || ch == ',' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0
	}

	num := s[:end]
	// "1,234" style grouping: commas followed by exactly three digits.
	if strings.Contains(num, ",") && strings.Contains(num, ".") {
		num = strings.ReplaceAll(num, ",", "")
	} else if strings.Contains(num, ",") {
		parts := strings.Split(num, ",")
		grouping := true
		for _, p := range parts[1:] {
			if len(p) != 3 {
				grouping = false
				break
			}
		}
		if grouping {
			num = strings.ReplaceAll(num, ",", "")
		} else {
			// Decimal comma.
			num = strings.ReplaceAll(num, ",", ".")
		}
	}
	num = strings.TrimSuffix(num, ".")

	value, err := strconv.ParseFloat(num, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
