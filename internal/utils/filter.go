package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// StripDigits removes ASCII decimal digits from s.
func StripDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if IsDigit(r) {
			return -1
		}
		return r
	}, s)
}

// ContainsNumbers checks if a string contains any numeric digits
func ContainsNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// IsPositionList checks if s only holds digits, commas, minus signs and
// spaces, i.e. it reads as a list of pick positions.
func IsPositionList(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		if !IsDigit(r) && r != ',' && r != '-' && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ParseIndexes parses whitespace or comma separated integers, skipping
// anything that is not a number. Returns the numbers in input order.
func ParseIndexes(s string) []int {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	indexes := make([]int, 0, len(fields))
	for _, f := range fields {
		if n, err := strconv.Atoi(f); err == nil {
			indexes = append(indexes, n)
		}
	}
	return indexes
}
