package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseVolume parses a volume. Empty, malformed, non-positive or non-finite input yields 0.
func ParseVolume(s string) float64 {
	v, ok := parseNumber(s)
	if !ok {
		return 0
	}
	return cleanVolume(v)
}

// ParsePrice parses an optional price, returning nil for empty or malformed input.
func ParsePrice(s string) *float64 {
	v, ok := parseNumber(s)
	if !ok {
		return nil
	}
	return &v
}

// ParseAmount parses an optional monetary amount such as a committed spend.
func ParseAmount(s string) *float64 {
	return ParsePrice(s)
}

func parseNumber(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
