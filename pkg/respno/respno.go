package respno

import (
	"fmt"
	"strconv"
	"strings"
)

// Respondent labels are dense per scope: R01..R99, then R100 unpadded.

// Format returns the display label for a 1-based sequence position.
func Format(position int) string {
	if position >= 100 {
		return fmt.Sprintf("R%d", position)
	}
	return fmt.Sprintf("R%02d", position)
}

// Normalize canonicalizes a label for map lookups: trimmed and upper-cased.
// Labels arrive from spreadsheet-like rows, so "r01 " and "R01" must match.
func Normalize(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

// NumericPart extracts the sequence number from a label ("R07" -> 7).
// Returns 0 when the label carries no digits.
func NumericPart(label string) int {
	var digits strings.Builder
	for _, r := range label {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// Valid reports whether a label looks like a respondent label (R + digits).
func Valid(label string) bool {
	l := Normalize(label)
	if len(l) < 2 || l[0] != 'R' {
		return false
	}
	_, err := strconv.Atoi(l[1:])
	return err == nil
}
