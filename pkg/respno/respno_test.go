package respno

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		position int
		expected string
	}{
		{1, "R01"},
		{9, "R09"},
		{10, "R10"},
		{99, "R99"},
		{100, "R100"},
		{142, "R142"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Format(tt.position))
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "R01", Normalize(" r01 "))
	assert.Equal(t, "R10", Normalize("R10"))
	assert.Equal(t, "", Normalize("   "))
}

func TestNumericPart(t *testing.T) {
	tests := []struct {
		label    string
		expected int
	}{
		{"R01", 1},
		{"R10", 10},
		{"r07", 7},
		{"R100", 100},
		{"", 0},
		{"respondent", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NumericPart(tt.label), "label %q", tt.label)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("R01"))
	assert.True(t, Valid(" r12 "))
	assert.False(t, Valid(""))
	assert.False(t, Valid("R"))
	assert.False(t, Valid("07"))
	assert.False(t, Valid("Rxx"))
}
