package ordering

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelsOf(records []Record) []string {
	labels := make([]string, len(records))
	for i, rec := range records {
		labels[i] = rec.Label
	}
	return labels
}

func idsOf(records []Record) []string {
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	return ids
}

func TestNormalize_Density(t *testing.T) {
	records := []Record{
		{ID: "c", Date: "2024-02-01"},
		{ID: "a", Date: "2024-01-01"},
		{ID: "b", Date: "2024-01-15"},
	}

	result := Normalize(records)

	assert.Equal(t, []string{"R01", "R02", "R03"}, labelsOf(result.Ordered))
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(result.Ordered))
}

func TestNormalize_OrderFidelity(t *testing.T) {
	records := []Record{
		{ID: "late", Date: "2024-01-05", Time: "16:00"},
		{ID: "early", Date: "2024-01-05", Time: "09:00"},
	}

	result := Normalize(records)

	assert.Equal(t, "R01", result.IDToNew["early"])
	assert.Equal(t, "R02", result.IDToNew["late"])
}

func TestNormalize_FallbackSortsLast(t *testing.T) {
	records := []Record{
		{ID: "bare"},
		{ID: "dated", Date: "2024-06-01"},
		{ID: "uploaded", UploadedAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	result := Normalize(records)

	assert.Equal(t, []string{"dated", "uploaded", "bare"}, idsOf(result.Ordered))
}

func TestNormalize_Idempotence(t *testing.T) {
	records := []Record{
		{ID: "b", Label: "R01", Date: "2024-01-10"},
		{ID: "a", Label: "R02", Date: "2024-01-01"},
		{ID: "c"},
	}

	first := Normalize(records)
	second := Normalize(first.Ordered)

	assert.Equal(t, idsOf(first.Ordered), idsOf(second.Ordered))
	assert.Equal(t, labelsOf(first.Ordered), labelsOf(second.Ordered))
	assert.Equal(t, first.IDToNew, second.IDToNew)
}

func TestNormalize_RemapCompleteness(t *testing.T) {
	records := []Record{
		{ID: "a", Label: " r02 ", Date: "2024-01-01"},
		{ID: "b", Label: "R01", Date: "2024-02-01"},
		{ID: "c", Date: "2024-03-01"},
	}

	result := Normalize(records)

	// Every pre-existing non-empty label appears as a (normalized) key.
	assert.Equal(t, "R01", result.OldToNew["R02"])
	assert.Equal(t, "R02", result.OldToNew["R01"])
	assert.Len(t, result.OldToNew, 2)

	// The id map is built unconditionally.
	assert.Len(t, result.IDToNew, 3)
	assert.Equal(t, "R03", result.IDToNew["c"])
}

func TestNormalize_DuplicateTimestampTieBreak(t *testing.T) {
	records := []Record{
		{ID: "first", Date: "2024-01-05", Time: "10:00"},
		{ID: "second", Date: "2024-01-05", Time: "10:00"},
	}

	result := Normalize(records)
	require.Equal(t, "R01", result.IDToNew["first"])
	require.Equal(t, "R02", result.IDToNew["second"])

	// Labels must not swap on repeated passes.
	again := Normalize(result.Ordered)
	assert.Equal(t, result.IDToNew, again.IDToNew)
}

func TestNormalize_UnpaddedAtHundred(t *testing.T) {
	records := make([]Record, 105)
	for i := range records {
		records[i] = Record{
			ID:   fmt.Sprintf("t%03d", i),
			Date: "2024-01-01",
			Time: fmt.Sprintf("%02d:%02d", i/60, i%60),
		}
	}

	result := Normalize(records)

	assert.Equal(t, "R99", result.Ordered[98].Label)
	assert.Equal(t, "R100", result.Ordered[99].Label)
	assert.Equal(t, "R105", result.Ordered[104].Label)
}

func TestNormalize_CanonicalIndex(t *testing.T) {
	records := []Record{
		{ID: "b", Date: "2024-02-01"},
		{ID: "a", Date: "2024-01-01"},
	}

	result := Normalize(records)

	assert.Equal(t, 0, result.CanonicalIndex["R01"])
	assert.Equal(t, 1, result.CanonicalIndex["R02"])
}

func TestNormalize_Empty(t *testing.T) {
	result := Normalize(nil)
	assert.Empty(t, result.Ordered)
	assert.Empty(t, result.OldToNew)
	assert.Empty(t, result.IDToNew)
}
