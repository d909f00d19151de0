package ordering

import (
	"sort"

	"github.com/fieldscope/research-api/pkg/respno"
)

// Result is the outcome of one normalization pass.
type Result struct {
	// Ordered holds the input records in canonical chronological order,
	// with Label rewritten to the newly assigned one.
	Ordered []Record
	// OldToNew maps each record's previous label (normalized) to its new
	// label. Records that had no previous label contribute no entry.
	OldToNew map[string]string
	// IDToNew maps each record's durable id to its new label.
	IDToNew map[string]string
	// CanonicalIndex maps each new label (normalized) to its 0-based
	// position, for consumers that re-sort dependent rows.
	CanonicalIndex map[string]int
}

// Normalize assigns a dense R01..Rn label sequence over the records in
// ascending order of their resolved keys. The sort is stable and ties break
// by original position, never by label, so equal timestamps cannot swap on
// repeated passes. Normalizing an already-normalized set with unchanged
// inputs is a no-op.
func Normalize(records []Record) Result {
	type item struct {
		rec Record
		key int64
		pos int
	}

	items := make([]item, len(records))
	for i, rec := range records {
		items[i] = item{rec: rec, key: ResolveKey(rec, i), pos: i}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].key != items[j].key {
			return items[i].key < items[j].key
		}
		return items[i].pos < items[j].pos
	})

	result := Result{
		Ordered:        make([]Record, len(items)),
		OldToNew:       make(map[string]string),
		IDToNew:        make(map[string]string),
		CanonicalIndex: make(map[string]int),
	}

	for i, it := range items {
		newLabel := respno.Format(i + 1)

		if old := respno.Normalize(it.rec.Label); old != "" {
			result.OldToNew[old] = newLabel
		}
		if it.rec.ID != "" {
			result.IDToNew[it.rec.ID] = newLabel
		}
		result.CanonicalIndex[newLabel] = i

		rec := it.rec
		rec.Label = newLabel
		result.Ordered[i] = rec
	}

	return result
}
