package propagation

import (
	"sort"

	"github.com/fieldscope/research-api/internal/models"
	"github.com/fieldscope/research-api/pkg/respno"
)

// The propagator applies a label remap and a canonical order to one dependent
// row collection. It is a pure in-memory transform; persistence belongs to
// the orchestrator.

// Relabel rewrites each row's respondent label. Rows carrying a transcript id
// take the label from idToLabel (the authoritative path); rows that only
// carry a legacy label are remapped through oldToNew after normalization.
// Rows matching neither path are left untouched.
func Relabel(rows []models.Row, idToLabel map[string]string, oldToNew map[string]string) []models.Row {
	for _, row := range rows {
		if id := row.TranscriptID(); id != "" {
			if label, ok := idToLabel[id]; ok {
				row.SetLabel(label)
			}
			continue
		}
		if old := respno.Normalize(row.Label()); old != "" {
			if label, ok := oldToNew[old]; ok {
				row.SetLabel(label)
			}
		}
	}
	return rows
}

// Reorder sorts rows by their label's canonical position. Rows whose label is
// absent or unknown to the canonical order keep their relative position and
// sort after every recognized row.
func Reorder(rows []models.Row, canonicalIndex map[string]int) []models.Row {
	type item struct {
		row  models.Row
		rank int
		pos  int
	}

	unknownRank := len(canonicalIndex) + len(rows)

	items := make([]item, len(rows))
	for i, row := range rows {
		rank := unknownRank
		if label := respno.Normalize(row.Label()); label != "" {
			if idx, ok := canonicalIndex[label]; ok {
				rank = idx
			}
		}
		items[i] = item{row: row, rank: rank, pos: i}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].rank != items[j].rank {
			return items[i].rank < items[j].rank
		}
		return items[i].pos < items[j].pos
	})

	out := make([]models.Row, len(items))
	for i, it := range items {
		out[i] = it.row
	}
	return out
}

// Propagate relabels and then re-sorts one row collection.
func Propagate(rows []models.Row, idToLabel map[string]string, oldToNew map[string]string, canonicalIndex map[string]int) []models.Row {
	return Reorder(Relabel(rows, idToLabel, oldToNew), canonicalIndex)
}
