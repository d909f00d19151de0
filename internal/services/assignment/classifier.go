package assignment

import (
	"log"
	"strings"

	"github.com/fieldscope/research-api/internal/models"
)

// The classifier decides whether a transcript currently belongs to any
// analysis, for rendering assigned-vs-unassigned views. The transcript id is
// the authoritative membership test: a label can be stale after removal from
// an analysis, and a freshly added row may not carry a label yet, so the
// label is never used as a join key.

// IsAssigned reports whether any analysis references the transcript by id.
func IsAssigned(transcript models.Transcript, analyses []models.ContentAnalysis) bool {
	// Cheap out: an unlabeled transcript with no analyses to scan cannot be
	// assigned.
	if len(analyses) == 0 {
		return false
	}
	_, found := Owner(transcript, analyses)
	return found
}

// Owner returns the UUID of the analysis that owns the transcript. When more
// than one analysis claims the same transcript, the first one in the given
// enumeration order wins and the rest are treated as not owning it, so each
// transcript renders in at most one analysis's view. Callers pass analyses
// in a stable order (creation order).
func Owner(transcript models.Transcript, analyses []models.ContentAnalysis) (string, bool) {
	for _, analysis := range analyses {
		if references(&analysis, transcript.UUID) {
			return analysis.UUID, true
		}
	}
	return "", false
}

// Partition splits transcripts into per-analysis membership plus the
// unassigned remainder, first-wins per transcript.
func Partition(transcripts []models.Transcript, analyses []models.ContentAnalysis) (map[string][]models.Transcript, []models.Transcript) {
	assigned := make(map[string][]models.Transcript)
	var unassigned []models.Transcript

	for _, transcript := range transcripts {
		if owner, ok := Owner(transcript, analyses); ok {
			assigned[owner] = append(assigned[owner], transcript)
		} else {
			unassigned = append(unassigned, transcript)
		}
	}
	return assigned, unassigned
}

// references scans every sheet and the flat fallback array for a row whose
// transcript id matches. Documents that fail to decode are skipped: the
// classifier renders views, it does not repair documents.
func references(analysis *models.ContentAnalysis, transcriptID string) bool {
	id := strings.TrimSpace(transcriptID)
	if id == "" {
		return false
	}

	sheets, err := analysis.SheetMap()
	if err != nil {
		log.Printf("[WARN] Skipping undecodable sheets for analysis %s: %v", analysis.UUID, err)
	} else {
		for _, rows := range sheets {
			if rowsReference(rows, id) {
				return true
			}
		}
	}

	rows, err := analysis.TranscriptRows()
	if err != nil {
		log.Printf("[WARN] Skipping undecodable transcripts for analysis %s: %v", analysis.UUID, err)
		return false
	}
	return rowsReference(rows, id)
}

func rowsReference(rows []models.Row, transcriptID string) bool {
	for _, row := range rows {
		if row.TranscriptID() == transcriptID {
			return true
		}
	}
	return false
}
