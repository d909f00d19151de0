package models

import (
	"strings"
)

// Analysis sheet rows are open maps: AI generation and spreadsheet imports
// add arbitrary columns, and historical documents carry the transcript
// reference and respondent label under more than one key. The accessors
// below canonicalize those shapes so the rest of the engine never touches
// the raw keys.

// Row is one row of an analysis sheet
type Row map[string]any

// Key aliases seen in stored documents, probed in order.
var (
	transcriptIDKeys = []string{"transcriptId", "Transcript ID", "transcript_id"}
	labelKeys        = []string{"Respondent ID", "respno"}
)

// TranscriptID returns the durable transcript reference carried by the row,
// or "" when the row predates id stamping.
func (r Row) TranscriptID() string {
	for _, key := range transcriptIDKeys {
		if v, ok := stringValue(r[key]); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Label returns the row's respondent label ("" when absent).
func (r Row) Label() string {
	for _, key := range labelKeys {
		if v, ok := stringValue(r[key]); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// SetLabel overwrites the respondent label under every label key the row
// carries, so a relabel cannot leave a stale alias behind. Rows without any
// label key get the spreadsheet-facing one.
func (r Row) SetLabel(label string) {
	wrote := false
	for _, key := range labelKeys {
		if _, ok := r[key]; ok {
			r[key] = label
			wrote = true
		}
	}
	if !wrote {
		r["Respondent ID"] = label
	}
}

// SetTranscriptID stamps the durable reference under the canonical key.
func (r Row) SetTranscriptID(id string) {
	r["transcriptId"] = id
}

// Clone returns a shallow copy of the row
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
