package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IdentitySheetName is the sheet whose rows are 1:1 with referenced
// transcripts and whose label order defines canonical order for the analysis.
const IdentitySheetName = "Demographics"

// ContentAnalysis is a derived document: a set of independently-stored row
// collections ("sheets") whose rows reference transcripts by durable id and
// carry the current respondent label denormalized for display.
type ContentAnalysis struct {
	gorm.Model
	UUID      string `json:"uuid" gorm:"uniqueIndex"`
	ProjectID uint   `json:"project_id" gorm:"not null;index"`
	Name      string `json:"name" gorm:"not null"`

	// Sheets holds map[sheetName][]Row as a JSON document. Read whole,
	// mutated in memory, written whole.
	Sheets datatypes.JSON `json:"sheets"`

	// Transcripts is the flat fallback membership index, a JSON array of
	// rows carrying at least transcriptId and respno.
	Transcripts datatypes.JSON `json:"transcripts"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate generates a UUID before creating a new analysis
func (a *ContentAnalysis) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the ContentAnalysis model
func (ContentAnalysis) TableName() string {
	return "content_analyses"
}

// SheetMap decodes the sheets document. A nil column decodes to an empty map.
func (a *ContentAnalysis) SheetMap() (map[string][]Row, error) {
	sheets := map[string][]Row{}
	if len(a.Sheets) == 0 {
		return sheets, nil
	}
	if err := json.Unmarshal(a.Sheets, &sheets); err != nil {
		return nil, fmt.Errorf("decoding sheets for analysis %s: %w", a.UUID, err)
	}
	return sheets, nil
}

// SetSheetMap encodes and stores the sheets document
func (a *ContentAnalysis) SetSheetMap(sheets map[string][]Row) error {
	raw, err := json.Marshal(sheets)
	if err != nil {
		return fmt.Errorf("encoding sheets for analysis %s: %w", a.UUID, err)
	}
	a.Sheets = datatypes.JSON(raw)
	return nil
}

// TranscriptRows decodes the flat fallback membership array
func (a *ContentAnalysis) TranscriptRows() ([]Row, error) {
	var rows []Row
	if len(a.Transcripts) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(a.Transcripts, &rows); err != nil {
		return nil, fmt.Errorf("decoding transcripts for analysis %s: %w", a.UUID, err)
	}
	return rows, nil
}

// SetTranscriptRows encodes and stores the flat fallback membership array
func (a *ContentAnalysis) SetTranscriptRows(rows []Row) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding transcripts for analysis %s: %w", a.UUID, err)
	}
	a.Transcripts = datatypes.JSON(raw)
	return nil
}

// IdentityRows returns the identity sheet's rows (nil when the sheet is
// missing, which only happens on freshly created analyses)
func (a *ContentAnalysis) IdentityRows() ([]Row, error) {
	sheets, err := a.SheetMap()
	if err != nil {
		return nil, err
	}
	return sheets[IdentitySheetName], nil
}

// ReferencedTranscriptIDs returns the distinct transcript ids referenced by
// the identity sheet, in row order. The flat transcripts array is consulted
// as a fallback for documents whose identity sheet predates id stamping.
func (a *ContentAnalysis) ReferencedTranscriptIDs() ([]string, error) {
	rows, err := a.IdentityRows()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if rows, err = a.TranscriptRows(); err != nil {
			return nil, err
		}
	}

	seen := map[string]bool{}
	var ids []string
	for _, row := range rows {
		id := row.TranscriptID()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}
