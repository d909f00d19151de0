package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transcript represents one interview transcript's metadata. The UUID is the
// durable reference analysis rows point at; the Respno is a derived display
// label and is recomputed, never migrated.
type Transcript struct {
	gorm.Model
	UUID      string `json:"uuid" gorm:"uniqueIndex"`
	ProjectID uint   `json:"project_id" gorm:"not null;index"`
	Filename  string `json:"filename"`

	// Interview metadata as entered by the user. Nullable; free-form strings
	// that may fail to parse, which degrades their ordering tier rather than
	// erroring.
	InterviewDate *string `json:"interview_date"`
	InterviewTime *string `json:"interview_time"`

	// UploadedAt is the ingestion timestamp, always present.
	UploadedAt time.Time `json:"uploaded_at" gorm:"not null"`

	// Respno is empty until the transcript has been attached to at least one
	// analysis.
	Respno string `json:"respno"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate generates a UUID and stamps the ingestion time
func (t *Transcript) BeforeCreate(tx *gorm.DB) error {
	if t.UUID == "" {
		t.UUID = uuid.New().String()
	}
	if t.UploadedAt.IsZero() {
		t.UploadedAt = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for the Transcript model
func (Transcript) TableName() string {
	return "transcripts"
}

// DateValue returns the interview date or "" when unset
func (t *Transcript) DateValue() string {
	if t.InterviewDate == nil {
		return ""
	}
	return *t.InterviewDate
}

// TimeValue returns the interview time or "" when unset
func (t *Transcript) TimeValue() string {
	if t.InterviewTime == nil {
		return ""
	}
	return *t.InterviewTime
}
