package transcripts

import (
	"context"

	"github.com/fieldscope/research-api/internal/models"
)

// Repository defines the interface for transcript data access
type Repository interface {
	// Create operations
	CreateTranscript(ctx context.Context, transcript *models.Transcript) error

	// Read operations
	GetTranscriptByUUID(ctx context.Context, uuid string) (*models.Transcript, error)
	ListTranscriptsByProject(ctx context.Context, projectID uint) ([]models.Transcript, error)
	ListTranscriptsByUUIDs(ctx context.Context, uuids []string) ([]models.Transcript, error)

	// Update operations
	SaveTranscript(ctx context.Context, transcript *models.Transcript) error

	// Delete operations
	DeleteTranscript(ctx context.Context, uuid string) error
}

// ProjectView is one transcript decorated with its assignment state for
// list rendering.
type ProjectView struct {
	Transcript   models.Transcript `json:"transcript"`
	Assigned     bool              `json:"assigned"`
	AnalysisUUID string            `json:"analysis_uuid,omitempty"`
}

// Service defines the interface for transcript business logic
type Service interface {
	// Ingest registers one uploaded transcript's metadata
	Ingest(ctx context.Context, projectID uint, filename, interviewDate, interviewTime string) (*models.Transcript, error)

	// Read operations
	GetTranscriptByUUID(ctx context.Context, uuid string) (*models.Transcript, error)
	ListByProject(ctx context.Context, projectID uint) ([]ProjectView, error)

	// CorrectDateTime corrects one interview date or time and cascades the
	// renumbering. Returns the updated canonical labels.
	CorrectDateTime(ctx context.Context, transcriptUUID, field, value string) (map[string]string, error)

	// Delete operations
	DeleteTranscript(ctx context.Context, uuid string) error
}
