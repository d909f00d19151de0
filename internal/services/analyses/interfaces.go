package analyses

import (
	"context"

	"github.com/fieldscope/research-api/internal/models"
)

// Repository defines the interface for analysis document access
type Repository interface {
	// Create operations
	CreateAnalysis(ctx context.Context, analysis *models.ContentAnalysis) error

	// Read operations
	GetAnalysisByUUID(ctx context.Context, uuid string) (*models.ContentAnalysis, error)
	ListAnalysesByProject(ctx context.Context, projectID uint) ([]models.ContentAnalysis, error)

	// Update operations
	SaveAnalysis(ctx context.Context, analysis *models.ContentAnalysis) error

	// Delete operations
	DeleteAnalysis(ctx context.Context, uuid string) error
}

// Service defines the interface for analysis business logic
type Service interface {
	// Create operations
	CreateAnalysis(ctx context.Context, projectID uint, name string) (*models.ContentAnalysis, error)

	// Read operations
	GetAnalysisByUUID(ctx context.Context, uuid string) (*models.ContentAnalysis, error)
	ListAnalysesByProject(ctx context.Context, projectID uint) ([]models.ContentAnalysis, error)

	// Membership operations. Both renumber the analysis afterwards and
	// return the updated canonical labels.
	AttachTranscripts(ctx context.Context, analysisUUID string, transcriptUUIDs []string) (map[string]string, error)
	DetachTranscript(ctx context.Context, analysisUUID, transcriptUUID string) (map[string]string, error)

	// Delete operations
	DeleteAnalysis(ctx context.Context, uuid string) error
}
