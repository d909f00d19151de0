package consistency

import (
	"context"

	"github.com/fieldscope/research-api/internal/models"
)

// Field names accepted by OnDateTimeCorrected.
const (
	FieldDate = "date"
	FieldTime = "time"
)

// TranscriptStore is the document access the orchestrator needs for the
// project's transcript set. Documents are read whole and written whole.
type TranscriptStore interface {
	GetTranscriptByUUID(ctx context.Context, uuid string) (*models.Transcript, error)
	ListTranscriptsByProject(ctx context.Context, projectID uint) ([]models.Transcript, error)
	ListTranscriptsByUUIDs(ctx context.Context, uuids []string) ([]models.Transcript, error)
	SaveTranscript(ctx context.Context, transcript *models.Transcript) error
}

// AnalysisStore is the document access the orchestrator needs for the
// project's analysis documents. Lists enumerate in creation order so
// first-wins tie-breaking stays stable.
type AnalysisStore interface {
	GetAnalysisByUUID(ctx context.Context, uuid string) (*models.ContentAnalysis, error)
	ListAnalysesByProject(ctx context.Context, projectID uint) ([]models.ContentAnalysis, error)
	SaveAnalysis(ctx context.Context, analysis *models.ContentAnalysis) error
}

// Service coordinates respondent label consistency across the transcript set
// and every analysis document that references it. Each operation returns the
// updated canonical label assignment (transcript uuid -> label) for display,
// and each is safe to re-run.
type Service interface {
	// OnDateTimeCorrected persists a corrected interview date or time on one
	// transcript and cascades the resulting renumbering across the project.
	OnDateTimeCorrected(ctx context.Context, transcriptUUID, field, value string) (map[string]string, error)

	// ResetAnalysis renumbers one analysis from the transcripts its identity
	// sheet references, and propagates to all of its sheets.
	ResetAnalysis(ctx context.Context, analysisUUID string) (map[string]string, error)

	// ReassignProject renumbers every transcript in the project, assigning or
	// repairing missing labels. Analysis documents are not touched; a later
	// sync reconciles them.
	ReassignProject(ctx context.Context, projectID uint) (map[string]string, error)

	// SyncProject re-derives every analysis's labels from transcript-id
	// references. It is the idempotent recovery path after a partial cascade.
	SyncProject(ctx context.Context, projectID uint) (map[string]string, error)
}
