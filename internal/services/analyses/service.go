package analyses

import (
	"context"
	"log"
	"strings"

	"github.com/fieldscope/research-api/internal/models"
	"github.com/fieldscope/research-api/internal/services/assignment"
	"github.com/fieldscope/research-api/internal/services/consistency"
	"github.com/fieldscope/research-api/internal/services/transcripts"
	pkgerrors "github.com/fieldscope/research-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository  Repository
	transcripts transcripts.Repository
	coordinator consistency.Service
}

// NewService creates a new analysis service
func NewService(repository Repository, transcriptRepo transcripts.Repository, coordinator consistency.Service) Service {
	return &ServiceImpl{
		repository:  repository,
		transcripts: transcriptRepo,
		coordinator: coordinator,
	}
}

// CreateAnalysis creates an empty analysis document with its identity sheet
func (s *ServiceImpl) CreateAnalysis(ctx context.Context, projectID uint, name string) (*models.ContentAnalysis, error) {
	if projectID == 0 {
		return nil, pkgerrors.MissingFieldError("project_id")
	}
	if strings.TrimSpace(name) == "" {
		return nil, pkgerrors.MissingFieldError("name")
	}

	analysis := &models.ContentAnalysis{
		ProjectID: projectID,
		Name:      strings.TrimSpace(name),
	}
	if err := analysis.SetSheetMap(map[string][]models.Row{
		models.IdentitySheetName: {},
	}); err != nil {
		return nil, err
	}
	if err := analysis.SetTranscriptRows([]models.Row{}); err != nil {
		return nil, err
	}

	if err := s.repository.CreateAnalysis(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// GetAnalysisByUUID retrieves an analysis by its UUID
func (s *ServiceImpl) GetAnalysisByUUID(ctx context.Context, uuid string) (*models.ContentAnalysis, error) {
	return s.repository.GetAnalysisByUUID(ctx, uuid)
}

// ListAnalysesByProject retrieves all analyses for a project
func (s *ServiceImpl) ListAnalysesByProject(ctx context.Context, projectID uint) ([]models.ContentAnalysis, error) {
	return s.repository.ListAnalysesByProject(ctx, projectID)
}

// AttachTranscripts adds transcripts to the analysis's identity sheet and
// flat membership array, then renumbers the analysis so every member holds a
// dense chronological label. Transcripts already attached are skipped.
func (s *ServiceImpl) AttachTranscripts(ctx context.Context, analysisUUID string, transcriptUUIDs []string) (map[string]string, error) {
	if len(transcriptUUIDs) == 0 {
		return nil, pkgerrors.MissingFieldError("transcript_uuids")
	}

	analysis, err := s.repository.GetAnalysisByUUID(ctx, analysisUUID)
	if err != nil {
		return nil, err
	}

	attached, err := s.transcripts.ListTranscriptsByUUIDs(ctx, transcriptUUIDs)
	if err != nil {
		return nil, err
	}
	found := make(map[string]*models.Transcript, len(attached))
	for i := range attached {
		found[attached[i].UUID] = &attached[i]
	}
	for _, uuid := range transcriptUUIDs {
		transcript, ok := found[uuid]
		if !ok {
			return nil, pkgerrors.NotFound("transcript", uuid)
		}
		if transcript.ProjectID != analysis.ProjectID {
			return nil, pkgerrors.ValidationError("transcript_uuids",
				"transcript "+uuid+" belongs to a different project")
		}
	}

	sheets, err := analysis.SheetMap()
	if err != nil {
		return nil, err
	}
	flat, err := analysis.TranscriptRows()
	if err != nil {
		return nil, err
	}

	present := map[string]bool{}
	for _, row := range sheets[models.IdentitySheetName] {
		if id := row.TranscriptID(); id != "" {
			present[id] = true
		}
	}

	for _, uuid := range transcriptUUIDs {
		if present[uuid] {
			continue
		}
		present[uuid] = true
		transcript := found[uuid]
		sheets[models.IdentitySheetName] = append(sheets[models.IdentitySheetName], models.Row{
			"transcriptId":  uuid,
			"Respondent ID": transcript.Respno,
		})
		flat = append(flat, models.Row{
			"transcriptId": uuid,
			"respno":       transcript.Respno,
		})
	}

	if err := analysis.SetSheetMap(sheets); err != nil {
		return nil, err
	}
	if err := analysis.SetTranscriptRows(flat); err != nil {
		return nil, err
	}
	if err := s.repository.SaveAnalysis(ctx, analysis); err != nil {
		return nil, err
	}

	// Labels are granted by the scoped renumbering, not invented here.
	return s.coordinator.ResetAnalysis(ctx, analysisUUID)
}

// DetachTranscript removes one transcript's rows from every sheet and the
// flat membership array, renumbers the remainder, and clears the
// transcript's label when no analysis claims it anymore.
func (s *ServiceImpl) DetachTranscript(ctx context.Context, analysisUUID, transcriptUUID string) (map[string]string, error) {
	analysis, err := s.repository.GetAnalysisByUUID(ctx, analysisUUID)
	if err != nil {
		return nil, err
	}

	sheets, err := analysis.SheetMap()
	if err != nil {
		return nil, err
	}
	removed := false
	for name, rows := range sheets {
		kept := rows[:0]
		for _, row := range rows {
			if row.TranscriptID() == transcriptUUID {
				removed = true
				continue
			}
			kept = append(kept, row)
		}
		sheets[name] = kept
	}

	flat, err := analysis.TranscriptRows()
	if err != nil {
		return nil, err
	}
	keptFlat := flat[:0]
	for _, row := range flat {
		if row.TranscriptID() == transcriptUUID {
			removed = true
			continue
		}
		keptFlat = append(keptFlat, row)
	}

	if !removed {
		return nil, pkgerrors.NotFound("transcript reference", transcriptUUID)
	}

	if err := analysis.SetSheetMap(sheets); err != nil {
		return nil, err
	}
	if err := analysis.SetTranscriptRows(keptFlat); err != nil {
		return nil, err
	}
	if err := s.repository.SaveAnalysis(ctx, analysis); err != nil {
		return nil, err
	}

	labels, err := s.coordinator.ResetAnalysis(ctx, analysisUUID)
	if err != nil {
		return nil, err
	}

	s.clearLabelIfOrphaned(ctx, analysis.ProjectID, transcriptUUID)

	return labels, nil
}

// DeleteAnalysis deletes an analysis document. Labels on formerly referenced
// transcripts are cleared when no other analysis claims them.
func (s *ServiceImpl) DeleteAnalysis(ctx context.Context, uuid string) error {
	analysis, err := s.repository.GetAnalysisByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	ids, err := analysis.ReferencedTranscriptIDs()
	if err != nil {
		return err
	}

	if err := s.repository.DeleteAnalysis(ctx, uuid); err != nil {
		return err
	}

	for _, id := range ids {
		s.clearLabelIfOrphaned(ctx, analysis.ProjectID, id)
	}
	return nil
}

// clearLabelIfOrphaned drops a transcript's label once nothing references
// it. Best effort: a failure here leaves a stale label, which the classifier
// already tolerates.
func (s *ServiceImpl) clearLabelIfOrphaned(ctx context.Context, projectID uint, transcriptUUID string) {
	transcript, err := s.transcripts.GetTranscriptByUUID(ctx, transcriptUUID)
	if err != nil {
		return
	}
	if transcript.Respno == "" {
		return
	}

	remaining, err := s.repository.ListAnalysesByProject(ctx, projectID)
	if err != nil {
		log.Printf("[WARN] Could not check remaining membership for transcript %s: %v", transcriptUUID, err)
		return
	}
	if assignment.IsAssigned(*transcript, remaining) {
		return
	}

	transcript.Respno = ""
	if err := s.transcripts.SaveTranscript(ctx, transcript); err != nil {
		log.Printf("[WARN] Could not clear label on transcript %s: %v", transcriptUUID, err)
	}
}
