package consistency

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/fieldscope/research-api/internal/models"
	"github.com/fieldscope/research-api/internal/services/ordering"
	"github.com/fieldscope/research-api/internal/services/propagation"
	pkgerrors "github.com/fieldscope/research-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	transcripts TranscriptStore
	analyses    AnalysisStore

	// One mutex per project. Cascades touch several documents with no
	// cross-document transaction, so two interleaved runs against the same
	// project could leave labels transiently inconsistent; serializing per
	// project closes that window.
	serialize    bool
	projectLocks sync.Map
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*ServiceImpl)

// WithSerialization toggles per-project single-writer serialization
func WithSerialization(enabled bool) ServiceOption {
	return func(s *ServiceImpl) {
		s.serialize = enabled
	}
}

// NewService creates a new consistency orchestrator
func NewService(transcripts TranscriptStore, analyses AnalysisStore, opts ...ServiceOption) Service {
	s := &ServiceImpl{
		transcripts: transcripts,
		analyses:    analyses,
		serialize:   true,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// lockProject takes the project's writer lock and returns the release func.
func (s *ServiceImpl) lockProject(projectID uint) func() {
	if !s.serialize {
		return func() {}
	}
	value, _ := s.projectLocks.LoadOrStore(projectID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// OnDateTimeCorrected persists the corrected field, renumbers the project's
// transcripts, and propagates the renumbering into every analysis. Analysis
// writes that fail are logged and skipped; already-written documents stay
// (there is no multi-document transaction) and a later sync reconciles them.
func (s *ServiceImpl) OnDateTimeCorrected(ctx context.Context, transcriptUUID, field, value string) (map[string]string, error) {
	if err := validateCorrection(field, value); err != nil {
		return nil, err
	}

	transcript, err := s.transcripts.GetTranscriptByUUID(ctx, transcriptUUID)
	if err != nil {
		return nil, fmt.Errorf("loading transcript %s: %w", transcriptUUID, err)
	}

	unlock := s.lockProject(transcript.ProjectID)
	defer unlock()

	applyCorrection(transcript, field, value)
	if err := s.transcripts.SaveTranscript(ctx, transcript); err != nil {
		return nil, fmt.Errorf("persisting corrected %s on transcript %s: %w", field, transcriptUUID, err)
	}

	return s.renumberProject(ctx, transcript.ProjectID, false)
}

// ResetAnalysis renumbers one analysis from the transcripts its identity
// sheet references and rewrites all of its sheets plus the flat membership
// array. The recomputed labels are also persisted on the referenced
// transcripts so the transcript list agrees with the analysis it belongs to.
func (s *ServiceImpl) ResetAnalysis(ctx context.Context, analysisUUID string) (map[string]string, error) {
	analysis, err := s.analyses.GetAnalysisByUUID(ctx, analysisUUID)
	if err != nil {
		return nil, fmt.Errorf("loading analysis %s: %w", analysisUUID, err)
	}

	unlock := s.lockProject(analysis.ProjectID)
	defer unlock()

	ids, err := analysis.ReferencedTranscriptIDs()
	if err != nil {
		return nil, err
	}

	transcripts, err := s.transcripts.ListTranscriptsByUUIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading transcripts for analysis %s: %w", analysisUUID, err)
	}
	byID := transcriptsByUUID(transcripts)

	// Records follow identity-sheet membership order; rows whose transcript
	// was deleted keep only their legacy label and fall to the weakest
	// ordering tier.
	records := make([]ordering.Record, 0, len(ids))
	for _, id := range ids {
		if transcript, ok := byID[id]; ok {
			records = append(records, transcriptRecord(transcript))
		} else {
			records = append(records, ordering.Record{ID: id})
		}
	}

	result := ordering.Normalize(records)

	if err := propagateToAnalysis(analysis, result); err != nil {
		return nil, err
	}
	if err := s.analyses.SaveAnalysis(ctx, analysis); err != nil {
		return nil, fmt.Errorf("persisting analysis %s: %w", analysisUUID, err)
	}

	s.persistLabels(ctx, transcripts, result.IDToNew, true)

	return result.IDToNew, nil
}

// ReassignProject renumbers every transcript in the project regardless of
// analysis membership, assigning labels to transcripts that never had one.
// Analysis documents are deliberately left alone; SyncProject reconciles
// them afterwards.
func (s *ServiceImpl) ReassignProject(ctx context.Context, projectID uint) (map[string]string, error) {
	unlock := s.lockProject(projectID)
	defer unlock()

	transcripts, err := s.transcripts.ListTranscriptsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading transcripts for project %d: %w", projectID, err)
	}

	result := ordering.Normalize(transcriptRecords(transcripts))
	s.persistLabels(ctx, transcripts, result.IDToNew, true)

	return result.IDToNew, nil
}

// SyncProject re-derives the label assignment from the transcript set and
// rewrites every analysis from its transcript-id references. Running it
// twice is a no-op; it exists to repair partial cascades.
func (s *ServiceImpl) SyncProject(ctx context.Context, projectID uint) (map[string]string, error) {
	unlock := s.lockProject(projectID)
	defer unlock()

	return s.renumberProject(ctx, projectID, false)
}

// renumberProject runs the project-wide normalization and cascades it into
// every analysis. Caller holds the project lock. When assignMissing is
// false, transcripts that never had a label stay unlabeled: labels are only
// granted on assignment.
func (s *ServiceImpl) renumberProject(ctx context.Context, projectID uint, assignMissing bool) (map[string]string, error) {
	transcripts, err := s.transcripts.ListTranscriptsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading transcripts for project %d: %w", projectID, err)
	}

	result := ordering.Normalize(transcriptRecords(transcripts))
	s.persistLabels(ctx, transcripts, result.IDToNew, assignMissing)

	analyses, err := s.analyses.ListAnalysesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading analyses for project %d: %w", projectID, err)
	}

	byID := transcriptsByUUID(transcripts)
	failed := 0
	for i := range analyses {
		analysis := &analyses[i]
		if err := s.cascadeToAnalysis(ctx, analysis, byID); err != nil {
			failed++
			log.Printf("[WARN] Cascade skipped analysis %s: %v", analysis.UUID, err)
		}
	}
	if failed > 0 {
		log.Printf("[WARN] Cascade for project %d left %d analysis document(s) stale; run sync to reconcile", projectID, failed)
	}

	return result.IDToNew, nil
}

// cascadeToAnalysis renumbers one analysis against its own membership. Each
// analysis gets its own dense R01..Rn sequence: normalization runs over the
// transcripts its identity sheet references, not over the whole project.
func (s *ServiceImpl) cascadeToAnalysis(ctx context.Context, analysis *models.ContentAnalysis, transcriptsByID map[string]*models.Transcript) error {
	ids, err := analysis.ReferencedTranscriptIDs()
	if err != nil {
		return err
	}

	records := make([]ordering.Record, 0, len(ids))
	for _, id := range ids {
		if transcript, ok := transcriptsByID[id]; ok {
			records = append(records, transcriptRecord(transcript))
		} else {
			records = append(records, ordering.Record{ID: id})
		}
	}

	result := ordering.Normalize(records)

	if err := propagateToAnalysis(analysis, result); err != nil {
		return err
	}
	if err := s.analyses.SaveAnalysis(ctx, analysis); err != nil {
		return fmt.Errorf("persisting analysis %s: %w", analysis.UUID, err)
	}
	return nil
}

// propagateToAnalysis rewrites every sheet and the flat membership array
// in memory. The identity sheet defines canonical order; secondary sheets
// are relabeled and then re-sorted as well, so a sheet's row order can never
// disagree with its own labels.
func propagateToAnalysis(analysis *models.ContentAnalysis, result ordering.Result) error {
	sheets, err := analysis.SheetMap()
	if err != nil {
		return err
	}

	for name, rows := range sheets {
		sheets[name] = propagation.Propagate(rows, result.IDToNew, result.OldToNew, result.CanonicalIndex)
	}
	if err := analysis.SetSheetMap(sheets); err != nil {
		return err
	}

	flat, err := analysis.TranscriptRows()
	if err != nil {
		return err
	}
	flat = propagation.Propagate(flat, result.IDToNew, result.OldToNew, result.CanonicalIndex)
	return analysis.SetTranscriptRows(flat)
}

// persistLabels writes recomputed labels back to transcript records. A label
// is granted to a never-labeled transcript only when assignMissing is set
// (reassign and reset; a date correction must not label unassigned
// transcripts). Individual write failures are logged and skipped.
func (s *ServiceImpl) persistLabels(ctx context.Context, transcripts []models.Transcript, idToLabel map[string]string, assignMissing bool) {
	for i := range transcripts {
		transcript := &transcripts[i]
		newLabel, ok := idToLabel[transcript.UUID]
		if !ok {
			continue
		}
		if transcript.Respno == "" && !assignMissing {
			continue
		}
		if transcript.Respno == newLabel {
			continue
		}
		transcript.Respno = newLabel
		if err := s.transcripts.SaveTranscript(ctx, transcript); err != nil {
			log.Printf("[WARN] Failed to persist label %s on transcript %s: %v", newLabel, transcript.UUID, err)
		}
	}
}

// validateCorrection rejects malformed input before any mutation. An empty
// value clears the field; a non-empty value must parse.
func validateCorrection(field, value string) error {
	switch field {
	case FieldDate:
		if value != "" {
			if _, ok := ordering.ParseDate(value); !ok {
				return pkgerrors.ValidationError("interview_date", fmt.Sprintf("unparseable date %q", value))
			}
		}
	case FieldTime:
		if value != "" {
			if _, ok := ordering.ParseTime(value); !ok {
				return pkgerrors.ValidationError("interview_time", fmt.Sprintf("unparseable time %q", value))
			}
		}
	default:
		return pkgerrors.ValidationError("field", fmt.Sprintf("must be %q or %q, got %q", FieldDate, FieldTime, field))
	}
	return nil
}

func applyCorrection(transcript *models.Transcript, field, value string) {
	if value == "" {
		if field == FieldDate {
			transcript.InterviewDate = nil
		} else {
			transcript.InterviewTime = nil
		}
		return
	}
	if field == FieldDate {
		transcript.InterviewDate = &value
	} else {
		transcript.InterviewTime = &value
	}
}

func transcriptRecord(transcript *models.Transcript) ordering.Record {
	return ordering.Record{
		ID:         transcript.UUID,
		Label:      transcript.Respno,
		Date:       transcript.DateValue(),
		Time:       transcript.TimeValue(),
		UploadedAt: transcript.UploadedAt,
	}
}

func transcriptRecords(transcripts []models.Transcript) []ordering.Record {
	records := make([]ordering.Record, len(transcripts))
	for i := range transcripts {
		records[i] = transcriptRecord(&transcripts[i])
	}
	return records
}

func transcriptsByUUID(transcripts []models.Transcript) map[string]*models.Transcript {
	byID := make(map[string]*models.Transcript, len(transcripts))
	for i := range transcripts {
		byID[transcripts[i].UUID] = &transcripts[i]
	}
	return byID
}
