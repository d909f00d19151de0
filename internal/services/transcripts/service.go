package transcripts

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldscope/research-api/internal/models"
	"github.com/fieldscope/research-api/internal/services/assignment"
	"github.com/fieldscope/research-api/internal/services/consistency"
	"github.com/fieldscope/research-api/internal/services/ordering"
	pkgerrors "github.com/fieldscope/research-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository  Repository
	analyses    consistency.AnalysisStore
	coordinator consistency.Service
}

// NewService creates a new transcript service
func NewService(repository Repository, analyses consistency.AnalysisStore, coordinator consistency.Service) Service {
	return &ServiceImpl{
		repository:  repository,
		analyses:    analyses,
		coordinator: coordinator,
	}
}

// Ingest registers one uploaded transcript's metadata. Interview date and
// time are optional, but when present they must parse; the ingestion
// timestamp is stamped here and is the ordering fallback for records whose
// interview metadata is missing.
func (s *ServiceImpl) Ingest(ctx context.Context, projectID uint, filename, interviewDate, interviewTime string) (*models.Transcript, error) {
	if projectID == 0 {
		return nil, pkgerrors.MissingFieldError("project_id")
	}
	if interviewDate != "" {
		if _, ok := ordering.ParseDate(interviewDate); !ok {
			return nil, pkgerrors.ValidationError("interview_date", fmt.Sprintf("unparseable date %q", interviewDate))
		}
	}
	if interviewTime != "" {
		if _, ok := ordering.ParseTime(interviewTime); !ok {
			return nil, pkgerrors.ValidationError("interview_time", fmt.Sprintf("unparseable time %q", interviewTime))
		}
	}

	transcript := &models.Transcript{
		ProjectID:  projectID,
		Filename:   filename,
		UploadedAt: time.Now().UTC(),
	}
	if interviewDate != "" {
		transcript.InterviewDate = &interviewDate
	}
	if interviewTime != "" {
		transcript.InterviewTime = &interviewTime
	}

	if err := s.repository.CreateTranscript(ctx, transcript); err != nil {
		return nil, err
	}
	return transcript, nil
}

// GetTranscriptByUUID retrieves a transcript by its UUID
func (s *ServiceImpl) GetTranscriptByUUID(ctx context.Context, uuid string) (*models.Transcript, error) {
	return s.repository.GetTranscriptByUUID(ctx, uuid)
}

// ListByProject lists the project's transcripts decorated with their
// assignment state for the assigned-vs-unassigned view.
func (s *ServiceImpl) ListByProject(ctx context.Context, projectID uint) ([]ProjectView, error) {
	transcripts, err := s.repository.ListTranscriptsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	analyses, err := s.analyses.ListAnalysesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	views := make([]ProjectView, len(transcripts))
	for i, transcript := range transcripts {
		owner, assigned := assignment.Owner(transcript, analyses)
		views[i] = ProjectView{
			Transcript:   transcript,
			Assigned:     assigned,
			AnalysisUUID: owner,
		}
	}
	return views, nil
}

// CorrectDateTime corrects one interview date or time and cascades the
// renumbering across the project
func (s *ServiceImpl) CorrectDateTime(ctx context.Context, transcriptUUID, field, value string) (map[string]string, error) {
	return s.coordinator.OnDateTimeCorrected(ctx, transcriptUUID, field, value)
}

// DeleteTranscript deletes a transcript. Analysis rows that still reference
// it become dangling and sort last on the next reset or sync; they are not
// chased here.
func (s *ServiceImpl) DeleteTranscript(ctx context.Context, uuid string) error {
	return s.repository.DeleteTranscript(ctx, uuid)
}
