package transcripts

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldscope/research-api/internal/models"
	pkgerrors "github.com/fieldscope/research-api/pkg/errors"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new transcript repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateTranscript creates a new transcript record in the database
func (r *RepositoryImpl) CreateTranscript(ctx context.Context, transcript *models.Transcript) error {
	if err := r.db.WithContext(ctx).Create(transcript).Error; err != nil {
		return fmt.Errorf("creating transcript: %w", err)
	}
	return nil
}

// GetTranscriptByUUID retrieves a transcript by its UUID
func (r *RepositoryImpl) GetTranscriptByUUID(ctx context.Context, uuid string) (*models.Transcript, error) {
	var transcript models.Transcript
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("transcript", uuid)
		}
		return nil, fmt.Errorf("getting transcript: %w", err)
	}
	return &transcript, nil
}

// ListTranscriptsByProject retrieves all transcripts for a project in
// ingestion order
func (r *RepositoryImpl) ListTranscriptsByProject(ctx context.Context, projectID uint) ([]models.Transcript, error) {
	var transcripts []models.Transcript
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("uploaded_at ASC, id ASC").
		Find(&transcripts).Error; err != nil {
		return nil, fmt.Errorf("listing transcripts for project: %w", err)
	}
	return transcripts, nil
}

// ListTranscriptsByUUIDs retrieves the transcripts matching the given UUIDs.
// Missing UUIDs are silently absent from the result.
func (r *RepositoryImpl) ListTranscriptsByUUIDs(ctx context.Context, uuids []string) ([]models.Transcript, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	var transcripts []models.Transcript
	if err := r.db.WithContext(ctx).
		Where("uuid IN ?", uuids).
		Find(&transcripts).Error; err != nil {
		return nil, fmt.Errorf("listing transcripts by uuid: %w", err)
	}
	return transcripts, nil
}

// SaveTranscript persists an updated transcript record
func (r *RepositoryImpl) SaveTranscript(ctx context.Context, transcript *models.Transcript) error {
	result := r.db.WithContext(ctx).Save(transcript)
	if result.Error != nil {
		return fmt.Errorf("saving transcript: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.NotFound("transcript", transcript.UUID)
	}
	return nil
}

// DeleteTranscript deletes a transcript by its UUID
func (r *RepositoryImpl) DeleteTranscript(ctx context.Context, uuid string) error {
	result := r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&models.Transcript{})
	if result.Error != nil {
		return fmt.Errorf("deleting transcript: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.NotFound("transcript", uuid)
	}
	return nil
}
