package analyses

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

// NewRepository creates a new analysis repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateAnalysis creates a new analysis document in the database
func (r *RepositoryImpl) CreateAnalysis(ctx context.Context, analysis *models.ContentAnalysis) error {
	if err := r.db.WithContext(ctx).Create(analysis).Error; err != nil {
		return fmt.Errorf("creating analysis: %w", err)
	}
	return nil
}

// GetAnalysisByUUID retrieves an analysis by its UUID
func (r *RepositoryImpl) GetAnalysisByUUID(ctx context.Context, uuid string) (*models.ContentAnalysis, error) {
	var analysis models.ContentAnalysis
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("analysis", uuid)
		}
		return nil, fmt.Errorf("getting analysis: %w", err)
	}
	return &analysis, nil
}

// ListAnalysesByProject retrieves all analyses for a project in creation
// order. The order matters: first-wins tie-breaking for duplicate membership
// claims depends on a stable enumeration.
func (r *RepositoryImpl) ListAnalysesByProject(ctx context.Context, projectID uint) ([]models.ContentAnalysis, error) {
	var analyses []models.ContentAnalysis
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC, id ASC").
		Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("listing analyses for project: %w", err)
	}
	return analyses, nil
}

// SaveAnalysis persists an updated analysis document whole
func (r *RepositoryImpl) SaveAnalysis(ctx context.Context, analysis *models.ContentAnalysis) error {
	result := r.db.WithContext(ctx).Save(analysis)
	if result.Error != nil {
		return fmt.Errorf("saving analysis: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.NotFound("analysis", analysis.UUID)
	}
	return nil
}

// DeleteAnalysis deletes an analysis by its UUID
func (r *RepositoryImpl) DeleteAnalysis(ctx context.Context, uuid string) error {
	result := r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&models.ContentAnalysis{})
	if result.Error != nil {
		return fmt.Errorf("deleting analysis: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.NotFound("analysis", uuid)
	}
	return nil
}
