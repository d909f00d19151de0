package projects

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

// NewRepository creates a new project repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateProject creates a new project in the database
func (r *RepositoryImpl) CreateProject(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	return nil
}

// GetProjectByUUID retrieves a project by its UUID
func (r *RepositoryImpl) GetProjectByUUID(ctx context.Context, uuid string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("project", uuid)
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return &project, nil
}

// ListProjects retrieves all projects in creation order
func (r *RepositoryImpl) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// DeleteProject deletes a project by its UUID
func (r *RepositoryImpl) DeleteProject(ctx context.Context, uuid string) error {
	result := r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&models.Project{})
	if result.Error != nil {
		return fmt.Errorf("deleting project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.NotFound("project", uuid)
	}
	return nil
}
