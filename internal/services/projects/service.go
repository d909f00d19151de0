package projects

import (
	"context"
	"strings"

	"github.com/fieldscope/research-api/internal/models"
	pkgerrors "github.com/fieldscope/research-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new project service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// CreateProject creates a new project
func (s *ServiceImpl) CreateProject(ctx context.Context, name string) (*models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, pkgerrors.MissingFieldError("name")
	}

	project := &models.Project{Name: strings.TrimSpace(name), Status: "active"}
	if err := s.repository.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProjectByUUID retrieves a project by its UUID
func (s *ServiceImpl) GetProjectByUUID(ctx context.Context, uuid string) (*models.Project, error) {
	return s.repository.GetProjectByUUID(ctx, uuid)
}

// ListProjects retrieves all projects
func (s *ServiceImpl) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.repository.ListProjects(ctx)
}

// DeleteProject deletes a project by its UUID
func (s *ServiceImpl) DeleteProject(ctx context.Context, uuid string) error {
	return s.repository.DeleteProject(ctx, uuid)
}
