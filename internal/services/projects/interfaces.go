package projects

import (
	"context"

	"github.com/fieldscope/research-api/internal/models"
)

// Repository defines the interface for project data access
type Repository interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProjectByUUID(ctx context.Context, uuid string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	DeleteProject(ctx context.Context, uuid string) error
}

// Service defines the interface for project business logic
type Service interface {
	CreateProject(ctx context.Context, name string) (*models.Project, error)
	GetProjectByUUID(ctx context.Context, uuid string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	DeleteProject(ctx context.Context, uuid string) error
}
