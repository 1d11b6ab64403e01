package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// ProjectService coordinates project level operations backed by the repository.
type ProjectService interface {
	CreateProject(ctx context.Context, input domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, input domain.Project) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	DeleteProject(ctx context.Context, id string) (*domain.Project, error)
}

type projectService struct {
	projects repository.ProjectRepository
}

func NewProjectService(projects repository.ProjectRepository) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) CreateProject(ctx context.Context, input domain.Project) (*domain.Project, error) {
	input.Normalize()
	if errs := input.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	input.ID = uuid.NewString()
	if input.Tags == nil {
		input.Tags = []string{}
	}

	if err := s.projects.Create(ctx, &input); err != nil {
		return nil, err
	}
	return &input, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, input domain.Project) (*domain.Project, error) {
	input.Normalize()
	if errs := input.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	input.ID = id
	if input.Tags == nil {
		input.Tags = []string{}
	}

	if err := s.projects.Update(ctx, &input); err != nil {
		return nil, err
	}
	return s.projects.Get(ctx, id)
}

func (s *projectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.Get(ctx, id)
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) DeleteProject(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return nil, err
	}
	return project, nil
}
