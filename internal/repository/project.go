package repository

import (
	"context"
	"errors"

	"portfolio-api/internal/domain"
)

// ErrNotFound is returned when an operation targets a record that does not exist.
var ErrNotFound = errors.New("record not found")

// ProjectRepository defines persistence operations for Project entities.
type ProjectRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Project, error)
	// List returns all projects, featured entries first, then by ascending
	// display order, then newest first.
	List(ctx context.Context) ([]domain.Project, error)
}
