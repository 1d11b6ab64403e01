package repository

import (
	"context"

	"portfolio-api/internal/domain"
)

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, contact *domain.Contact) error
	Update(ctx context.Context, contact *domain.Contact) error
	Get(ctx context.Context, id string) (*domain.Contact, error)
	// List returns all messages, newest first.
	List(ctx context.Context) ([]domain.Contact, error)
}
