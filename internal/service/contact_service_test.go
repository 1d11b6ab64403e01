package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

type fakeContactRepo struct {
	createFn func(ctx context.Context, c *domain.Contact) error
	updateFn func(ctx context.Context, c *domain.Contact) error
	getFn    func(ctx context.Context, id string) (*domain.Contact, error)
	listFn   func(ctx context.Context) ([]domain.Contact, error)
}

func (f *fakeContactRepo) Init(ctx context.Context) error { return nil }

func (f *fakeContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeContactRepo) Update(ctx context.Context, c *domain.Contact) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, c)
	}
	return nil
}

func (f *fakeContactRepo) Get(ctx context.Context, id string) (*domain.Contact, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestContactService_SubmitMessage(t *testing.T) {
	var stored *domain.Contact
	repo := &fakeContactRepo{
		createFn: func(ctx context.Context, c *domain.Contact) error {
			stored = c
			return nil
		},
	}
	svc := NewContactService(repo, quietLogger())

	contact, err := svc.SubmitMessage(context.Background(), domain.Contact{
		Name:    "  Jordan ",
		Email:   " Jordan@Example.COM ",
		Message: "hello there",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "Jordan", contact.Name)
	assert.Equal(t, "jordan@example.com", contact.Email)
	assert.Equal(t, domain.ContactStatusNew, contact.Status)
}

func TestContactService_SubmitMessage_Invalid(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{}, quietLogger())

	_, err := svc.SubmitMessage(context.Background(), domain.Contact{Name: "Jordan"})
	require.Error(t, err)
	v, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Please provide name, email, and message"}, v.Messages)
}

func TestContactService_SubmitMessage_PersistenceFailureStillSucceeds(t *testing.T) {
	repo := &fakeContactRepo{
		createFn: func(ctx context.Context, c *domain.Contact) error {
			return errors.New("database is down")
		},
	}
	svc := NewContactService(repo, quietLogger())

	contact, err := svc.SubmitMessage(context.Background(), domain.Contact{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Message: "hello there",
	})
	require.NoError(t, err, "a failed insert must not surface to the visitor")
	assert.True(t, strings.HasPrefix(contact.ID, "temp-"), "fallback record carries a temp id, got %q", contact.ID)
	assert.Equal(t, "jordan@example.com", contact.Email)
}

func TestContactService_UpdateStatus(t *testing.T) {
	existing := &domain.Contact{ID: "c1", Status: domain.ContactStatusNew}
	var updated *domain.Contact
	repo := &fakeContactRepo{
		getFn: func(ctx context.Context, id string) (*domain.Contact, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, c *domain.Contact) error {
			updated = c
			return nil
		},
	}
	svc := NewContactService(repo, quietLogger())

	contact, err := svc.UpdateStatus(context.Background(), "c1", domain.ContactStatusRead)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, domain.ContactStatusRead, contact.Status)
	require.NotNil(t, contact.ReadAt)

	// a second read must not move the original read timestamp
	firstRead := *contact.ReadAt
	contact2, err := svc.UpdateStatus(context.Background(), "c1", domain.ContactStatusRead)
	require.NoError(t, err)
	assert.Equal(t, firstRead, *contact2.ReadAt)

	// replying stamps repliedAt
	contact3, err := svc.UpdateStatus(context.Background(), "c1", domain.ContactStatusReplied)
	require.NoError(t, err)
	assert.NotNil(t, contact3.RepliedAt)
}

func TestContactService_UpdateStatus_Invalid(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{}, quietLogger())

	_, err := svc.UpdateStatus(context.Background(), "c1", "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestContactService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{}, quietLogger())

	_, err := svc.UpdateStatus(context.Background(), "missing", domain.ContactStatusRead)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
