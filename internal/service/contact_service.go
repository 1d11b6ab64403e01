package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// ContactService handles contact form intake and the message status lifecycle.
type ContactService interface {
	// SubmitMessage validates and stores an inbound message. Persistence
	// failures are deliberately swallowed: the message is logged and a
	// fallback record returned so the visitor still sees success.
	SubmitMessage(ctx context.Context, input domain.Contact) (*domain.Contact, error)
	ListMessages(ctx context.Context) ([]domain.Contact, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error)
}

type contactService struct {
	contacts repository.ContactRepository
	logger   *logrus.Logger
}

func NewContactService(contacts repository.ContactRepository, logger *logrus.Logger) ContactService {
	return &contactService{
		contacts: contacts,
		logger:   logger,
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, input domain.Contact) (*domain.Contact, error) {
	input.Normalize()
	if msg := input.Validate(); msg != "" {
		return nil, &ValidationError{Messages: []string{msg}}
	}

	input.ID = uuid.NewString()
	input.Status = domain.ContactStatusNew

	s.logger.WithFields(logrus.Fields{
		"name":  input.Name,
		"email": input.Email,
	}).Info("new contact message")

	if err := s.contacts.Create(ctx, &input); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"name":    input.Name,
			"email":   input.Email,
			"message": input.Message,
		}).Warn("contact message not persisted, continuing without database")

		now := time.Now().UTC()
		return &domain.Contact{
			ID:        fmt.Sprintf("temp-%d", now.UnixMilli()),
			Name:      input.Name,
			Email:     input.Email,
			Message:   input.Message,
			Status:    domain.ContactStatusNew,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	}

	return &input, nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *contactService) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	if !domain.ValidContactStatus(status) {
		return nil, ErrInvalidStatus
	}

	contact, err := s.contacts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	contact.Status = status
	if status == domain.ContactStatusRead && contact.ReadAt == nil {
		contact.ReadAt = &now
	}
	if status == domain.ContactStatusReplied {
		contact.RepliedAt = &now
	}

	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}
