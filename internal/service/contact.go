package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/entity"
	"github.com/charterpoint/transport-leads-api/internal/metrics"
	"github.com/charterpoint/transport-leads-api/internal/repository"
)

const defaultSubject = "General Inquiry"

// ContactService handles contact-form submissions and their triage.
type ContactService struct {
	contacts  repository.ContactsRepository
	validator *Validator
	notifier  Notifier
}

// NewContactService constructs a ContactService.
func NewContactService(contacts repository.ContactsRepository, validator *Validator, notifier Notifier) *ContactService {
	return &ContactService{contacts: contacts, validator: validator, notifier: notifier}
}

// Submit validates and persists a contact message.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactRequest) (*entity.ContactMessage, error) {
	name, err := s.validator.Required("name", req.Name)
	if err != nil {
		return nil, err
	}
	email, err := s.validator.Email("email", req.Email)
	if err != nil {
		return nil, err
	}
	message, err := s.validator.Required("message", req.Message)
	if err != nil {
		return nil, err
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = defaultSubject
	}

	var phone *string
	if trimmed := strings.TrimSpace(req.Phone); trimmed != "" {
		normalized, err := s.validator.Phone("phone", trimmed)
		if err != nil {
			return nil, err
		}
		phone = &normalized
	}

	stored, err := s.contacts.Create(ctx, &entity.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordContactSubmission()
	if s.notifier != nil {
		if err := s.notifier.NotifyNewLead(
			fmt.Sprintf("New contact message: %s", subject),
			fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message),
		); err != nil {
			// contained: a lost notification must not fail the submission
			logNotifyFailure(err)
		}
	}
	return stored, nil
}

// List returns every contact message for the dashboard.
func (s *ContactService) List(ctx context.Context) ([]entity.ContactMessage, error) {
	return s.contacts.List(ctx)
}

// UpdateStatus moves a message to a new triage state.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, statusValue string, notes *string) error {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrContactNotFound
	}
	status := entity.Status(statusValue)
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.contacts.UpdateStatus(ctx, contactID, status, notes); err != nil {
		return err
	}
	metrics.RecordStatusUpdate("contact", statusValue)
	return nil
}
