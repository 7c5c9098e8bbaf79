package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/entity"
	"github.com/charterpoint/transport-leads-api/internal/intake"
	"github.com/charterpoint/transport-leads-api/internal/metrics"
	"github.com/charterpoint/transport-leads-api/internal/repository"
)

// ErrInvalidStatus is returned when a status update names an unknown
// triage state. Unknown values are never persisted.
var ErrInvalidStatus = errors.New("invalid status value")

// Notifier delivers intake notifications. Failures are logged, never
// surfaced to the submitting form.
type Notifier interface {
	NotifyNewLead(subject, body string) error
}

// QuotesService handles quote intake and triage for both the
// generalized transport_quotes table and the per-line tables.
type QuotesService struct {
	quotes    repository.QuotesRepository
	lines     repository.LineQuotesRepository
	validator *Validator
	notifier  Notifier
	now       func() time.Time
}

// NewQuotesService constructs a QuotesService.
func NewQuotesService(quotes repository.QuotesRepository, lines repository.LineQuotesRepository, validator *Validator, notifier Notifier) *QuotesService {
	return &QuotesService{
		quotes:    quotes,
		lines:     lines,
		validator: validator,
		notifier:  notifier,
		now:       time.Now,
	}
}

// SubmitTransportQuote validates and persists a generalized quote
// request and returns the stored record with its reference number.
func (s *QuotesService) SubmitTransportQuote(ctx context.Context, req dto.TransportQuoteRequest) (*entity.TransportQuote, error) {
	quoteType := strings.TrimSpace(req.QuoteType)
	if !intake.ValidTransportQuoteType(quoteType) {
		return nil, invalidField("quoteType", "is not a recognized coverage line")
	}

	businessName, err := s.validator.Required("businessName", req.BusinessName)
	if err != nil {
		return nil, err
	}
	contactName, err := s.validator.Required("contactName", req.ContactName)
	if err != nil {
		return nil, err
	}
	email, err := s.validator.Email("email", req.Email)
	if err != nil {
		return nil, err
	}
	phone, err := s.validator.Phone("phone", req.Phone)
	if err != nil {
		return nil, err
	}

	quote := &entity.TransportQuote{
		ReferenceNumber:   NewReferenceNumber("TRQ", s.now()),
		QuoteType:         quoteType,
		BusinessName:      businessName,
		DBA:               Optional(req.DBA),
		ContactName:       contactName,
		Email:             email,
		Phone:             phone,
		Website:           Optional(req.Website),
		Street:            Optional(req.Street),
		City:              Optional(req.City),
		State:             Optional(req.State),
		Zip:               Optional(req.Zip),
		CPUCNumber:        Optional(req.CPUCNumber),
		TCPNumber:         Optional(req.TCPNumber),
		EffectiveDate:     Optional(req.EffectiveDate),
		LiabilityLimit:    Optional(req.LiabilityLimit),
		CurrentCarrier:    Optional(req.CurrentCarrier),
		CurrentPremium:    Optional(req.CurrentPremium),
		ExpirationDate:    Optional(req.ExpirationDate),
		OperatingRadius:   Optional(req.OperatingRadius),
		StatesOfOperation: Optional(req.StatesOfOperation),
		FilingsNeeded:     req.FilingsNeeded,
		VehicleInfo:       Optional(req.VehicleInfo),
		DriverInfo:        Optional(req.DriverInfo),
		LossHistory:       Optional(req.LossHistory),
		Documents:         req.Documents,
		AdditionalInfo:    Optional(req.AdditionalInfo),
	}

	stored, err := s.quotes.Create(ctx, quote)
	if err != nil {
		return nil, err
	}

	metrics.RecordQuoteSubmission(quoteType)
	s.notify(
		fmt.Sprintf("New %s quote %s", quoteType, stored.ReferenceNumber),
		fmt.Sprintf("Business: %s\nContact: %s\nEmail: %s\nPhone: %s", businessName, contactName, email, phone),
	)
	return stored, nil
}

// SubmitLineQuote validates and persists a quote into the line's table.
func (s *QuotesService) SubmitLineQuote(ctx context.Context, line intake.Line, req dto.LineQuoteRequest) (*entity.LineQuote, error) {
	businessName, err := s.validator.Required("businessName", req.BusinessName)
	if err != nil {
		return nil, err
	}
	contactName, err := s.validator.Required("contactName", req.ContactName)
	if err != nil {
		return nil, err
	}
	email, err := s.validator.Email("email", req.Email)
	if err != nil {
		return nil, err
	}
	phone, err := s.validator.Phone("phone", req.Phone)
	if err != nil {
		return nil, err
	}

	quote := &entity.LineQuote{
		ReferenceNumber: NewReferenceNumber(line.RefPrefix, s.now()),
		BusinessName:    businessName,
		DBA:             Optional(req.DBA),
		ContactName:     contactName,
		Email:           email,
		Phone:           phone,
		Address:         combineAddress(req.Street, req.City, req.State, req.Zip),
		EffectiveDate:   Optional(req.EffectiveDate),
		LiabilityLimit:  Optional(req.LiabilityLimit),
		CurrentCarrier:  Optional(req.CurrentCarrier),
		Documents:       req.Documents,
		AdditionalInfo:  Optional(req.AdditionalInfo),
	}

	stored, err := s.lines.Create(ctx, line, quote)
	if err != nil {
		return nil, err
	}

	metrics.RecordQuoteSubmission(line.Tag)
	s.notify(
		fmt.Sprintf("New %s quote %s", line.Display, stored.ReferenceNumber),
		fmt.Sprintf("Business: %s\nContact: %s\nEmail: %s\nPhone: %s", businessName, contactName, email, phone),
	)
	return stored, nil
}

// ListQuotes returns every transport quote for the dashboard.
func (s *QuotesService) ListQuotes(ctx context.Context) ([]entity.TransportQuote, error) {
	return s.quotes.List(ctx)
}

// UpdateStatus moves a quote to a new triage state, optionally
// replacing its notes. The closed status set is enforced here so
// invalid values never reach storage.
func (s *QuotesService) UpdateStatus(ctx context.Context, id string, statusValue string, notes *string) error {
	quoteID, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrQuoteNotFound
	}
	status := entity.Status(statusValue)
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.quotes.UpdateStatus(ctx, quoteID, status, notes); err != nil {
		return err
	}
	metrics.RecordStatusUpdate("quote", statusValue)
	return nil
}

func (s *QuotesService) notify(subject, body string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyNewLead(subject, body); err != nil {
		logNotifyFailure(err)
	}
}

func logNotifyFailure(err error) {
	log.Printf("intake notification failed: %v", err)
}

// combineAddress folds the form's street/city/state/zip inputs into the
// single address column the per-line tables carry.
func combineAddress(street, city, state, zip string) *string {
	parts := make([]string, 0, 4)
	for _, part := range []string{street, city, state, zip} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	combined := strings.Join(parts, ", ")
	return &combined
}
