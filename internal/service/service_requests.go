package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/entity"
	"github.com/charterpoint/transport-leads-api/internal/metrics"
	"github.com/charterpoint/transport-leads-api/internal/repository"
)

// minDetailsLen is the minimum length of the free-text details field,
// shared by all twelve request types.
const minDetailsLen = 10

// ServiceRequestsService handles policy-service request intake and triage.
type ServiceRequestsService struct {
	requests  repository.ServiceRequestsRepository
	validator *Validator
	notifier  Notifier
}

// NewServiceRequestsService constructs a ServiceRequestsService.
func NewServiceRequestsService(requests repository.ServiceRequestsRepository, validator *Validator, notifier Notifier) *ServiceRequestsService {
	return &ServiceRequestsService{requests: requests, validator: validator, notifier: notifier}
}

// Submit validates and persists a service request. The validation rules
// are identical for every request type; only the tag itself varies.
func (s *ServiceRequestsService) Submit(ctx context.Context, req dto.ServiceRequestPayload) (*entity.ServiceRequest, error) {
	requestType := entity.RequestType(req.RequestType)
	if !requestType.Valid() {
		return nil, invalidField("requestType", "is not a recognized request type")
	}

	policyNumber, err := s.validator.Required("policyNumber", req.PolicyNumber)
	if err != nil {
		return nil, err
	}
	insuredName, err := s.validator.Required("insuredName", req.InsuredName)
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
	details, err := s.validator.MinLen("details", req.Details, minDetailsLen)
	if err != nil {
		return nil, err
	}

	stored, err := s.requests.Create(ctx, &entity.ServiceRequest{
		RequestType:    requestType,
		PolicyNumber:   policyNumber,
		InsuredName:    insuredName,
		ContactName:    contactName,
		Email:          email,
		Phone:          phone,
		EffectiveDate:  Optional(req.EffectiveDate),
		Details:        details,
		AdditionalInfo: Optional(req.AdditionalInfo),
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordServiceRequest(string(requestType))
	if s.notifier != nil {
		if err := s.notifier.NotifyNewLead(
			fmt.Sprintf("New service request (%s) for policy %s", requestType, policyNumber),
			fmt.Sprintf("Insured: %s\nContact: %s <%s>\n\n%s", insuredName, contactName, email, details),
		); err != nil {
			logNotifyFailure(err)
		}
	}
	return stored, nil
}

// List returns every service request for the dashboard.
func (s *ServiceRequestsService) List(ctx context.Context) ([]entity.ServiceRequest, error) {
	return s.requests.List(ctx)
}

// UpdateStatus moves a request to a new triage state.
func (s *ServiceRequestsService) UpdateStatus(ctx context.Context, id string, statusValue string, notes *string) error {
	requestID, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrServiceRequestNotFound
	}
	status := entity.Status(statusValue)
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.requests.UpdateStatus(ctx, requestID, status, notes); err != nil {
		return err
	}
	metrics.RecordStatusUpdate("service_request", statusValue)
	return nil
}
