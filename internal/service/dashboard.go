package service

import (
	"context"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/entity"
	"github.com/charterpoint/transport-leads-api/internal/repository"
)

// DashboardService aggregates counts and row sets for the admin
// dashboard. Reads are unbounded; the dashboard renders everything.
type DashboardService struct {
	quotes   repository.QuotesRepository
	contacts repository.ContactsRepository
	requests repository.ServiceRequestsRepository
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(quotes repository.QuotesRepository, contacts repository.ContactsRepository, requests repository.ServiceRequestsRepository) *DashboardService {
	return &DashboardService{quotes: quotes, contacts: contacts, requests: requests}
}

// Stats returns total and new counts per entity type.
func (s *DashboardService) Stats(ctx context.Context) (dto.DashboardStats, error) {
	var stats dto.DashboardStats
	var err error

	if stats.TotalQuotes, err = s.quotes.Count(ctx); err != nil {
		return dto.DashboardStats{}, err
	}
	if stats.NewQuotes, err = s.quotes.CountByStatus(ctx, entity.StatusNew); err != nil {
		return dto.DashboardStats{}, err
	}
	if stats.TotalContacts, err = s.contacts.Count(ctx); err != nil {
		return dto.DashboardStats{}, err
	}
	if stats.NewContacts, err = s.contacts.CountByStatus(ctx, entity.StatusNew); err != nil {
		return dto.DashboardStats{}, err
	}
	if stats.TotalServiceRequests, err = s.requests.Count(ctx); err != nil {
		return dto.DashboardStats{}, err
	}
	if stats.NewServiceRequests, err = s.requests.CountByStatus(ctx, entity.StatusNew); err != nil {
		return dto.DashboardStats{}, err
	}

	return stats, nil
}

// All returns the complete triage data set.
func (s *DashboardService) All(ctx context.Context) (dto.DashboardData, error) {
	quotes, err := s.quotes.List(ctx)
	if err != nil {
		return dto.DashboardData{}, err
	}
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return dto.DashboardData{}, err
	}
	requests, err := s.requests.List(ctx)
	if err != nil {
		return dto.DashboardData{}, err
	}

	// empty slices keep the JSON arrays present rather than null
	if quotes == nil {
		quotes = []entity.TransportQuote{}
	}
	if contacts == nil {
		contacts = []entity.ContactMessage{}
	}
	if requests == nil {
		requests = []entity.ServiceRequest{}
	}

	return dto.DashboardData{Quotes: quotes, Contacts: contacts, ServiceRequests: requests}, nil
}
