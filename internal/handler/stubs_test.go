package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/charterpoint/transport-leads-api/internal/entity"
	"github.com/charterpoint/transport-leads-api/internal/intake"
	"github.com/charterpoint/transport-leads-api/internal/repository"
)

type stubQuotesRepo struct {
	create        func(ctx context.Context, quote *entity.TransportQuote) (*entity.TransportQuote, error)
	list          func(ctx context.Context) ([]entity.TransportQuote, error)
	updateStatus  func(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error
	count         func(ctx context.Context) (int, error)
	countByStatus func(ctx context.Context, status entity.Status) (int, error)
}

func (s *stubQuotesRepo) Create(ctx context.Context, quote *entity.TransportQuote) (*entity.TransportQuote, error) {
	if s.create != nil {
		return s.create(ctx, quote)
	}
	return nil, errors.New("not implemented")
}

func (s *stubQuotesRepo) List(ctx context.Context) ([]entity.TransportQuote, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, errors.New("not implemented")
}

func (s *stubQuotesRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportQuote, error) {
	return nil, errors.New("not implemented")
}

func (s *stubQuotesRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error {
	if s.updateStatus != nil {
		return s.updateStatus(ctx, id, status, notes)
	}
	return errors.New("not implemented")
}

func (s *stubQuotesRepo) Count(ctx context.Context) (int, error) {
	if s.count != nil {
		return s.count(ctx)
	}
	return 0, errors.New("not implemented")
}

func (s *stubQuotesRepo) CountByStatus(ctx context.Context, status entity.Status) (int, error) {
	if s.countByStatus != nil {
		return s.countByStatus(ctx, status)
	}
	return 0, errors.New("not implemented")
}

type stubLineQuotesRepo struct {
	create func(ctx context.Context, line intake.Line, quote *entity.LineQuote) (*entity.LineQuote, error)
}

func (s *stubLineQuotesRepo) Create(ctx context.Context, line intake.Line, quote *entity.LineQuote) (*entity.LineQuote, error) {
	if s.create != nil {
		return s.create(ctx, line, quote)
	}
	return nil, errors.New("not implemented")
}

func (s *stubLineQuotesRepo) List(ctx context.Context, line intake.Line) ([]entity.LineQuote, error) {
	return nil, errors.New("not implemented")
}

type stubContactsRepo struct {
	create        func(ctx context.Context, msg *entity.ContactMessage) (*entity.ContactMessage, error)
	list          func(ctx context.Context) ([]entity.ContactMessage, error)
	updateStatus  func(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error
	count         func(ctx context.Context) (int, error)
	countByStatus func(ctx context.Context, status entity.Status) (int, error)
}

func (s *stubContactsRepo) Create(ctx context.Context, msg *entity.ContactMessage) (*entity.ContactMessage, error) {
	if s.create != nil {
		return s.create(ctx, msg)
	}
	return nil, errors.New("not implemented")
}

func (s *stubContactsRepo) List(ctx context.Context) ([]entity.ContactMessage, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, errors.New("not implemented")
}

func (s *stubContactsRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error {
	if s.updateStatus != nil {
		return s.updateStatus(ctx, id, status, notes)
	}
	return errors.New("not implemented")
}

func (s *stubContactsRepo) Count(ctx context.Context) (int, error) {
	if s.count != nil {
		return s.count(ctx)
	}
	return 0, errors.New("not implemented")
}

func (s *stubContactsRepo) CountByStatus(ctx context.Context, status entity.Status) (int, error) {
	if s.countByStatus != nil {
		return s.countByStatus(ctx, status)
	}
	return 0, errors.New("not implemented")
}

type stubServiceRequestsRepo struct {
	create        func(ctx context.Context, req *entity.ServiceRequest) (*entity.ServiceRequest, error)
	list          func(ctx context.Context) ([]entity.ServiceRequest, error)
	updateStatus  func(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error
	count         func(ctx context.Context) (int, error)
	countByStatus func(ctx context.Context, status entity.Status) (int, error)
}

func (s *stubServiceRequestsRepo) Create(ctx context.Context, req *entity.ServiceRequest) (*entity.ServiceRequest, error) {
	if s.create != nil {
		return s.create(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (s *stubServiceRequestsRepo) List(ctx context.Context) ([]entity.ServiceRequest, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, errors.New("not implemented")
}

func (s *stubServiceRequestsRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error {
	if s.updateStatus != nil {
		return s.updateStatus(ctx, id, status, notes)
	}
	return errors.New("not implemented")
}

func (s *stubServiceRequestsRepo) Count(ctx context.Context) (int, error) {
	if s.count != nil {
		return s.count(ctx)
	}
	return 0, errors.New("not implemented")
}

func (s *stubServiceRequestsRepo) CountByStatus(ctx context.Context, status entity.Status) (int, error) {
	if s.countByStatus != nil {
		return s.countByStatus(ctx, status)
	}
	return 0, errors.New("not implemented")
}

type stubAdminUsersRepo struct {
	findByEmail func(ctx context.Context, email string) (*entity.AdminUser, error)
	create      func(ctx context.Context, email, passwordHash, displayName, role string) (*entity.AdminUser, error)
	list        func(ctx context.Context) ([]entity.AdminUser, error)
	update      func(ctx context.Context, id uuid.UUID, fields repository.AdminUserUpdate) (*entity.AdminUser, error)
	deleteFn    func(ctx context.Context, id uuid.UUID) error
}

func (s *stubAdminUsersRepo) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	if s.findByEmail != nil {
		return s.findByEmail(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (s *stubAdminUsersRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAdminUsersRepo) Create(ctx context.Context, email, passwordHash, displayName, role string) (*entity.AdminUser, error) {
	if s.create != nil {
		return s.create(ctx, email, passwordHash, displayName, role)
	}
	return nil, errors.New("not implemented")
}

func (s *stubAdminUsersRepo) List(ctx context.Context) ([]entity.AdminUser, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, errors.New("not implemented")
}

func (s *stubAdminUsersRepo) Update(ctx context.Context, id uuid.UUID, fields repository.AdminUserUpdate) (*entity.AdminUser, error) {
	if s.update != nil {
		return s.update(ctx, id, fields)
	}
	return nil, errors.New("not implemented")
}

func (s *stubAdminUsersRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

func (s *stubAdminUsersRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	return nil
}

type stubAnalyticsRepo struct {
	recordPageView func(ctx context.Context, view *entity.PageView) error
	upsertSession  func(ctx context.Context, session *entity.VisitorSession) error
}

func (s *stubAnalyticsRepo) RecordPageView(ctx context.Context, view *entity.PageView) error {
	if s.recordPageView != nil {
		return s.recordPageView(ctx, view)
	}
	return nil
}

func (s *stubAnalyticsRepo) UpsertSession(ctx context.Context, session *entity.VisitorSession) error {
	if s.upsertSession != nil {
		return s.upsertSession(ctx, session)
	}
	return nil
}
