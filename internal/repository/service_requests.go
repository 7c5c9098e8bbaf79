package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charterpoint/transport-leads-api/internal/entity"
)

// ErrServiceRequestNotFound is returned when no service request matches the lookup.
var ErrServiceRequestNotFound = errors.New("service request not found")

// ServiceRequestsRepository declares persistence operations for service requests.
type ServiceRequestsRepository interface {
	Create(ctx context.Context, req *entity.ServiceRequest) (*entity.ServiceRequest, error)
	List(ctx context.Context) ([]entity.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error
	CountByStatus(ctx context.Context, status entity.Status) (int, error)
	Count(ctx context.Context) (int, error)
}

const serviceRequestColumns = `id, request_type, policy_number, insured_name, contact_name,
    email, phone, effective_date, details, additional_info, status, notes, created_at`

// PGXServiceRequestsRepository implements ServiceRequestsRepository with pgx.
type PGXServiceRequestsRepository struct {
	pool pgxPool
}

// NewPGXServiceRequestsRepository instantiates a service requests repository.
func NewPGXServiceRequestsRepository(pool *pgxpool.Pool) *PGXServiceRequestsRepository {
	return &PGXServiceRequestsRepository{pool: pool}
}

// Create inserts a new service request.
func (r *PGXServiceRequestsRepository) Create(ctx context.Context, req *entity.ServiceRequest) (*entity.ServiceRequest, error) {
	if req == nil {
		return nil, fmt.Errorf("service request payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO service_requests (
            request_type, policy_number, insured_name, contact_name,
            email, phone, effective_date, details, additional_info, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING `+serviceRequestColumns,
		req.RequestType, req.PolicyNumber, req.InsuredName, req.ContactName,
		req.Email, req.Phone, req.EffectiveDate, req.Details, req.AdditionalInfo, entity.StatusNew,
	)

	stored, err := scanServiceRequest(row)
	if err != nil {
		return nil, fmt.Errorf("insert service request: %w", err)
	}
	return stored, nil
}

// List returns all service requests, newest first.
func (r *PGXServiceRequestsRepository) List(ctx context.Context) ([]entity.ServiceRequest, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+serviceRequestColumns+` FROM service_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	defer rows.Close()

	var requests []entity.ServiceRequest
	for rows.Next() {
		req, err := scanServiceRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service request row: %w", err)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus sets the triage status and, when provided, the notes of a request.
func (r *PGXServiceRequestsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error {
	var (
		cmd pgconn.CommandTag
		err error
	)
	if notes != nil {
		cmd, err = r.pool.Exec(ctx, `UPDATE service_requests SET status = $1, notes = $2 WHERE id = $3`, status, *notes, id)
	} else {
		cmd, err = r.pool.Exec(ctx, `UPDATE service_requests SET status = $1 WHERE id = $2`, status, id)
	}
	if err != nil {
		return fmt.Errorf("update service request status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrServiceRequestNotFound
	}
	return nil
}

// CountByStatus counts requests in the given triage state.
func (r *PGXServiceRequestsRepository) CountByStatus(ctx context.Context, status entity.Status) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM service_requests WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count service requests by status: %w", err)
	}
	return count, nil
}

// Count counts all requests.
func (r *PGXServiceRequestsRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM service_requests`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count service requests: %w", err)
	}
	return count, nil
}

func scanServiceRequest(row pgx.Row) (*entity.ServiceRequest, error) {
	var s entity.ServiceRequest
	if err := row.Scan(
		&s.ID, &s.RequestType, &s.PolicyNumber, &s.InsuredName, &s.ContactName,
		&s.Email, &s.Phone, &s.EffectiveDate, &s.Details, &s.AdditionalInfo,
		&s.Status, &s.Notes, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
