package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charterpoint/transport-leads-api/internal/entity"
)

var (
	// ErrQuoteNotFound is returned when no quote matches the lookup criteria.
	ErrQuoteNotFound = errors.New("quote not found")
	// ErrReferenceDuplicate indicates a reference-number collision.
	ErrReferenceDuplicate = errors.New("reference number already exists")
)

// QuotesRepository declares persistence operations for transport quotes.
type QuotesRepository interface {
	Create(ctx context.Context, quote *entity.TransportQuote) (*entity.TransportQuote, error)
	List(ctx context.Context) ([]entity.TransportQuote, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportQuote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error
	CountByStatus(ctx context.Context, status entity.Status) (int, error)
	Count(ctx context.Context) (int, error)
}

const quoteColumns = `id, reference_number, quote_type, status, notes,
    business_name, dba, contact_name, email, phone, website,
    street, city, state, zip, cpuc_number, tcp_number,
    effective_date, liability_limit, current_carrier, current_premium,
    expiration_date, operating_radius, states_of_operation, filings_needed,
    vehicle_info, driver_info, loss_history, documents, additional_info, created_at`

// PGXQuotesRepository implements QuotesRepository with pgx.
type PGXQuotesRepository struct {
	pool pgxPool
}

// NewPGXQuotesRepository instantiates a transport quotes repository.
func NewPGXQuotesRepository(pool *pgxpool.Pool) *PGXQuotesRepository {
	return &PGXQuotesRepository{pool: pool}
}

// Create inserts a new quote row and returns the stored record.
func (r *PGXQuotesRepository) Create(ctx context.Context, quote *entity.TransportQuote) (*entity.TransportQuote, error) {
	if quote == nil {
		return nil, fmt.Errorf("quote payload is nil")
	}

	filings := quote.FilingsNeeded
	if filings == nil {
		filings = []string{}
	}
	documents := quote.Documents
	if documents == nil {
		documents = []string{}
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO transport_quotes (
            reference_number, quote_type, status,
            business_name, dba, contact_name, email, phone, website,
            street, city, state, zip, cpuc_number, tcp_number,
            effective_date, liability_limit, current_carrier, current_premium,
            expiration_date, operating_radius, states_of_operation, filings_needed,
            vehicle_info, driver_info, loss_history, documents, additional_info
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
            $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28
        )
        RETURNING `+quoteColumns,
		quote.ReferenceNumber, quote.QuoteType, entity.StatusNew,
		quote.BusinessName, quote.DBA, quote.ContactName, quote.Email, quote.Phone, quote.Website,
		quote.Street, quote.City, quote.State, quote.Zip, quote.CPUCNumber, quote.TCPNumber,
		quote.EffectiveDate, quote.LiabilityLimit, quote.CurrentCarrier, quote.CurrentPremium,
		quote.ExpirationDate, quote.OperatingRadius, quote.StatesOfOperation, filings,
		quote.VehicleInfo, quote.DriverInfo, quote.LossHistory, documents, quote.AdditionalInfo,
	)

	stored, err := scanQuote(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.Message, "reference_number") {
			return nil, fmt.Errorf("%w: %v", ErrReferenceDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert quote: %w", err)
	}
	return stored, nil
}

// List returns all quotes, newest first. The dashboard renders the full
// set; no pagination is applied.
func (r *PGXQuotesRepository) List(ctx context.Context) ([]entity.TransportQuote, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+quoteColumns+` FROM transport_quotes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []entity.TransportQuote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote row: %w", err)
		}
		quotes = append(quotes, *quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}
	return quotes, nil
}

// FindByID retrieves a quote by identifier.
func (r *PGXQuotesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportQuote, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM transport_quotes WHERE id = $1`, id)

	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuoteNotFound
		}
		return nil, fmt.Errorf("query quote by id: %w", err)
	}
	return quote, nil
}

// UpdateStatus sets the triage status and, when provided, the notes of a quote.
func (r *PGXQuotesRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error {
	var (
		cmd pgconn.CommandTag
		err error
	)
	if notes != nil {
		cmd, err = r.pool.Exec(ctx, `UPDATE transport_quotes SET status = $1, notes = $2 WHERE id = $3`, status, *notes, id)
	} else {
		cmd, err = r.pool.Exec(ctx, `UPDATE transport_quotes SET status = $1 WHERE id = $2`, status, id)
	}
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrQuoteNotFound
	}
	return nil
}

// CountByStatus counts quotes in the given triage state.
func (r *PGXQuotesRepository) CountByStatus(ctx context.Context, status entity.Status) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transport_quotes WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count quotes by status: %w", err)
	}
	return count, nil
}

// Count counts all quotes.
func (r *PGXQuotesRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transport_quotes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return count, nil
}

func scanQuote(row pgx.Row) (*entity.TransportQuote, error) {
	var q entity.TransportQuote
	if err := row.Scan(
		&q.ID, &q.ReferenceNumber, &q.QuoteType, &q.Status, &q.Notes,
		&q.BusinessName, &q.DBA, &q.ContactName, &q.Email, &q.Phone, &q.Website,
		&q.Street, &q.City, &q.State, &q.Zip, &q.CPUCNumber, &q.TCPNumber,
		&q.EffectiveDate, &q.LiabilityLimit, &q.CurrentCarrier, &q.CurrentPremium,
		&q.ExpirationDate, &q.OperatingRadius, &q.StatesOfOperation, &q.FilingsNeeded,
		&q.VehicleInfo, &q.DriverInfo, &q.LossHistory, &q.Documents, &q.AdditionalInfo, &q.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &q, nil
}
