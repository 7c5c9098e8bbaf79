package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charterpoint/transport-leads-api/internal/entity"
	"github.com/charterpoint/transport-leads-api/internal/intake"
)

// LineQuotesRepository persists quotes into the per-line tables. The
// line configuration supplies the table name; only registry entries
// ever reach SQL, so the table identifier is never caller-controlled.
type LineQuotesRepository interface {
	Create(ctx context.Context, line intake.Line, quote *entity.LineQuote) (*entity.LineQuote, error)
	List(ctx context.Context, line intake.Line) ([]entity.LineQuote, error)
}

const lineQuoteColumns = `id, reference_number, status, business_name, dba,
    contact_name, email, phone, address, effective_date, liability_limit,
    current_carrier, documents, additional_info, created_at`

// PGXLineQuotesRepository implements LineQuotesRepository with pgx.
type PGXLineQuotesRepository struct {
	pool pgxPool
}

// NewPGXLineQuotesRepository instantiates a per-line quotes repository.
func NewPGXLineQuotesRepository(pool *pgxpool.Pool) *PGXLineQuotesRepository {
	return &PGXLineQuotesRepository{pool: pool}
}

// Create inserts a quote into the line's table.
func (r *PGXLineQuotesRepository) Create(ctx context.Context, line intake.Line, quote *entity.LineQuote) (*entity.LineQuote, error) {
	if quote == nil {
		return nil, fmt.Errorf("quote payload is nil")
	}

	documents := quote.Documents
	if documents == nil {
		documents = []string{}
	}

	query := fmt.Sprintf(`
        INSERT INTO %s (
            reference_number, status, business_name, dba, contact_name,
            email, phone, address, effective_date, liability_limit,
            current_carrier, documents, additional_info
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING `+lineQuoteColumns, line.Table)

	row := r.pool.QueryRow(ctx, query,
		quote.ReferenceNumber, entity.StatusNew, quote.BusinessName, quote.DBA, quote.ContactName,
		quote.Email, quote.Phone, quote.Address, quote.EffectiveDate, quote.LiabilityLimit,
		quote.CurrentCarrier, documents, quote.AdditionalInfo,
	)

	stored, err := scanLineQuote(row, line.Tag)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.Message, "reference_number") {
			return nil, fmt.Errorf("%w: %v", ErrReferenceDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert %s quote: %w", line.Tag, err)
	}
	return stored, nil
}

// List returns all quotes for the line, newest first.
func (r *PGXLineQuotesRepository) List(ctx context.Context, line intake.Line) ([]entity.LineQuote, error) {
	query := fmt.Sprintf(`SELECT `+lineQuoteColumns+` FROM %s ORDER BY created_at DESC`, line.Table)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s quotes: %w", line.Tag, err)
	}
	defer rows.Close()

	var quotes []entity.LineQuote
	for rows.Next() {
		quote, err := scanLineQuote(rows, line.Tag)
		if err != nil {
			return nil, fmt.Errorf("scan %s quote row: %w", line.Tag, err)
		}
		quotes = append(quotes, *quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s quotes: %w", line.Tag, err)
	}
	return quotes, nil
}

func scanLineQuote(row pgx.Row, tag string) (*entity.LineQuote, error) {
	var q entity.LineQuote
	if err := row.Scan(
		&q.ID, &q.ReferenceNumber, &q.Status, &q.BusinessName, &q.DBA,
		&q.ContactName, &q.Email, &q.Phone, &q.Address, &q.EffectiveDate,
		&q.LiabilityLimit, &q.CurrentCarrier, &q.Documents, &q.AdditionalInfo, &q.CreatedAt,
	); err != nil {
		return nil, err
	}
	q.Line = tag
	return &q, nil
}
