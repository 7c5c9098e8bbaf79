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

// ErrContactNotFound is returned when no contact message matches the lookup.
var ErrContactNotFound = errors.New("contact message not found")

// ContactsRepository declares persistence operations for contact messages.
type ContactsRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) (*entity.ContactMessage, error)
	List(ctx context.Context) ([]entity.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error
	CountByStatus(ctx context.Context, status entity.Status) (int, error)
	Count(ctx context.Context) (int, error)
}

const contactColumns = `id, name, email, phone, subject, message, status, notes, created_at`

// PGXContactsRepository implements ContactsRepository with pgx.
type PGXContactsRepository struct {
	pool pgxPool
}

// NewPGXContactsRepository instantiates a contacts repository.
func NewPGXContactsRepository(pool *pgxpool.Pool) *PGXContactsRepository {
	return &PGXContactsRepository{pool: pool}
}

// Create inserts a new contact message.
func (r *PGXContactsRepository) Create(ctx context.Context, msg *entity.ContactMessage) (*entity.ContactMessage, error) {
	if msg == nil {
		return nil, fmt.Errorf("contact payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO contact_messages (name, email, phone, subject, message, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+contactColumns,
		msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message, entity.StatusNew,
	)

	stored, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return stored, nil
}

// List returns all contact messages, newest first.
func (r *PGXContactsRepository) List(ctx context.Context) ([]entity.ContactMessage, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+contactColumns+` FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []entity.ContactMessage
	for rows.Next() {
		msg, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		messages = append(messages, *msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return messages, nil
}

// UpdateStatus sets the triage status and, when provided, the notes of a message.
func (r *PGXContactsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error {
	var (
		cmd pgconn.CommandTag
		err error
	)
	if notes != nil {
		cmd, err = r.pool.Exec(ctx, `UPDATE contact_messages SET status = $1, notes = $2 WHERE id = $3`, status, *notes, id)
	} else {
		cmd, err = r.pool.Exec(ctx, `UPDATE contact_messages SET status = $1 WHERE id = $2`, status, id)
	}
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrContactNotFound
	}
	return nil
}

// CountByStatus counts messages in the given triage state.
func (r *PGXContactsRepository) CountByStatus(ctx context.Context, status entity.Status) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count contacts by status: %w", err)
	}
	return count, nil
}

// Count counts all messages.
func (r *PGXContactsRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return count, nil
}

func scanContact(row pgx.Row) (*entity.ContactMessage, error) {
	var m entity.ContactMessage
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Status, &m.Notes, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
