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
	// ErrUserNotFound is returned when no user matches the lookup criteria.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailDuplicate indicates the email is already registered.
	ErrEmailDuplicate = errors.New("email already exists")
)

// AdminUsersRepository declares operations for dashboard operator accounts.
type AdminUsersRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	Create(ctx context.Context, email, passwordHash, displayName, role string) (*entity.AdminUser, error)
	List(ctx context.Context) ([]entity.AdminUser, error)
	Update(ctx context.Context, id uuid.UUID, fields AdminUserUpdate) (*entity.AdminUser, error)
	Delete(ctx context.Context, id uuid.UUID) error
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

// AdminUserUpdate carries the optional fields of a partial update.
type AdminUserUpdate struct {
	Email        *string
	PasswordHash *string
	DisplayName  *string
	Role         *string
	Active       *bool
}

const adminUserColumns = `id, email, password_hash, display_name, role, active, last_login_at, created_at, updated_at`

// PGXAdminUsersRepository implements AdminUsersRepository with pgx.
type PGXAdminUsersRepository struct {
	pool pgxPool
}

// NewPGXAdminUsersRepository instantiates an admin users repository.
func NewPGXAdminUsersRepository(pool *pgxpool.Pool) *PGXAdminUsersRepository {
	return &PGXAdminUsersRepository{pool: pool}
}

// FindByEmail fetches a user by email if present.
func (r *PGXAdminUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE email = $1`, email)

	user, err := scanAdminUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by identifier.
func (r *PGXAdminUsersRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE id = $1`, id)

	user, err := scanAdminUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return user, nil
}

// Create inserts a new operator row.
func (r *PGXAdminUsersRepository) Create(ctx context.Context, email, passwordHash, displayName, role string) (*entity.AdminUser, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO admin_users (email, password_hash, display_name, role)
        VALUES ($1, $2, $3, $4)
        RETURNING `+adminUserColumns,
		email, passwordHash, displayName, role,
	)

	user, err := scanAdminUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.Message, "admin_users_email_key") {
			return nil, fmt.Errorf("%w: %v", ErrEmailDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// List returns all operators ordered by creation date (desc).
func (r *PGXAdminUsersRepository) List(ctx context.Context) ([]entity.AdminUser, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adminUserColumns+` FROM admin_users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []entity.AdminUser
	for rows.Next() {
		user, err := scanAdminUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// Update patches operator attributes.
func (r *PGXAdminUsersRepository) Update(ctx context.Context, id uuid.UUID, fields AdminUserUpdate) (*entity.AdminUser, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	if fields.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", idx))
		args = append(args, *fields.Email)
		idx++
	}
	if fields.PasswordHash != nil {
		setClauses = append(setClauses, fmt.Sprintf("password_hash = $%d", idx))
		args = append(args, *fields.PasswordHash)
		idx++
	}
	if fields.DisplayName != nil {
		setClauses = append(setClauses, fmt.Sprintf("display_name = $%d", idx))
		args = append(args, *fields.DisplayName)
		idx++
	}
	if fields.Role != nil {
		setClauses = append(setClauses, fmt.Sprintf("role = $%d", idx))
		args = append(args, *fields.Role)
		idx++
	}
	if fields.Active != nil {
		setClauses = append(setClauses, fmt.Sprintf("active = $%d", idx))
		args = append(args, *fields.Active)
		idx++
	}

	if len(setClauses) == 0 {
		return r.FindByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE admin_users SET %s WHERE id = $%d RETURNING `+adminUserColumns,
		strings.Join(setClauses, ", "), idx)

	user, err := scanAdminUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.Message, "admin_users_email_key") {
			return nil, fmt.Errorf("%w: %v", ErrEmailDuplicate, pgErr)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes an operator by id.
func (r *PGXAdminUsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// TouchLastLogin records a successful login.
func (r *PGXAdminUsersRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `UPDATE admin_users SET last_login_at = NOW() WHERE id = $1`, id); err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

func scanAdminUser(row pgx.Row) (*entity.AdminUser, error) {
	var u entity.AdminUser
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Role, &u.Active, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
