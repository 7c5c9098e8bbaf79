package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/charterpoint/transport-leads-api/internal/entity"
)

// AnalyticsRepository persists page views and visitor sessions.
type AnalyticsRepository interface {
	RecordPageView(ctx context.Context, view *entity.PageView) error
	UpsertSession(ctx context.Context, session *entity.VisitorSession) error
}

// PGXAnalyticsRepository implements AnalyticsRepository with pgx.
type PGXAnalyticsRepository struct {
	pool pgxPool
}

// NewPGXAnalyticsRepository instantiates an analytics repository.
func NewPGXAnalyticsRepository(pool *pgxpool.Pool) *PGXAnalyticsRepository {
	return &PGXAnalyticsRepository{pool: pool}
}

// RecordPageView inserts a page view row.
func (r *PGXAnalyticsRepository) RecordPageView(ctx context.Context, view *entity.PageView) error {
	if view == nil {
		return fmt.Errorf("page view payload is nil")
	}

	_, err := r.pool.Exec(ctx, `
        INSERT INTO page_views (session_id, path, referrer, utm_source, utm_medium, utm_term, device, browser, os, ip)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		view.SessionID, view.Path, view.Referrer, view.UTMSource, view.UTMMedium, view.UTMTerm,
		view.Device, view.Browser, view.OS, view.IP,
	)
	if err != nil {
		return fmt.Errorf("insert page view: %w", err)
	}
	return nil
}

// UpsertSession creates the visitor session or, for a known session id,
// bumps the page count and advances the last-visit timestamp. First
// visit metadata is kept from the original row.
func (r *PGXAnalyticsRepository) UpsertSession(ctx context.Context, session *entity.VisitorSession) error {
	if session == nil {
		return fmt.Errorf("session payload is nil")
	}

	_, err := r.pool.Exec(ctx, `
        INSERT INTO visitor_sessions (session_id, ip, referrer, utm_source, device, browser, os)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (session_id) DO UPDATE SET
            page_count = visitor_sessions.page_count + 1,
            last_visit_at = NOW()`,
		session.SessionID, session.IP, session.Referrer, session.UTMSource,
		session.Device, session.Browser, session.OS,
	)
	if err != nil {
		return fmt.Errorf("upsert visitor session: %w", err)
	}
	return nil
}
