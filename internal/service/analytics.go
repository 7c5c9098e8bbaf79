package service

import (
	"context"
	"strings"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/entity"
	"github.com/charterpoint/transport-leads-api/internal/metrics"
	"github.com/charterpoint/transport-leads-api/internal/repository"
)

// AnalyticsService records page views and keeps visitor sessions
// deduplicated by session id.
type AnalyticsService struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(repo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Track stores one page view and upserts the owning session. The
// caller supplies the client IP; everything else comes from the beacon.
func (s *AnalyticsService) Track(ctx context.Context, req dto.TrackRequest, ip string) error {
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		return invalidField("sessionId", "is required")
	}
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return invalidField("path", "is required")
	}

	view := &entity.PageView{
		SessionID: sessionID,
		Path:      path,
		Referrer:  Optional(req.Referrer),
		UTMSource: Optional(req.UTMSource),
		UTMMedium: Optional(req.UTMMedium),
		UTMTerm:   Optional(req.UTMTerm),
		Device:    Optional(req.Device),
		Browser:   Optional(req.Browser),
		OS:        Optional(req.OS),
		IP:        Optional(ip),
	}
	if err := s.repo.RecordPageView(ctx, view); err != nil {
		return err
	}

	session := &entity.VisitorSession{
		SessionID: sessionID,
		IP:        view.IP,
		Referrer:  view.Referrer,
		UTMSource: view.UTMSource,
		Device:    view.Device,
		Browser:   view.Browser,
		OS:        view.OS,
	}
	if err := s.repo.UpsertSession(ctx, session); err != nil {
		return err
	}

	metrics.RecordPageView()
	return nil
}
