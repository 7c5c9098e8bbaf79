package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/service"
)

// TrackHandler exposes the analytics beacon endpoint.
type TrackHandler struct {
	analytics *service.AnalyticsService
}

// NewTrackHandler constructs a TrackHandler.
func NewTrackHandler(analytics *service.AnalyticsService) *TrackHandler {
	return &TrackHandler{analytics: analytics}
}

// Track handles POST /api/track requests. The beacon is fire-and-forget
// from the page's point of view; storage errors are logged, not
// returned, so a flaky analytics table never breaks a page load.
func (h *TrackHandler) Track(c echo.Context) error {
	var req dto.TrackRequest
	if err := c.Bind(&req); err != nil {
		return IntakeFailure(c, http.StatusBadRequest, "invalid payload")
	}

	if err := h.analytics.Track(c.Request().Context(), req, c.RealIP()); err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return IntakeFailure(c, http.StatusBadRequest, vErr.Error())
		}
		log.Printf("track page view failed: %v", err)
	}

	return c.NoContent(http.StatusAccepted)
}
