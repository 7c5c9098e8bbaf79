package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/repository"
	"github.com/charterpoint/transport-leads-api/internal/service"
)

// DashboardHandler exposes the admin triage endpoints.
type DashboardHandler struct {
	dashboard *service.DashboardService
	quotes    *service.QuotesService
	contacts  *service.ContactService
	requests  *service.ServiceRequestsService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService, quotes *service.QuotesService, contacts *service.ContactService, requests *service.ServiceRequestsService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, quotes: quotes, contacts: contacts, requests: requests}
}

// Stats handles GET /api/dashboard/stats requests.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to load dashboard stats")
	}
	return c.JSON(http.StatusOK, dto.StatsResponse{Success: true, Stats: stats})
}

// All handles GET /api/dashboard/all requests.
func (h *DashboardHandler) All(c echo.Context) error {
	data, err := h.dashboard.All(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to load dashboard data")
	}
	return c.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: data})
}

// UpdateQuoteStatus handles PATCH /api/quotes/transport/:id/status.
func (h *DashboardHandler) UpdateQuoteStatus(c echo.Context) error {
	return h.updateStatus(c, repository.ErrQuoteNotFound, func(c echo.Context, req dto.StatusUpdateRequest) error {
		return h.quotes.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status, req.Notes)
	})
}

// UpdateContactStatus handles PATCH /api/contact/:id/status.
func (h *DashboardHandler) UpdateContactStatus(c echo.Context) error {
	return h.updateStatus(c, repository.ErrContactNotFound, func(c echo.Context, req dto.StatusUpdateRequest) error {
		return h.contacts.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status, req.Notes)
	})
}

// UpdateServiceRequestStatus handles PATCH /api/service-requests/:id/status.
func (h *DashboardHandler) UpdateServiceRequestStatus(c echo.Context) error {
	return h.updateStatus(c, repository.ErrServiceRequestNotFound, func(c echo.Context, req dto.StatusUpdateRequest) error {
		return h.requests.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status, req.Notes)
	})
}

func (h *DashboardHandler) updateStatus(c echo.Context, notFound error, apply func(echo.Context, dto.StatusUpdateRequest) error) error {
	var req dto.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	if err := apply(c, req); err != nil {
		switch {
		case errors.Is(err, notFound):
			return Error(c, http.StatusNotFound, "record not found")
		case errors.Is(err, service.ErrInvalidStatus):
			return Error(c, http.StatusBadRequest, "invalid status value")
		default:
			return Error(c, http.StatusInternalServerError, "failed to update status")
		}
	}

	return Success(c, http.StatusOK, "status updated", nil)
}
