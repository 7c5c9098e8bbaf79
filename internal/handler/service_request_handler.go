package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/service"
)

// ServiceRequestHandler exposes the public policy-service request endpoint.
type ServiceRequestHandler struct {
	requests *service.ServiceRequestsService
}

// NewServiceRequestHandler constructs a ServiceRequestHandler.
func NewServiceRequestHandler(requests *service.ServiceRequestsService) *ServiceRequestHandler {
	return &ServiceRequestHandler{requests: requests}
}

// Submit handles POST /api/service-requests requests.
func (h *ServiceRequestHandler) Submit(c echo.Context) error {
	var req dto.ServiceRequestPayload
	if err := c.Bind(&req); err != nil {
		return IntakeFailure(c, http.StatusBadRequest, "invalid payload")
	}

	stored, err := h.requests.Submit(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return IntakeFailure(c, http.StatusBadRequest, vErr.Error())
		}
		return IntakeFailure(c, http.StatusInternalServerError, "unable to submit service request")
	}

	return c.JSON(http.StatusCreated, dto.SubmitResponse{
		Success: true,
		ID:      stored.ID.String(),
		Message: "Your request has been received. Our service team will follow up.",
	})
}
