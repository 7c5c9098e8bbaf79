package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/service"
)

// ContactHandler exposes the public contact-form endpoint.
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit handles POST /api/contact requests.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return IntakeFailure(c, http.StatusBadRequest, "invalid payload")
	}

	msg, err := h.contacts.Submit(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return IntakeFailure(c, http.StatusBadRequest, vErr.Error())
		}
		return IntakeFailure(c, http.StatusInternalServerError, "unable to send message")
	}

	return c.JSON(http.StatusCreated, dto.SubmitResponse{
		Success: true,
		ID:      msg.ID.String(),
		Message: "Thank you for reaching out. We will be in touch shortly.",
	})
}
