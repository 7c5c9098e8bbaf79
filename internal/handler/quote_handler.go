package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/intake"
	"github.com/charterpoint/transport-leads-api/internal/service"
)

// QuoteHandler exposes the public quote intake endpoints.
type QuoteHandler struct {
	quotes *service.QuotesService
}

// NewQuoteHandler constructs a QuoteHandler.
func NewQuoteHandler(quotes *service.QuotesService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// SubmitTransport handles POST /api/quotes/transport requests.
func (h *QuoteHandler) SubmitTransport(c echo.Context) error {
	var req dto.TransportQuoteRequest
	if err := c.Bind(&req); err != nil {
		return IntakeFailure(c, http.StatusBadRequest, "invalid payload")
	}

	quote, err := h.quotes.SubmitTransportQuote(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return IntakeFailure(c, http.StatusBadRequest, vErr.Error())
		}
		return IntakeFailure(c, http.StatusInternalServerError, "unable to submit quote request")
	}

	return c.JSON(http.StatusCreated, dto.QuoteResponse{
		Success: true,
		Quote:   dto.QuoteRef{ReferenceNumber: quote.ReferenceNumber},
	})
}

// SubmitLine handles POST /api/quotes/:line requests for the legacy
// per-line forms. Unknown line tags are a 404, not a validation error.
func (h *QuoteHandler) SubmitLine(c echo.Context) error {
	line, ok := intake.Lookup(c.Param("line"))
	if !ok {
		return IntakeFailure(c, http.StatusNotFound, "unknown quote line")
	}

	var req dto.LineQuoteRequest
	if err := c.Bind(&req); err != nil {
		return IntakeFailure(c, http.StatusBadRequest, "invalid payload")
	}

	quote, err := h.quotes.SubmitLineQuote(c.Request().Context(), line, req)
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return IntakeFailure(c, http.StatusBadRequest, vErr.Error())
		}
		return IntakeFailure(c, http.StatusInternalServerError, "unable to submit quote request")
	}

	return c.JSON(http.StatusCreated, dto.QuoteResponse{
		Success: true,
		Quote:   dto.QuoteRef{ReferenceNumber: quote.ReferenceNumber},
	})
}
