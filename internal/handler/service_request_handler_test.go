package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/charterpoint/transport-leads-api/internal/entity"
	"github.com/charterpoint/transport-leads-api/internal/service"
)

func newServiceRequestHandler(repo *stubServiceRequestsRepo) *ServiceRequestHandler {
	svc := service.NewServiceRequestsService(repo, service.NewValidator("US"), nil)
	return NewServiceRequestHandler(svc)
}

func TestServiceRequestHandler_Submit(t *testing.T) {
	e := echo.New()

	t.Run("unknown request type", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"requestType": "renew-everything"})
		req := httptest.NewRequest(http.MethodPost, "/api/service-requests", bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = newServiceRequestHandler(&stubServiceRequestsRepo{}).Submit(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"requestType":  "id_card_request",
			"policyNumber": "CP-2026-00311",
			"insuredName":  "Lakeview Shuttle Co",
			"contactName":  "Mia Torres",
			"email":        "mia@lakeviewshuttle.com",
			"phone":        "+13125550142",
			"details":      "Need replacement ID cards for two vans.",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/service-requests", bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := newServiceRequestHandler(&stubServiceRequestsRepo{
			create: func(ctx context.Context, sr *entity.ServiceRequest) (*entity.ServiceRequest, error) {
				copied := *sr
				copied.ID = uuid.New()
				return &copied, nil
			},
		})

		_ = handler.Submit(c)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}

		var resp struct {
			Success bool   `json:"success"`
			ID      string `json:"id"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !resp.Success || resp.ID == "" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}
