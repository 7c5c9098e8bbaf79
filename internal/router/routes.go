package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/charterpoint/transport-leads-api/internal/auth"
	"github.com/charterpoint/transport-leads-api/internal/config"
	"github.com/charterpoint/transport-leads-api/internal/handler"
	middlewarepkg "github.com/charterpoint/transport-leads-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth           *handler.AuthHandler
	Users          *handler.UserAdminHandler
	Quotes         *handler.QuoteHandler
	Contact        *handler.ContactHandler
	ServiceRequest *handler.ServiceRequestHandler
	Dashboard      *handler.DashboardHandler
	Track          *handler.TrackHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/auth/login", handlers.Auth.Login)

	// public intake: the marketing site's forms and the analytics beacon
	intake := e.Group("/api", middlewarepkg.IntakeRateLimiter(cfg.RateLimitIntake))
	intake.POST("/quotes/transport", handlers.Quotes.SubmitTransport)
	intake.POST("/quotes/:line", handlers.Quotes.SubmitLine)
	intake.POST("/contact", handlers.Contact.Submit)
	intake.POST("/service-requests", handlers.ServiceRequest.Submit)
	intake.POST("/track", handlers.Track.Track)

	secured := e.Group("", middlewarepkg.JWT(jwtManager))
	secured.GET("/api/dashboard/stats", handlers.Dashboard.Stats)
	secured.GET("/api/dashboard/all", handlers.Dashboard.All)
	secured.PATCH("/api/quotes/transport/:id/status", handlers.Dashboard.UpdateQuoteStatus)
	secured.PATCH("/api/contact/:id/status", handlers.Dashboard.UpdateContactStatus)
	secured.PATCH("/api/service-requests/:id/status", handlers.Dashboard.UpdateServiceRequestStatus)

	admin := secured.Group("/admin", middlewarepkg.RequireRole("admin"))
	admin.GET("/users", handlers.Users.List)
	admin.POST("/users", handlers.Users.Create)
	admin.PATCH("/users/:id", handlers.Users.Update)
	admin.DELETE("/users/:id", handlers.Users.Delete)
}
