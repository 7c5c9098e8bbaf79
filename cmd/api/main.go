package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/charterpoint/transport-leads-api/internal/auth"
	"github.com/charterpoint/transport-leads-api/internal/config"
	"github.com/charterpoint/transport-leads-api/internal/database"
	"github.com/charterpoint/transport-leads-api/internal/handler"
	"github.com/charterpoint/transport-leads-api/internal/metrics"
	middlewarepkg "github.com/charterpoint/transport-leads-api/internal/middleware"
	"github.com/charterpoint/transport-leads-api/internal/notify"
	"github.com/charterpoint/transport-leads-api/internal/repository"
	"github.com/charterpoint/transport-leads-api/internal/router"
	"github.com/charterpoint/transport-leads-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	notifier := notify.NewEmailNotifier(&cfg.Email)
	validator := service.NewValidator(cfg.PhoneRegion)

	quotesRepo := repository.NewPGXQuotesRepository(pool)
	lineQuotesRepo := repository.NewPGXLineQuotesRepository(pool)
	contactsRepo := repository.NewPGXContactsRepository(pool)
	requestsRepo := repository.NewPGXServiceRequestsRepository(pool)
	usersRepo := repository.NewPGXAdminUsersRepository(pool)
	analyticsRepo := repository.NewPGXAnalyticsRepository(pool)

	quotesService := service.NewQuotesService(quotesRepo, lineQuotesRepo, validator, notifier)
	contactService := service.NewContactService(contactsRepo, validator, notifier)
	requestsService := service.NewServiceRequestsService(requestsRepo, validator, notifier)
	dashboardService := service.NewDashboardService(quotesRepo, contactsRepo, requestsRepo)
	authService := service.NewAuthService(usersRepo, jwtManager)
	userService := service.NewUserService(usersRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	handlers := router.Handlers{
		Auth:           handler.NewAuthHandler(authService),
		Users:          handler.NewUserAdminHandler(userService),
		Quotes:         handler.NewQuoteHandler(quotesService),
		Contact:        handler.NewContactHandler(contactService),
		ServiceRequest: handler.NewServiceRequestHandler(requestsService),
		Dashboard:      handler.NewDashboardHandler(dashboardService, quotesService, contactService, requestsService),
		Track:          handler.NewTrackHandler(analyticsService),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(metrics.HTTPMiddleware())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
