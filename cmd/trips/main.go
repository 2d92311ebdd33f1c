package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cupoapp/cupo/internal/pkg/config"
	"github.com/cupoapp/cupo/internal/pkg/database"
	"github.com/cupoapp/cupo/internal/pkg/health"
	"github.com/cupoapp/cupo/internal/pkg/logger"
	"github.com/cupoapp/cupo/internal/pkg/middleware"
	"github.com/cupoapp/cupo/internal/pkg/nats"
	nrpkg "github.com/cupoapp/cupo/internal/pkg/newrelic"
	gatewayhttp "github.com/cupoapp/cupo/services/trips/gateway/http"
	gatewaynats "github.com/cupoapp/cupo/services/trips/gateway/nats"
	"github.com/cupoapp/cupo/services/trips/handler"
	"github.com/cupoapp/cupo/services/trips/repository"
	"github.com/cupoapp/cupo/services/trips/usecase"
)

func main() {
	appName := "trips-service"
	configPath := "config/trips.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	if !natsClient.IsConnected() {
		zapLogger.Fatal("NATS client not connected")
	}

	// Initialize repository
	tripRepo := repository.NewTripRepository(configs, postgresClient.GetDB())

	// Initialize gateways
	pricingGW := gatewayhttp.NewPricingGW(configs)
	walletGW := gatewayhttp.NewWalletGW(configs)
	eventsGW := gatewaynats.NewTripEventsGW(natsClient)

	// Initialize usecase
	tripUC := usecase.NewTripUC(configs, tripRepo, pricingGW, walletGW, eventsGW)

	// Initialize handlers
	tripsHandler := handler.NewHandler(tripUC, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	tripsHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing PostgreSQL connection...")
	postgresClient.Close()

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server shutdown complete")
}
