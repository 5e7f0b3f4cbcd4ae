package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptochart/config"
	"github.com/guttosm/cryptochart/internal/api"
	"github.com/guttosm/cryptochart/internal/service"
	"github.com/guttosm/cryptochart/internal/session"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the market data client using InitCoinCap().
//   - Initializes the series service and the process-wide asset directory memo.
//   - Creates the session store; every session gets its own directory memo.
//   - Configures the Gin router with the chart page and the API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release resources (idle connections).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// indirection for unit testing
	client, err := providerOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize market data client: %w", err)
	}

	// Service layer (resolution, interval selection, reshaping)
	svc := service.NewSeriesService(client)

	// JSON API shares one directory memo, refreshed through the API
	handler := api.NewHandler(svc, service.NewDirectoryMemo(client), nil)

	// Chart page keeps one directory memo per browser session
	store := session.NewStore(cfg.Session.TTL, nil, func() *service.DirectoryMemo {
		return service.NewDirectoryMemo(client)
	})
	ui := api.NewUIHandler(store, svc, cfg.Session.CookieName, cfg.Session.TTL)

	router := api.NewRouter(handler, ui, cfg.Server.RateLimitPerMin)

	// Register health and readiness probes
	api.NewHealthHandler(client.Ping).Register(router)

	cleanup := func() {
		client.Close()
	}

	return router, cleanup, nil
}
