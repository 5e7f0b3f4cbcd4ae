package main

//
//  @title           cryptochart API
//  @version         1.0
//  @description     Crypto price chart viewer backed by the CoinCap API.
//  @termsOfService  https://github.com/guttosm/cryptochart
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/cryptochart
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        assets
//  @tag.description Asset directory of the market data provider
//
//  @tag.name        series
//  @tag.description Price series for a symbol and date range
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/cryptochart/config"
	_ "github.com/guttosm/cryptochart/docs" // swagger docs
	"github.com/guttosm/cryptochart/internal/app"
	"github.com/guttosm/cryptochart/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., idle provider connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the cryptochart application.
//
// Modes (selected via --mode flag):
//   - serve: Starts the chart page and the REST API.
//   - fetch: Fetches one series and prints it as a table, then exits.
//
// Flags:
//   - --mode:   Execution mode ("serve" or "fetch"). Default: "serve".
//   - --port:   Port for the server. Defaults to value from config (SERVER_PORT).
//   - --symbol: Asset ticker for fetch mode. Default: first listed asset.
//   - --from:   First day for fetch mode (YYYY-MM-DD). Default: 7 days before --to.
//   - --to:     Last day for fetch mode (YYYY-MM-DD). Default: today.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize logger
	logger.Init(config.AppConfig.Log.Level, config.AppConfig.Log.Pretty)

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "serve", "Mode: serve or fetch")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for serve mode")
	symbol := flag.String("symbol", "", "Asset ticker for fetch mode (case-sensitive)")
	from := flag.String("from", "", "First day for fetch mode (YYYY-MM-DD)")
	to := flag.String("to", "", "Last day for fetch mode (YYYY-MM-DD)")
	flag.Parse()

	switch *mode {
	case "fetch":
		// One-shot fetch: print the series and exit
		if err := app.RunFetch(ctx, os.Stdout, *symbol, *from, *to); err != nil {
			logger.L().Fatal().Err(err).Msg("fetch failed")
		}

	case "serve":
		// Serve mode: start the HTTP server
		logger.L().Info().Msg("starting chart server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
