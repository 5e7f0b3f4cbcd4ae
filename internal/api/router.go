package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/cryptochart/internal/middleware"
)

// requestTimeout bounds every request, including the upstream call it makes.
const requestTimeout = 10 * time.Second

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Loads the embedded HTML templates and mounts the chart page (/).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler: JSON API handler.
//   - ui: chart page handler; nil skips the page route.
//   - rateLimitPerMin: per-IP request budget (0 disables).
func NewRouter(handler *Handler, ui *UIHandler, rateLimitPerMin int) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(rateLimitPerMin),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Chart page ───────────────────────────────
	if ui != nil {
		router.SetHTMLTemplate(loadTemplates())
		router.GET("/", ui.Index)
	}

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/assets", handler.GetAssets)
		v1.POST("/assets/refresh", handler.RefreshAssets)
		v1.GET("/series", handler.GetSeries)
	}

	return router
}
