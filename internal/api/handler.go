package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptochart/internal/chart"
	"github.com/guttosm/cryptochart/internal/domain/dto"
	"github.com/guttosm/cryptochart/internal/domain/models"
	"github.com/guttosm/cryptochart/internal/middleware"
	"github.com/guttosm/cryptochart/internal/service"
	"github.com/guttosm/cryptochart/internal/session"
)

// DirectorySource is the memoized asset directory the API reads from.
type DirectorySource interface {
	Get(ctx context.Context) (models.AssetDirectory, error)
	Reset()
	FetchedAt() time.Time
}

var _ DirectorySource = (*service.DirectoryMemo)(nil)

// Handler provides the JSON endpoints of the chart service.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Read the asset directory through its memo
//   - Delegate series construction to the service layer
//   - Map domain errors to HTTP status codes
type Handler struct {
	svc       service.SeriesService
	directory DirectorySource
	clock     session.Clock
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc: series service used to build price series.
//   - directory: memoized asset directory, shared by all API requests.
//   - clock: source of "today" for date range bounds.
func NewHandler(svc service.SeriesService, directory DirectorySource, clock session.Clock) *Handler {
	if clock == nil {
		clock = session.NewRealClock()
	}
	return &Handler{svc: svc, directory: directory, clock: clock}
}

// GetAssets handles GET /api/v1/assets.
//
// GetAssets godoc
// @Summary      List assets
// @Description  Returns the asset directory in provider order (memoized until refreshed)
// @Tags         assets
// @Produce      json
// @Success      200  {object}  dto.AssetsResponse  "Success"
// @Failure      502  {object}  dto.ErrorResponse   "Upstream failure"
// @Router       /api/v1/assets [get]
func (h *Handler) GetAssets(c *gin.Context) {
	dir, err := h.directory.Get(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, middleware.StatusFor(err), "failed to fetch assets", err)
		return
	}
	c.JSON(http.StatusOK, dto.AssetsResponse{
		Count:     len(dir),
		FetchedAt: h.directory.FetchedAt(),
		Assets:    dir,
	})
}

// RefreshAssets handles POST /api/v1/assets/refresh.
//
// RefreshAssets godoc
// @Summary      Refresh assets
// @Description  Drops the memoized asset directory and fetches it again
// @Tags         assets
// @Produce      json
// @Success      200  {object}  dto.AssetsResponse  "Success"
// @Failure      502  {object}  dto.ErrorResponse   "Upstream failure"
// @Router       /api/v1/assets/refresh [post]
func (h *Handler) RefreshAssets(c *gin.Context) {
	h.directory.Reset()
	h.GetAssets(c)
}

// GetSeries handles GET /api/v1/series requests.
//
// Query Parameters:
//   - symbol (string, required): asset ticker, matched exactly (e.g., "BTC").
//   - from (string, optional): first day, YYYY-MM-DD. Default: 7 days before to.
//   - to (string, optional): last day, YYYY-MM-DD. Default: today.
//
// Responses:
//   - 200 OK: SeriesResponse with the chosen interval and the points.
//   - 400 Bad Request: missing symbol or invalid range.
//   - 404 Not Found: symbol not in the directory.
//   - 502 Bad Gateway: provider unreachable or returned malformed data.
//
// GetSeries godoc
// @Summary      Get price series
// @Description  Resolves the symbol, selects the sampling interval from the range span and returns the price history
// @Tags         series
// @Produce      json
// @Param        symbol  query     string  true   "Asset ticker (case-sensitive)" example(BTC)
// @Param        from    query     string  false  "First day in YYYY-MM-DD" example(2024-01-01)
// @Param        to      query     string  false  "Last day in YYYY-MM-DD" example(2024-01-03)
// @Success      200     {object}  dto.SeriesResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse   "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse   "Not Found"
// @Failure      502     {object}  dto.ErrorResponse   "Upstream failure"
// @Router       /api/v1/series [get]
func (h *Handler) GetSeries(c *gin.Context) {
	// ─── Validate "symbol" param ──────────────────────────────
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbol is required", nil)
		return
	}

	// ─── Validate range against today's bounds ────────────────
	today := h.clock.Now()
	state, err := session.State{Symbol: symbol, Range: session.DefaultRangeFor(today, c.Query("to"))}.
		Apply(session.Input{From: c.Query("from"), To: c.Query("to")}, today)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid date range", err)
		return
	}

	// ─── Resolve and fetch (with request context) ─────────────
	ctx := c.Request.Context()
	dir, err := h.directory.Get(ctx)
	if err != nil {
		middleware.AbortWithError(c, middleware.StatusFor(err), "failed to fetch assets", err)
		return
	}
	series, q, err := h.svc.FetchSeries(ctx, dir, state.Symbol, state.Range.From, state.Range.To)
	if err != nil {
		middleware.AbortWithError(c, middleware.StatusFor(err), "failed to fetch series", err)
		return
	}

	c.JSON(http.StatusOK, dto.SeriesResponse{
		Symbol:   state.Symbol,
		AssetID:  q.AssetID,
		From:     state.Range.From.Format(chart.DayLayout),
		To:       state.Range.To.Format(chart.DayLayout),
		Interval: q.Interval,
		Start:    q.Start,
		End:      q.End,
		Count:    len(series),
		Points:   series,
	})
}
