package api

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptochart/internal/chart"
	"github.com/guttosm/cryptochart/internal/logger"
	"github.com/guttosm/cryptochart/internal/middleware"
	"github.com/guttosm/cryptochart/internal/service"
	"github.com/guttosm/cryptochart/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

const indexTemplate = "index.html"

// loadTemplates parses the embedded page templates.
func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}

// UIHandler serves the single chart page.
//
// Each browser gets a session (cookie) holding its selection. A render
// applies the query input to a copy of that selection, fetches the series
// and commits the copy only when everything succeeded, so a failed render
// leaves the previous selection in place.
type UIHandler struct {
	store      *session.Store
	svc        service.SeriesService
	cookieName string
	cookieTTL  time.Duration
}

// NewUIHandler constructs the page handler.
func NewUIHandler(store *session.Store, svc service.SeriesService, cookieName string, cookieTTL time.Duration) *UIHandler {
	return &UIHandler{store: store, svc: svc, cookieName: cookieName, cookieTTL: cookieTTL}
}

type pageData struct {
	Symbols  []string
	Symbol   string
	From     string
	To       string
	MinFrom  string
	FromMax  string
	ToMin    string
	MaxTo    string
	Interval string
	Points   int
	Error    string
	Chart    *chartView
}

// Index handles GET /.
//
// Query Parameters (all optional):
//   - symbol: asset ticker to show.
//   - from, to: range bounds in YYYY-MM-DD.
func (h *UIHandler) Index(c *gin.Context) {
	sess := h.session(c)
	ctx := c.Request.Context()
	today := h.store.Today()
	bounds := session.BoundsFor(today)

	current := sess.State()
	page := pageData{
		MinFrom: bounds.MinFrom.Format(chart.DayLayout),
		MaxTo:   bounds.MaxTo.Format(chart.DayLayout),
	}

	dir, err := sess.Directory.Get(ctx)
	if err != nil {
		h.render(c, middleware.StatusFor(err), page.withState(current), "Could not load the asset list: "+err.Error())
		return
	}
	page.Symbols = dir.Symbols()
	current = current.WithDefaultSymbol(dir)

	status := http.StatusOK
	target, err := current.Apply(session.Input{
		Symbol: c.Query("symbol"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}, today)
	if err != nil {
		// keep showing the committed selection
		status = middleware.StatusFor(err)
		page.Error = err.Error()
		target = current
	}

	series, q, err := h.svc.FetchSeries(ctx, dir, target.Symbol, target.Range.From, target.Range.To)
	if err != nil {
		logger.L().Warn().Str("session", sess.ID).Str("symbol", target.Symbol).Err(err).Msg("render failed")
		h.render(c, middleware.StatusFor(err), page.withState(current), err.Error())
		return
	}

	sess.Commit(target)
	page = page.withState(target)
	page.Interval = q.Interval
	page.Points = len(series)
	page.Chart = buildChartView(series, chart.Interval(q.Interval))
	c.HTML(status, indexTemplate, page)
}

func (h *UIHandler) render(c *gin.Context, status int, page pageData, msg string) {
	page.Error = msg
	c.HTML(status, indexTemplate, page)
}

// withState fills the form fields from st.
func (p pageData) withState(st session.State) pageData {
	p.Symbol = st.Symbol
	p.From = st.Range.From.Format(chart.DayLayout)
	p.To = st.Range.To.Format(chart.DayLayout)
	p.FromMax = st.Range.To.AddDate(0, 0, -1).Format(chart.DayLayout)
	p.ToMin = st.Range.From.AddDate(0, 0, 1).Format(chart.DayLayout)
	return p
}

// session returns the caller's session, starting a new one (and setting
// the cookie) when the cookie is missing or the session expired.
func (h *UIHandler) session(c *gin.Context) *session.Session {
	if id, err := c.Cookie(h.cookieName); err == nil {
		if s, ok := h.store.Get(id); ok {
			return s
		}
	}
	s := h.store.Create()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, s.ID, int(h.cookieTTL.Seconds()), "/", "", false, true)
	logger.L().Info().Str("session", s.ID).Msg("session started")
	return s
}
