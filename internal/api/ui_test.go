package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cryptochart/internal/domain/errs"
	"github.com/guttosm/cryptochart/internal/domain/models"
	"github.com/guttosm/cryptochart/internal/service"
	"github.com/guttosm/cryptochart/internal/session"
)

const testCookie = "sid"

type countingLister struct {
	calls atomic.Int32
	err   error
}

func (l *countingLister) ListAssets(context.Context) (models.AssetDirectory, error) {
	l.calls.Add(1)
	if l.err != nil {
		return nil, l.err
	}
	return testDirectory().dir, nil
}

func newTestStore(t *testing.T) (*session.Store, *countingLister) {
	t.Helper()
	lister := &countingLister{}
	store := session.NewStore(time.Hour, testToday, func() *service.DirectoryMemo {
		return service.NewDirectoryMemo(lister)
	})
	return store, lister
}

func newUIRouter(store *session.Store, svc service.SeriesService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(loadTemplates())
	r.GET("/", NewUIHandler(store, svc, testCookie, time.Hour).Index)
	return r
}

func get(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie set", testCookie)
	return nil
}

func okSeriesService() *mockSeriesService {
	return &mockSeriesService{
		series: models.PriceSeries{
			{Time: time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC), Price: decimal.RequireFromString("100")},
			{Time: time.Date(2024, 6, 23, 0, 15, 0, 0, time.UTC), Price: decimal.RequireFromString("110")},
		},
		query: models.SeriesQuery{AssetID: "bitcoin", Symbol: "BTC", Interval: "h1"},
	}
}

func TestUIIndex_DefaultSelection(t *testing.T) {
	store, _ := newTestStore(t)
	svc := okSeriesService()
	r := newUIRouter(store, svc)

	w := get(r, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	c := sessionCookie(t, w)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, 1, store.Len())

	assert.Equal(t, "BTC", svc.symbol)
	assert.Equal(t, "2024-06-23", svc.gotFrom.Format("2006-01-02"))
	assert.Equal(t, "2024-06-30", svc.gotTo.Format("2006-01-02"))

	body := w.Body.String()
	assert.Contains(t, body, "<svg")
	assert.Equal(t, 2, strings.Count(body, `<rect class="bar"`))
	assert.Contains(t, body, `<option value="ETH">`)
	assert.Contains(t, body, `min="2013-07-01"`)
	assert.Contains(t, body, `max="2024-06-30"`)
}

func TestUIIndex_CommitsOnSuccessOnly(t *testing.T) {
	store, lister := newTestStore(t)
	svc := okSeriesService()
	r := newUIRouter(store, svc)

	w := get(r, "/?symbol=ETH&from=2024-01-01&to=2024-03-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	c := sessionCookie(t, w)

	sess, ok := store.Get(c.Value)
	require.True(t, ok)
	assert.Equal(t, "ETH", sess.State().Symbol)
	assert.Equal(t, "2024-01-01", sess.State().Range.From.Format("2006-01-02"))

	// provider rejects the next selection; committed state stays put
	svc.err = errs.ErrNotFound
	w = get(r, "/?symbol=XYZ", c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `class="error"`)
	assert.NotContains(t, w.Body.String(), "<svg")
	assert.Equal(t, "ETH", sess.State().Symbol)

	// same session, directory fetched once
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, int32(1), lister.calls.Load())
}

func TestUIIndex_InvalidRangeKeepsSelection(t *testing.T) {
	store, _ := newTestStore(t)
	svc := okSeriesService()
	r := newUIRouter(store, svc)

	c := sessionCookie(t, get(r, "/", nil))

	w := get(r, "/?from=2024-06-30&to=2024-06-01", c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be before")
	// the committed range is still rendered
	assert.Equal(t, "2024-06-23", svc.gotFrom.Format("2006-01-02"))
	assert.Contains(t, w.Body.String(), "<svg")

	sess, ok := store.Get(c.Value)
	require.True(t, ok)
	assert.Equal(t, "2024-06-30", sess.State().Range.To.Format("2006-01-02"))
}

func TestUIIndex_DirectoryFailure(t *testing.T) {
	lister := &countingLister{err: errs.ErrTransport}
	store := session.NewStore(time.Hour, testToday, func() *service.DirectoryMemo {
		return service.NewDirectoryMemo(lister)
	})
	svc := okSeriesService()
	r := newUIRouter(store, svc)

	w := get(r, "/", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Could not load the asset list")
	assert.Equal(t, 0, svc.calls)
}

func TestUIIndex_UnknownCookieStartsSession(t *testing.T) {
	store, _ := newTestStore(t)
	r := newUIRouter(store, okSeriesService())

	w := get(r, "/", &http.Cookie{Name: testCookie, Value: "stale"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, "stale", sessionCookie(t, w).Value)
}
