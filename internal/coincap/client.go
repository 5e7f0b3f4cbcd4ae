// Package coincap is the HTTP transport to the CoinCap market data API.
//
// It issues single GET requests and decodes the JSON envelopes; it never
// retries. Failures wrap errs.ErrTransport or errs.ErrMalformedData.
package coincap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/guttosm/cryptochart/config"
	"github.com/guttosm/cryptochart/internal/domain/errs"
	"github.com/guttosm/cryptochart/internal/domain/models"
	"github.com/guttosm/cryptochart/internal/logger"
)

// maxErrorBody caps how much of a non-2xx body ends up in an error message.
const maxErrorBody = 512

// Client talks to the CoinCap REST API.
type Client struct {
	baseURL     string
	assetsLimit int
	userAgent   string
	httpClient  *http.Client
	limiter     *rate.Limiter // nil when pacing is disabled
}

// HistoryRecord is one element of the history endpoint's "data" array.
// Values are kept as sent; callers decide how to parse them.
type HistoryRecord struct {
	PriceUsd string `json:"priceUsd"`
	Date     string `json:"date"`
}

type assetRecord struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Rank   string `json:"rank"`
}

type assetsEnvelope struct {
	Data []assetRecord `json:"data"`
}

type historyEnvelope struct {
	Data []HistoryRecord `json:"data"`
}

// NewClient builds a client from the provider configuration.
//
// Behavior:
//   - Applies cfg.Timeout to every request.
//   - Routes through cfg.ProxyURL when it parses as a URL.
//   - Paces requests at cfg.RatePerSec (burst 1) when positive.
func NewClient(cfg config.CoinCapConfig) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.ProxyURL != "" {
		if u, err := url.Parse(cfg.ProxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}

	var limiter *rate.Limiter
	if cfg.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1)
	}

	ua := cfg.UserAgent
	if ua == "" {
		ua = "cryptochart/1.0"
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		assetsLimit: cfg.AssetsLimit,
		userAgent:   ua,
		httpClient:  &http.Client{Timeout: cfg.Timeout, Transport: transport},
		limiter:     limiter,
	}
}

// ListAssets fetches the asset directory: GET {base}/assets.
//
// Records keep the provider's order. A record without id or symbol makes
// the whole call fail with errs.ErrMalformedData.
func (c *Client) ListAssets(ctx context.Context) (models.AssetDirectory, error) {
	q := url.Values{}
	if c.assetsLimit > 0 {
		q.Set("limit", strconv.Itoa(c.assetsLimit))
	}

	var env assetsEnvelope
	if err := c.get(ctx, q, &env, "assets"); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: assets response has no data array", errs.ErrMalformedData)
	}

	dir := make(models.AssetDirectory, 0, len(env.Data))
	for i, r := range env.Data {
		if r.ID == "" || r.Symbol == "" {
			return nil, fmt.Errorf("%w: asset #%d missing id or symbol", errs.ErrMalformedData, i)
		}
		rank, _ := strconv.Atoi(r.Rank) // rank is informational
		dir = append(dir, models.Asset{ID: r.ID, Symbol: r.Symbol, Name: r.Name, Rank: rank})
	}
	return dir, nil
}

// History fetches price history: GET {base}/assets/{id}/history.
//
// Parameters:
//   - id: provider asset id (e.g., "bitcoin").
//   - interval: provider interval code (m15, h1, h6, d1).
//   - start, end: epoch milliseconds.
func (c *Client) History(ctx context.Context, id, interval string, start, end int64) ([]HistoryRecord, error) {
	q := url.Values{}
	q.Set("interval", interval)
	q.Set("start", strconv.FormatInt(start, 10))
	q.Set("end", strconv.FormatInt(end, 10))

	var env historyEnvelope
	if err := c.get(ctx, q, &env, "assets", id, "history"); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: history response has no data array", errs.ErrMalformedData)
	}
	return env.Data, nil
}

// Ping checks that the provider answers the asset listing.
func (c *Client) Ping(ctx context.Context) error {
	q := url.Values{}
	q.Set("limit", "1")
	var env assetsEnvelope
	return c.get(ctx, q, &env, "assets")
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) get(ctx context.Context, q url.Values, out any, elem ...string) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("%w: invalid base URL: %v", errs.ErrTransport, err)
	}
	u = u.JoinPath(elem...)
	u.RawQuery = q.Encode()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limiter: %v", errs.ErrTransport, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: creating request: %v", errs.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.L().Warn().Str("url", u.Redacted()).Err(err).Msg("coincap request failed")
		return fmt.Errorf("%w: GET %s: %v", errs.ErrTransport, u.Path, err)
	}
	defer resp.Body.Close()

	logger.L().Debug().
		Str("url", u.Redacted()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("coincap request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: GET %s: %s - %s", errs.ErrTransport, u.Path, resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", errs.ErrTransport, u.Path, err)
	}
	return nil
}
