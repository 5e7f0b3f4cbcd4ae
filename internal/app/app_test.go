package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/cryptochart/config"
	"github.com/guttosm/cryptochart/internal/coincap"
	"github.com/guttosm/cryptochart/internal/domain/errs"
)

const assetsBody = `{"data":[
	{"id":"bitcoin","rank":"1","symbol":"BTC","name":"Bitcoin"},
	{"id":"ethereum","rank":"2","symbol":"ETH","name":"Ethereum"}
]}`

const historyBody = `{"data":[
	{"priceUsd":"42000.5","time":1704067200000,"date":"2024-01-01T00:00:00.000Z"},
	{"priceUsd":"42100.25","time":1704068100000,"date":"2024-01-01T00:15:00.000Z"}
]}`

// fakeCoinCap serves the two provider endpoints the app uses.
func fakeCoinCap(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/assets", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(assetsBody))
	})
	mux.HandleFunc("/v2/assets/bitcoin/history", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(historyBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) config.Config {
	return config.Config{
		Server:  config.ServerConfig{Port: "0"},
		CoinCap: config.CoinCapConfig{BaseURL: baseURL, Timeout: 2 * time.Second},
		Session: config.SessionConfig{TTL: time.Minute, CookieName: "sid"},
	}
}

func withConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = old })
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestInitCoinCap_Validation(t *testing.T) {
	cases := []struct {
		name    string
		base    string
		proxy   string
		wantErr bool
	}{
		{name: "ok", base: "https://api.coincap.io/v2"},
		{name: "relative", base: "/v2", wantErr: true},
		{name: "unsupported scheme", base: "ftp://example.com", wantErr: true},
		{name: "bad proxy", base: "https://api.coincap.io/v2", proxy: "http://[::1", wantErr: true},
		{name: "proxy ok", base: "https://api.coincap.io/v2", proxy: "http://127.0.0.1:3128"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(tc.base)
			cfg.CoinCap.ProxyURL = tc.proxy
			c, err := InitCoinCap(cfg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v got %v", tc.wantErr, err)
			}
			if err == nil {
				c.Close()
			}
		})
	}
}

// TestInitializeApp_ProviderFailure ensures InitializeApp returns error when the client cannot be built.
func TestInitializeApp_ProviderFailure(t *testing.T) {
	withConfig(t, testConfig("not a url"))

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		t.Fatalf("expected error from InitializeApp with invalid provider config")
	}
}

func TestInitializeApp_OpenerError(t *testing.T) {
	withConfig(t, testConfig("http://localhost"))
	old := providerOpener
	providerOpener = func(config.Config) (*coincap.Client, error) { return nil, errors.New("boom") }
	t.Cleanup(func() { providerOpener = old })

	if _, _, err := InitializeApp(); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped opener error, got %v", err)
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	srv := fakeCoinCap(t)
	withConfig(t, testConfig(srv.URL+"/v2"))

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	defer cleanup()

	for _, path := range []string{"/healthz", "/readyz", "/api/v1/assets", "/"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s status=%d body=%s", path, w.Code, w.Body.String())
		}
	}
}

func TestInitializeApp_ReadyzDegraded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	withConfig(t, testConfig(srv.URL))

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	defer cleanup()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d", w.Code)
	}
}

func TestRunFetch(t *testing.T) {
	srv := fakeCoinCap(t)
	withConfig(t, testConfig(srv.URL+"/v2"))
	old := clock
	clock = fixedClock{t: time.Date(2024, 6, 30, 9, 0, 0, 0, time.UTC)}
	t.Cleanup(func() { clock = old })

	var out bytes.Buffer
	if err := RunFetch(context.Background(), &out, "BTC", "2024-01-01", "2024-01-03"); err != nil {
		t.Fatalf("RunFetch: %v", err)
	}
	got := out.String()
	for _, want := range []string{"BTC (bitcoin) 2024-01-01..2024-01-03 interval=m15 points=2", "2024-01-01T00:15:00Z", "42100.25"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}

	out.Reset()
	if err := RunFetch(context.Background(), &out, "BTC", "", "2024-01-03"); err != nil {
		t.Fatalf("RunFetch with to only: %v", err)
	}
	if want := "BTC (bitcoin) 2023-12-27..2024-01-03 interval=h1 points=2"; !strings.Contains(out.String(), want) {
		t.Fatalf("output missing %q:\n%s", want, out.String())
	}

	out.Reset()
	err := RunFetch(context.Background(), &out, "XYZ", "2024-01-01", "2024-01-03")
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	err = RunFetch(context.Background(), &out, "BTC", "2024-01-03", "2024-01-01")
	if !errors.Is(err, errs.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
