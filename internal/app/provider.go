package app

import (
	"fmt"
	"net/url"

	"github.com/guttosm/cryptochart/config"
	"github.com/guttosm/cryptochart/internal/coincap"
)

// InitCoinCap builds the market data client from the provider configuration.
//
// Behavior:
//   - Rejects a base URL that is not an absolute http(s) URL.
//   - Rejects a proxy URL that does not parse.
//   - Does not contact the provider; readiness is reported by /readyz.
//
// Example usage:
//
//	client, err := app.InitCoinCap(config.AppConfig)
//	if err != nil {
//	    log.Fatalf("❌ invalid provider settings: %v", err)
//	}
//	defer client.Close()
func InitCoinCap(cfg config.Config) (*coincap.Client, error) {
	u, err := url.Parse(cfg.CoinCap.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid COINCAP_BASE_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid COINCAP_BASE_URL %q: expected an absolute http(s) URL", cfg.CoinCap.BaseURL)
	}
	if cfg.CoinCap.ProxyURL != "" {
		if _, err := url.Parse(cfg.CoinCap.ProxyURL); err != nil {
			return nil, fmt.Errorf("invalid COINCAP_PROXY_URL: %w", err)
		}
	}
	return coincap.NewClient(cfg.CoinCap), nil
}

// providerOpener is an indirection used by InitializeApp and RunFetch; overridden in tests.
var providerOpener = InitCoinCap
