package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the upstream market data provider.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	COINCAP_BASE_URL=https://api.coincap.io/v2
//	COINCAP_TIMEOUT=10s
//	COINCAP_RATE_PER_SEC=3
//	SESSION_TTL=30m
//	LOG_LEVEL=info
type Config struct {
	Server  ServerConfig  // HTTP server configuration
	CoinCap CoinCapConfig // Market data provider settings
	Session SessionConfig // Browser session settings
	Log     LogConfig     // Logger settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitPerMin int    // Requests per minute allowed per client IP
}

// CoinCapConfig defines how the market data provider is reached.
//
// Fields:
//   - BaseURL: API root, without trailing slash (e.g., "https://api.coincap.io/v2").
//   - Timeout: per-request timeout of the HTTP client.
//   - AssetsLimit: "limit" query parameter for the asset listing (0 = provider default).
//   - RatePerSec: outbound requests per second (0 disables pacing).
//   - ProxyURL: optional HTTP proxy.
//   - UserAgent: value of the User-Agent header.
type CoinCapConfig struct {
	BaseURL     string
	Timeout     time.Duration
	AssetsLimit int
	RatePerSec  float64
	ProxyURL    string
	UserAgent   string
}

// SessionConfig controls browser sessions of the chart page.
type SessionConfig struct {
	TTL        time.Duration // idle time after which a session is evicted
	CookieName string
}

// LogConfig controls the global logger.
type LogConfig struct {
	Level  string // debug|info|warn|error
	Pretty bool   // console output instead of JSON
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MIN", 60)

	viper.SetDefault("COINCAP_BASE_URL", "https://api.coincap.io/v2")
	viper.SetDefault("COINCAP_TIMEOUT", "10s")
	viper.SetDefault("COINCAP_ASSETS_LIMIT", 0)
	viper.SetDefault("COINCAP_RATE_PER_SEC", 3)
	viper.SetDefault("COINCAP_PROXY_URL", "")
	viper.SetDefault("COINCAP_USER_AGENT", "cryptochart/1.0")

	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("SESSION_COOKIE", "cryptochart_session")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			RateLimitPerMin: viper.GetInt("RATE_LIMIT_PER_MIN"),
		},
		CoinCap: CoinCapConfig{
			BaseURL:     viper.GetString("COINCAP_BASE_URL"),
			Timeout:     viper.GetDuration("COINCAP_TIMEOUT"),
			AssetsLimit: viper.GetInt("COINCAP_ASSETS_LIMIT"),
			RatePerSec:  viper.GetFloat64("COINCAP_RATE_PER_SEC"),
			ProxyURL:    viper.GetString("COINCAP_PROXY_URL"),
			UserAgent:   viper.GetString("COINCAP_USER_AGENT"),
		},
		Session: SessionConfig{
			TTL:        viper.GetDuration("SESSION_TTL"),
			CookieName: viper.GetString("SESSION_COOKIE"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing or unusable.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.CoinCap.BaseURL == "" {
		missing = append(missing, "COINCAP_BASE_URL")
	}
	if AppConfig.CoinCap.Timeout <= 0 {
		missing = append(missing, "COINCAP_TIMEOUT")
	}
	if AppConfig.Session.TTL <= 0 {
		missing = append(missing, "SESSION_TTL")
	}
	if AppConfig.Session.CookieName == "" {
		missing = append(missing, "SESSION_COOKIE")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}
