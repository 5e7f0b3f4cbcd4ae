package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	base  zerolog.Logger
	ready bool
	out   io.Writer = os.Stdout
)

// Init configures the global logger.
//
// Parameters:
//   - level: debug|info|warn|error (anything else falls back to info).
//   - pretty: human readable console output instead of JSON lines.
//
// Every entry carries a timestamp and service=cryptochart.
func Init(level string, pretty bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := out
	if pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).With().
		Timestamp().
		Str("service", "cryptochart").
		Logger().
		Level(parseLevel(level))
	ready = true
}

// L returns the global logger. Call Init() once on startup; until then
// L falls back to info level JSON output.
func L() *zerolog.Logger {
	if !ready {
		Init("info", false)
	}
	return &base
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
