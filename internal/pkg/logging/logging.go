// Package logging builds the service's *slog.Logger.
//
// Salary-bearing attributes are redacted before they reach the handler, so
// components can log request payloads without leaking pay data:
//
//	logger := logging.New("info", "json", os.Stderr)
//	logger.Info("salary updated", slog.Int("employee_id", 1), slog.String("new_salary", "9000"))
//	// {"level":"INFO","msg":"salary updated","employee_id":1,"new_salary":"[REDACTED]"}
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/masq"
)

// New creates a logger writing to w.
//
// level is one of "debug", "info", "warn", "error"; anything else means info.
// format "text" selects slog.NewTextHandler, anything else JSON.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a level name to slog.Level, case-insensitively.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record. Used by tests and as a
// default when a component is built without a logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("salary"),
		masq.WithFieldName("base_salary"),
		masq.WithFieldName("new_salary"),
		masq.WithFieldName("old_salary"),
		masq.WithFieldPrefix("salary_"),
		masq.WithFieldName("password"),
		masq.WithFieldName("dsn"),
	)
}
