package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". Nil errors give an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Plan records a plan identifier under "plan".
func Plan(planID string) slog.Attr {
	return slog.String("plan", planID)
}

// Feature records a feature key under "feature".
func Feature[T ~string](f T) slog.Attr {
	return slog.String("feature", string(f))
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Duration records an elapsed time under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// HTTPRequest groups method, path and status under "http".
func HTTPRequest(method, path string, status int) slog.Attr {
	return slog.Group("http",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
	)
}
