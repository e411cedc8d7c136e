package dashboard

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/quantiv/isi-web/pkg/logger"
)

// requestLogger logs every request once it has been served. Health probes
// are logged at debug level.
func (d *Dashboard) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelInfo
		if strings.HasPrefix(r.URL.Path, "/health/") {
			level = slog.LevelDebug
		}
		d.log.LogAttrs(r.Context(), level, "request served",
			logger.HTTPRequest(r.Method, r.URL.Path, status),
			logger.Duration(time.Since(start)),
		)
	})
}
