package handler

import (
	"errors"
	"log/slog"
	"net/http"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Func handles a request and returns what to render.
type Func func(r *http.Request) Response

// ErrorHandler handles errors from rendering a Response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	errorHandler ErrorHandler
}

// WithErrorHandler sets a custom error handler. Nil is ignored.
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// Wrap converts a Func to an http.HandlerFunc.
//
//	r.Get("/api/entitlements", handler.Wrap(func(r *http.Request) handler.Response {
//		return handler.JSON(entitlement.ResolveContext(r.Context()))
//	}, handler.WithErrorHandler(handler.NewErrorHandler(log))))
func Wrap(fn Func, opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := fn(r)
		if resp == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}

// defaultErrorHandler replies with plain text, using the HTTPError status when there is one.
func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Key, httpErr.Code)
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// NewErrorHandler returns an ErrorHandler that logs the error (warn for 4xx,
// error for 5xx), answers JSON for API and datastar requests and plain text
// otherwise. Internal error details never reach the client.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		status, key := classify(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		if log != nil {
			log.Log(r.Context(), level, "request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Any("error", err),
			)
		}

		if wantsJSON(r) {
			_ = JSONError(HTTPError{Code: status, Key: key}).Render(w, r)
			return
		}
		http.Error(w, key, status)
	}
}

func classify(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Key
	}
	return ErrInternalServerError.Code, ErrInternalServerError.Key
}
