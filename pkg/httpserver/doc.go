// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown on context cancellation or SIGINT/SIGTERM, and provides
// liveness/readiness handlers.
package httpserver
