package server

import (
	"net/http"
	"time"

	"storefront-docs/internal/core/domain/types"
)

type responseWriterWrapper struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriterWrapper) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (api *API) Middleware(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		rw := &responseWriterWrapper{ResponseWriter: w, status: http.StatusOK}

		api.log.Debug(
			r.Context(),
			types.ActionRequestReceived,
			"started",
			"method", r.Method,
			"URL", r.URL.Path,
			"host", r.Host,
		)

		next.ServeHTTP(rw, r)

		duration := time.Since(startTime)

		api.log.Debug(
			r.Context(),
			types.ActionRequestReceived,
			"completed",
			"method", r.Method,
			"URL", r.URL.Path,
			"status", rw.status,
			"duration", duration,
		)
	})
}
