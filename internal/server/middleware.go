package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/goto/roster/pkg/statsd"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// monitoringMiddleware reports the duration of every request, tagged with
// the matched route template, method and response code.
func monitoringMiddleware(reporter *statsd.Reporter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			reporter.Timing("http_request_duration", time.Since(start)).
				Tag("method", r.Method).
				Tag("route", route).
				Tag("code", strconv.Itoa(rec.status)).
				Publish()
		})
	}
}
