package middleware

import (
	"net/http"
	"time"

	"clinic-booking/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

type LoggingMiddleware struct {
	log     *logrus.Logger
	metrics *metrics.Metrics
}

func NewLoggingMiddleware(log *logrus.Logger, metrics *metrics.Metrics) *LoggingMiddleware {
	return &LoggingMiddleware{
		log:     log,
		metrics: metrics,
	}
}

// Handle logs every request and records it under its route template, so
// /doctors/{id} is one series however many ids are requested.
func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		path := routeTemplate(r)
		m.metrics.ObserveRequest(r.Method, path, rec.status, elapsed)

		entry := m.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": elapsed.String(),
		})
		switch {
		case rec.status >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case rec.status >= http.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	})
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
