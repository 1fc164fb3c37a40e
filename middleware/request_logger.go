package middleware

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"league-history/logging"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "league_history",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "code"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "league_history",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
	httpResponseBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "league_history",
		Name:      "http_response_bytes_total",
		Help:      "Bytes written in HTTP responses by route.",
	}, []string{"route"})
)

func init() {
	prometheus.DefaultRegisterer.MustRegister(httpRequests, httpDuration, httpResponseBytes)
}

// RequestLogger logs every request and records its metrics
func RequestLogger(next http.Handler) http.Handler {
	logger := logging.WithPrefix("HTTP")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		route := routeName(r)
		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(m.Code)).Inc()
		httpDuration.WithLabelValues(route).Observe(m.Duration.Seconds())
		httpResponseBytes.WithLabelValues(route).Add(float64(m.Written))

		logger.Infof("%s %s %d %dB %s", r.Method, r.URL.RequestURI(), m.Code, m.Written, m.Duration)
	})
}

// routeName uses the mux path template so metrics do not grow per manager name
func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return "unmatched"
}
