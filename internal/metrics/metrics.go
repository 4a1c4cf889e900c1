package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bizpulse"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	locationViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_views_total",
			Help:      "Detail page views by location id.",
		},
		[]string{"location_id"},
	)

	locationNotFound = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_not_found_total",
			Help:      "Detail or export requests for unknown location ids.",
		},
	)

	reportExports = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_exports_total",
			Help:      "Location workbooks downloaded.",
		},
	)

	catalogReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Scheduled catalogue file reloads by result.",
		},
		[]string{"result"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, locationViews, locationNotFound, reportExports, catalogReloads)
	})
}

// ObserveHTTP records one completed request. route should be the mux
// pattern, never the raw path, to keep label cardinality bounded.
func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// IncLocationView counts a detail view. Only ids found in the catalogue
// should be passed.
func IncLocationView(id string) {
	locationViews.WithLabelValues(id).Inc()
}

func IncLocationNotFound() {
	locationNotFound.Inc()
}

func IncReportExport() {
	reportExports.Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func IncCatalogReload(ok bool) {
	result := "success"
	if !ok {
		result = "error"
	}
	catalogReloads.WithLabelValues(result).Inc()
}
