package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache lookup statuses.
const (
	CacheHit       = "hit"
	CacheMiss      = "miss"
	CacheError     = "error"
	CacheStoreFail = "store_fail"
)

type Metrics struct {
	registry      *prometheus.Registry
	cacheRequests *prometheus.CounterVec
	fetchErrors   *prometheus.CounterVec
	catalogChecks *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	cacheRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_listing_cache_requests_total",
		Help: "Total listing cache lookups",
	}, []string{"listing", "status"})

	fetchErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_listing_fetch_errors_total",
		Help: "Total backend fetch failures after a cache miss",
	}, []string{"listing"})

	catalogChecks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_catalog_checks_total",
		Help: "Total composite query verifications by outcome",
	}, []string{"spec", "outcome"})

	registry.MustRegister(cacheRequests, fetchErrors, catalogChecks)

	return &Metrics{
		registry:      registry,
		cacheRequests: cacheRequests,
		fetchErrors:   fetchErrors,
		catalogChecks: catalogChecks,
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveCache counts a lookup for listing, a fixed name such as
// "products_by_category", never a raw cache key.
func (m *Metrics) ObserveCache(listing, status string) {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues(listing, status).Inc()
}

func (m *Metrics) ObserveFetchError(listing string) {
	if m == nil {
		return
	}
	m.fetchErrors.WithLabelValues(listing).Inc()
}

func (m *Metrics) ObserveCatalogCheck(spec, outcome string) {
	if m == nil {
		return
	}
	m.catalogChecks.WithLabelValues(spec, outcome).Inc()
}
