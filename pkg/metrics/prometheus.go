package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager holds the service's Prometheus collectors on a private registry.
// All recording methods are safe on a nil *Manager.
type Manager struct {
	Registry         *prometheus.Registry
	HTTPRequests     *prometheus.CounterVec
	HTTPLatency      *prometheus.HistogramVec
	ImageShifts      prometheus.Counter
	CoverReassigned  prometheus.Counter
	ContactMessages  *prometheus.CounterVec
	CacheLookups     *prometheus.CounterVec
	MissingCoverSeen prometheus.Counter
}

func NewManager(namespace string) *Manager {
	registry := prometheus.NewRegistry()

	m := &Manager{
		Registry: registry,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ImageShifts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_order_shifts_total",
			Help:      "Images moved down one slot to make room for another.",
		}),
		CoverReassigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_cover_cleared_total",
			Help:      "Images that lost the cover flag to a sibling.",
		}),
		ContactMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"result"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Projection cache lookups by view and result.",
		}, []string{"view", "result"}),
		MissingCoverSeen: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "venture_missing_cover_total",
			Help:      "Detail projections rendered without a cover image.",
		}),
	}

	registry.MustRegister(
		m.HTTPRequests,
		m.HTTPLatency,
		m.ImageShifts,
		m.CoverReassigned,
		m.ContactMessages,
		m.CacheLookups,
		m.MissingCoverSeen,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request count and latency keyed by route template.
func (m *Manager) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Manager) AddImageShifts(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ImageShifts.Add(float64(n))
}

func (m *Manager) AddCoverCleared(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.CoverReassigned.Add(float64(n))
}

func (m *Manager) ContactResult(result string) {
	if m == nil {
		return
	}
	m.ContactMessages.WithLabelValues(result).Inc()
}

func (m *Manager) CacheResult(view string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(view, result).Inc()
}

func (m *Manager) MissingCover() {
	if m == nil {
		return
	}
	m.MissingCoverSeen.Inc()
}
