package metrics

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/uber-go/tally/v6"
	"github.com/uber-go/tally/v6/prometheus"
)

// NewMetricsReporter creates a root scope reporting to Prometheus and the
// handler serving the scraped metrics.
func NewMetricsReporter(serviceName string) (scope tally.Scope, closer io.Closer, handler http.Handler) {
	reporter := prometheus.NewReporter(prometheus.Options{})
	scope, closer = tally.NewRootScope(tally.ScopeOptions{
		Tags:            map[string]string{"service": serviceName},
		CachedReporter:  reporter,
		SanitizeOptions: &prometheus.DefaultSanitizerOpts,
	}, 10*time.Second)

	counter := scope.Counter("service_started")
	counter.Inc(1)
	return scope, closer, reporter.HTTPHandler()
}

// EndpointMetrics defines an endpoint metrics.
type EndpointMetrics struct {
	Calls     tally.Counter
	Successes tally.Counter

	scope  tally.Scope
	mu     sync.Mutex
	errors map[string]tally.Counter
}

// NewEndpointMetrics creates a new endpoint metrics.
func NewEndpointMetrics(scope tally.Scope, endpoint string) *EndpointMetrics {
	scope = scope.Tagged(map[string]string{
		"component": "handler",
		"endpoint":  endpoint,
	})
	return &EndpointMetrics{
		Calls:     scope.Counter("calls"),
		Successes: scope.Counter("success"),
		scope:     scope,
		errors:    map[string]tally.Counter{},
	}
}

// Failed counts a failed call tagged with the given error kind,
// e.g. "invalid_argument" or "store_unavailable".
func (m *EndpointMetrics) Failed(kind string) {
	m.mu.Lock()
	c, ok := m.errors[kind]
	if !ok {
		c = m.scope.Tagged(map[string]string{"error": kind}).Counter("error")
		m.errors[kind] = c
	}
	m.mu.Unlock()
	c.Inc(1)
}
