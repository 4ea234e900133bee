package metrics

import "github.com/prometheus/client_golang/prometheus"

// HTTPRequestDuration is keyed by gin route template, so /invoices/:invoice_id
// is one series however many invoices are read. Its _count doubles as the
// request counter.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route, method and status class",
		// Sync webhooks wait on the GoCardless lookup, which may take up to
		// the client timeout.
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
	},
	[]string{"route", "method", "status_class"},
)

func init() {
	Registry.MustRegister(HTTPRequestDuration)
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
