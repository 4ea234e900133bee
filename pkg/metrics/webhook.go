package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// WebhookEventsTotal counts processed webhook entries by outcome.
	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Webhook event entries processed, by provider, resource type and result",
		},
		[]string{"provider", "resource_type", "result"},
	)

	WebhookSignatureFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "signature_failures_total",
			Help:      "Webhook deliveries rejected because of an invalid signature",
		},
		[]string{"provider"},
	)

	SettlementsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "settlements_created_total",
			Help:      "Settlement records created, by provider",
		},
		[]string{"provider"},
	)

	OverdueInvoicesMarked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "overdue_invoices_marked_total",
			Help:      "Invoices moved from Unpaid to Overdue by the sweep",
		},
	)
)

func init() {
	Registry.MustRegister(WebhookEventsTotal, WebhookSignatureFailures, SettlementsCreated, OverdueInvoicesMarked)
}
