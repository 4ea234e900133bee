package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcomes of a consumed payment message.
const (
	OutcomeProcessed    = "processed"
	OutcomeDeadLettered = "dead_lettered"
	// OutcomeRedelivered means the offset was not committed and the broker
	// will hand the message out again.
	OutcomeRedelivered = "redelivered"
)

var (
	PaymentMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments_consumer",
			Name:      "messages_total",
			Help:      "Payment webhook messages consumed from Kafka, by outcome",
		},
		[]string{"topic", "outcome"},
	)

	// PaymentMessageDuration includes the provider lookup and any retries.
	PaymentMessageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "payments_consumer",
			Name:      "message_duration_seconds",
			Help:      "Time to reconcile one payment message",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"topic"},
	)
)

func init() {
	Registry.MustRegister(PaymentMessagesTotal, PaymentMessageDuration)
}
