package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "algowoo", Name: "documents_sent_total", Help: "Number of product documents accepted by the search index."},
		[]string{"index"},
	)
	Batches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "algowoo", Name: "batches_total", Help: "Number of saveObjects batches by result."},
		[]string{"index", "result"},
	)
	SendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "algowoo", Name: "send_duration_seconds", Help: "Duration of complete send runs.", Buckets: prometheus.DefBuckets},
		[]string{"trigger"},
	)
	EventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "algowoo", Name: "events_processed_total", Help: "Number of worker events by type and result."},
		[]string{"type", "result"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentsSent)
	reg.MustRegister(Batches)
	reg.MustRegister(SendDuration)
	reg.MustRegister(EventsProcessed)
}
