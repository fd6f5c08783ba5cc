package pod_event

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pod_event_publish_total",
			Help: "Total number of delivery committed events published",
		},
		[]string{"topic", "status"},
	)

	EventPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pod_event_publish_duration_seconds",
			Help:    "Duration of event publishing to Kafka",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"topic", "status"},
	)
)
