package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of each order API round trip
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "order_sdk_request_duration_seconds",
		Help:    "Latency of Lumexa order API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// Total order API requests by operation and response status
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_sdk_requests_total",
		Help: "Total number of Lumexa order API requests",
	}, []string{"operation", "status"})
)

func Init() {
	prometheus.MustRegister(
		RequestDuration,
		RequestsTotal,
	)
}
