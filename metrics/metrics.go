package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	TransportHTTP   = "http"
	TransportLambda = "lambda"

	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	TranscriptRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transcript_requests_total",
			Help: "Total number of transcript requests handled.",
		},
		[]string{"transport", "status"},
	)

	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transcript_upstream_duration_seconds",
			Help:    "Duration of transcript fetches against YouTube.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		TranscriptRequestsTotal,
		UpstreamDuration,
	)
}

// Status maps an operation outcome to its label value.
func Status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
