package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getCounterVecValue(cv *prometheus.CounterVec, labels ...string) float64 {
	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func getHistogramCount(hv *prometheus.HistogramVec, labels ...string) uint64 {
	o, err := hv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := o.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetrics_TranscriptRequestsTotal(t *testing.T) {
	before := getCounterVecValue(TranscriptRequestsTotal, TransportHTTP, StatusSuccess)
	TranscriptRequestsTotal.WithLabelValues(TransportHTTP, StatusSuccess).Inc()
	after := getCounterVecValue(TranscriptRequestsTotal, TransportHTTP, StatusSuccess)

	if after != before+1 {
		t.Errorf("Expected success counter to increment by 1, got diff %.0f", after-before)
	}
}

func TestMetrics_UpstreamDuration(t *testing.T) {
	before := getHistogramCount(UpstreamDuration, StatusError)
	UpstreamDuration.WithLabelValues(StatusError).Observe(0.25)
	after := getHistogramCount(UpstreamDuration, StatusError)

	if after != before+1 {
		t.Errorf("Expected histogram sample count to increment by 1, got diff %d", after-before)
	}
}

func TestStatus(t *testing.T) {
	if got := Status(nil); got != StatusSuccess {
		t.Errorf("Status(nil) = %q, want %q", got, StatusSuccess)
	}
	if got := Status(errors.New("boom")); got != StatusError {
		t.Errorf("Status(err) = %q, want %q", got, StatusError)
	}
}
